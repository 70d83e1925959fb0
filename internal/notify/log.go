package notify

import (
	"context"
	"log"
)

// LogNotifier writes notifications to the application log. It is used when
// no email API key is configured (local development).
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyNewFeedback(ctx context.Context, msg Notification) error {
	author := msg.EmployeeName
	if author == "" {
		author = "anonymous"
	}
	log.Printf("📨 [Notify] New %s for %s <%s> from %s: %s", msg.Kind, msg.ManagerName, msg.ManagerEmail, author, msg.Content)
	return nil
}
