package notify

import "context"

// Notification describes a newly submitted feedback record for delivery to
// its recipient manager. EmployeeName is empty for anonymous submissions and
// must stay empty all the way to the delivered message.
type Notification struct {
	ManagerEmail string
	ManagerName  string
	EmployeeName string
	Kind         string
	Content      string
}

// Notifier delivers new-feedback notifications. Delivery is best-effort;
// failures never affect the stored record.
type Notifier interface {
	NotifyNewFeedback(ctx context.Context, n Notification) error
}
