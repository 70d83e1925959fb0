package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v2"
)

// EmailNotifier delivers notifications to the manager's inbox via Resend.
type EmailNotifier struct {
	client    *resend.Client
	fromEmail string
}

func NewEmailNotifier(apiKey, fromEmail string) *EmailNotifier {
	return &EmailNotifier{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (n *EmailNotifier) NotifyNewFeedback(ctx context.Context, msg Notification) error {
	author := "An anonymous teammate"
	if msg.EmployeeName != "" {
		author = html.EscapeString(msg.EmployeeName)
	}

	subject := "New feedback for you"
	if msg.Kind == "question" {
		subject = "New question for you"
	}

	params := &resend.SendEmailRequest{
		From:    n.fromEmail,
		To:      []string{msg.ManagerEmail},
		Subject: subject,
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Hi %s,</h2>
				<p>%s left you a new %s on the feedback portal:</p>
				<blockquote style="border-left: 4px solid #6366f1; margin: 16px 0; padding: 8px 16px; color: #555;">
					%s
				</blockquote>
				<p style="color: #888; font-size: 14px;">
					Log in to the portal to respond.
				</p>
			</div>
		`, html.EscapeString(msg.ManagerName), author, html.EscapeString(msg.Kind), html.EscapeString(msg.Content)),
	}

	sent, err := n.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Notification email sent to %s (ID: %s)", msg.ManagerEmail, sent.Id)
	return nil
}
