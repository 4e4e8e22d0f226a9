package port

import "context"

// EmailSender defines the contract for sending transactional email.
type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName string) error
}
