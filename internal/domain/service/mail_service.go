package service

import "context"

// MailSender defines the interface for the outbound mail transport.
// The marketplace only ever sends a recipient, a subject, and an HTML body;
// SMTP details stay behind this boundary.
type MailSender interface {
	// Send delivers a single HTML email.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
