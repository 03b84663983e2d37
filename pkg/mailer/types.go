package mailer

import "context"

// Email represents a fully-prepared message ready for delivery.
type Email struct {
	To      []string // Recipients (at least one required)
	Subject string   // Message subject
	HTML    string   // HTML body
	Text    string   // Plain text alternative
	From    string   // Override default sender (if the provider allows)
}

// Sender is the minimal interface email providers implement. It receives a
// fully-prepared Email and handles delivery.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}
