package mailer

import "context"

// Attachment is a file to include with an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a single outgoing email, possibly to many recipients.
type Message struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// EmailSender delivers a message and reports the outcome. Implementations
// must be safe for concurrent use.
type EmailSender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
