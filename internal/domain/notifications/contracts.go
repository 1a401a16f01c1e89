// Package notifications defines outgoing message delivery.
package notifications

import "context"

// Attachment is a file sent along with a message
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Message is an email to a single recipient
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer delivers messages
type Mailer interface {
	Send(ctx context.Context, message *Message) error
}
