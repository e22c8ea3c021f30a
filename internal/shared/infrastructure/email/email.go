// Package email sends the transactional messages the dashboard triggers, such
// as telling a docente that a solicitud was rejected.
package email

import (
	"context"
	"net/mail"
)

// Message is a single outbound e-mail.
type Message struct {
	To      []mail.Address
	Subject string
	Text    string
	HTML    string
}

// HasRecipients reports whether there is anyone to send to.
func (m Message) HasRecipients() bool { return len(m.To) > 0 }

// HasContent reports whether the message has a body.
func (m Message) HasContent() bool { return m.Text != "" || m.HTML != "" }

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config selects and configures the sender.
type Config struct {
	SendGridKey string
	FromName    string
	FromAddress string
}

// NewSender returns the SendGrid sender when an API key is configured and the
// console sender otherwise.
func NewSender(cfg Config) Sender {
	if cfg.SendGridKey == "" {
		return NewConsoleSender(nil)
	}
	return NewSendGridSender(cfg.SendGridKey, cfg.FromName, cfg.FromAddress)
}
