// Package notify sends transactional email for account events. Delivery is
// best effort; request handling never blocks on a provider.
package notify

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("notify: invalid provider configuration")

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message through a concrete provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config selects and configures the mail provider.
type Config struct {
	Provider string // "smtp", "mailgun" or "log"
	From     string

	SMTP    SMTPConfig
	Mailgun MailgunConfig
}

// NewSender builds a Sender for the configured provider. An empty or "log"
// provider returns a sender that only logs, which is the dev default.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return newSMTPSender(cfg.From, cfg.SMTP)
	case "mailgun":
		return newMailgunSender(cfg.From, cfg.Mailgun)
	case "", "log":
		return &logSender{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
