package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the configuration for Mailgun delivery.
type MailgunConfig struct {
	Domain string
	APIKey string
}

type mailgunSender struct {
	from string
	mg   *mailgun.MailgunImpl
}

func newMailgunSender(from string, cfg MailgunConfig) (*mailgunSender, error) {
	if from == "" || cfg.Domain == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: mailgun requires from, domain and api key", ErrInvalidConfig)
	}
	return &mailgunSender{
		from: from,
		mg:   mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
	}, nil
}

func (s *mailgunSender) Send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m := s.mg.NewMessage(s.from, msg.Subject, "", msg.To)
	m.SetHTML(msg.HTML)

	_, _, err := s.mg.Send(ctx, m)
	return err
}
