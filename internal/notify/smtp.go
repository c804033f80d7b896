package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPConfig holds the configuration for plain SMTP delivery.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type smtpSender struct {
	from string
	cfg  SMTPConfig
}

func newSMTPSender(from string, cfg SMTPConfig) (*smtpSender, error) {
	if from == "" || cfg.Host == "" || cfg.Port == "" {
		return nil, fmt.Errorf("%w: smtp requires from, host and port", ErrInvalidConfig)
	}
	return &smtpSender{from: from, cfg: cfg}, nil
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		s.from, msg.To, msg.Subject, msg.HTML,
	)

	// net/smtp has no context support; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	return smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(body))
}
