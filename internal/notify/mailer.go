package notify

import (
	"context"
	"log/slog"
	"time"
)

// sendTimeout bounds a single background delivery attempt.
const sendTimeout = 45 * time.Second

// Mailer dispatches account emails without blocking the caller. Each send
// runs in its own goroutine; failures are logged, never surfaced to the
// request that triggered them.
type Mailer struct {
	sender Sender
	logger *slog.Logger
}

func NewMailer(sender Sender, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{sender: sender, logger: logger}
}

// SendWelcome greets a newly registered user.
func (m *Mailer) SendWelcome(name, email string) {
	m.dispatch("welcome", Message{
		To:      email,
		Subject: "Welcome to the store",
		HTML:    welcomeHTML(name),
	})
}

// SendLoginAlert notifies the account owner of a fresh login.
func (m *Mailer) SendLoginAlert(name, email string, at time.Time) {
	m.dispatch("login_alert", Message{
		To:      email,
		Subject: "New login to your account",
		HTML:    loginAlertHTML(name, at),
	})
}

// SendPasswordReset carries the reset link. The raw token only ever appears
// inside resetURL; the server keeps a fingerprint.
func (m *Mailer) SendPasswordReset(name, email, resetURL string) {
	m.dispatch("password_reset", Message{
		To:      email,
		Subject: "Reset your password",
		HTML:    passwordResetHTML(name, resetURL),
	})
}

func (m *Mailer) dispatch(kind string, msg Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := m.sender.Send(ctx, msg); err != nil {
			m.logger.Error("email delivery failed",
				"kind", kind,
				"to", msg.To,
				"error", err,
			)
			return
		}
		m.logger.Debug("email sent", "kind", kind, "to", msg.To)
	}()
}

// logSender is the dev fallback. It records the message instead of
// delivering it.
type logSender struct{}

func (l *logSender) Send(ctx context.Context, msg Message) error {
	slog.Info("email suppressed (log provider)", "to", msg.To, "subject", msg.Subject)
	return nil
}
