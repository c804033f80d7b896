package notify

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type captureSender struct {
	mu   sync.Mutex
	sent []Message
	done chan struct{}
}

func (c *captureSender) Send(ctx context.Context, msg Message) error {
	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	c.done <- struct{}{}
	return nil
}

func TestNewSenderProviderSelection(t *testing.T) {
	t.Run("defaults to log sender", func(t *testing.T) {
		s, err := NewSender(Config{})
		require.NoError(t, err)
		require.IsType(t, &logSender{}, s)
	})

	t.Run("smtp requires host and port", func(t *testing.T) {
		_, err := NewSender(Config{Provider: "smtp", From: "shop@example.com"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("mailgun requires domain and key", func(t *testing.T) {
		_, err := NewSender(Config{Provider: "mailgun", From: "shop@example.com"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		_, err := NewSender(Config{Provider: "pigeon"})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestMailerDispatchesInBackground(t *testing.T) {
	capture := &captureSender{done: make(chan struct{}, 3)}
	mailer := NewMailer(capture, nil)

	mailer.SendWelcome("Alice", "alice@example.com")
	mailer.SendLoginAlert("Alice", "alice@example.com", time.Now())
	mailer.SendPasswordReset("Alice", "alice@example.com", "https://shop.example/reset/abc")

	for range 3 {
		select {
		case <-capture.done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for background send")
		}
	}

	capture.mu.Lock()
	defer capture.mu.Unlock()
	require.Len(t, capture.sent, 3)
	for _, msg := range capture.sent {
		require.Equal(t, "alice@example.com", msg.To)
		require.NotEmpty(t, msg.Subject)
		require.NotEmpty(t, msg.HTML)
	}
}

func TestTemplatesEscapeUserInput(t *testing.T) {
	out := welcomeHTML(`<script>alert("x")</script>`)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestPasswordResetTemplateCarriesLink(t *testing.T) {
	url := "https://shop.example/reset-password/token123"
	out := passwordResetHTML("Bob", url)
	require.Contains(t, out, url)
	require.True(t, strings.Contains(out, "valid for one hour"))
}
