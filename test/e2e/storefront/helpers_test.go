package storefront_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	httpapi "github.com/sumansi/storefront/internal/http"
	"github.com/sumansi/storefront/internal/notify"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/internal/store/drivers/sqlite"
	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/sumansi/storefront/pkg/storesdk"
)

/*
 * Common helpers for storefront end-to-end tests. Each test boots the
 * full HTTP stack in process (real router, services, and an in-memory
 * SQLite store) and drives it through the public SDK, so the wire
 * contract is exercised exactly as a real client would.
 */

const (
	testName     = "Ana"
	testEmail    = "ana@example.com"
	testPhone    = "0400000000"
	testPassword = "hunter22"
)

// mailbox captures outbound transactional email so tests can read
// reset links without a real mail provider.
type mailbox struct {
	messages chan notify.Message
}

func newMailbox() *mailbox {
	return &mailbox{messages: make(chan notify.Message, 16)}
}

func (m *mailbox) Send(_ context.Context, msg notify.Message) error {
	m.messages <- msg
	return nil
}

// wait blocks until a message addressed to the given recipient arrives.
// Dispatch is fire-and-forget on the server, so delivery order is not
// guaranteed across kinds.
func (m *mailbox) wait(t *testing.T, to, subjectContains string) notify.Message {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-m.messages:
			if msg.To == to && strings.Contains(msg.Subject, subjectContains) {
				return msg
			}
		case <-deadline:
			t.Fatalf("no email to %s matching %q arrived", to, subjectContains)
		}
	}
}

// setupStorefront boots the service and returns an SDK client pointed
// at it. A non-zero accessTTL shortens access tokens for refresh and
// tracker scenarios.
func setupStorefront(t *testing.T, accessTTL time.Duration) (*storesdk.Client, *mailbox) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	issuer, err := jwtx.NewIssuer("e2e-access-secret", "e2e-refresh-secret", "storefront-e2e", 0)
	require.NoError(t, err)
	if accessTTL > 0 {
		issuer.AccessTTL = accessTTL
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	box := newMailbox()
	mailer := notify.NewMailer(box, logger)

	auth := &service.AuthService{
		Store:         st,
		Issuer:        issuer,
		Mailer:        mailer,
		ResetURLBase:  "https://shop.example/reset-password",
		ResetTokenTTL: time.Hour,
	}

	router := httpapi.NewRouter(issuer, false, "e2e", st, logger)
	router.AuthService = auth
	router.UserService = &service.UserService{Store: st}
	router.ProductService = &service.ProductService{Store: st}
	router.AnnouncementService = &service.AnnouncementService{Store: st}
	router.CartService = &service.CartService{Store: st}
	router.WishlistService = &service.WishlistService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return storesdk.NewClient(srv.URL), box
}

// signupAna registers the standard test account and returns its session.
func signupAna(t *testing.T, client *storesdk.Client) *storesdk.Session {
	t.Helper()

	session, err := client.Signup(t.Context(), storesdk.SignupRequest{
		Name:     testName,
		Email:    testEmail,
		Phone:    testPhone,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	return session
}

// extractResetToken pulls the single-use token out of a reset email's
// link.
func extractResetToken(t *testing.T, html string) string {
	t.Helper()

	idx := strings.LastIndex(html, "/reset-password/")
	require.Positive(t, idx, "reset email should contain a reset link")
	rest := html[idx+len("/reset-password/"):]
	end := strings.IndexAny(rest, `"<`)
	require.Positive(t, end)
	return rest[:end]
}
