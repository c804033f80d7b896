package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGuardedEcho(t *testing.T) (*jwtx.Issuer, http.Handler) {
	t.Helper()

	issuer, err := jwtx.NewIssuer("access-secret", "refresh-secret", "storefront-test", 0)
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"userId": httpx.UserIDFromContext(r.Context()),
			"email":  httpx.EmailFromContext(r.Context()),
		})
	})
	return issuer, httpx.Chain(echo, httpx.RequireAuth(issuer))
}

func TestRequireAuthInjectsIdentity(t *testing.T) {
	t.Parallel()
	issuer, guarded := newGuardedEcho(t)

	pair, err := issuer.IssueTokens("usr_abc", "ana@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"userId":"usr_abc","email":"ana@x.com"}`, rec.Body.String())
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()
	_, guarded := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	t.Parallel()
	_, guarded := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	t.Parallel()
	issuer, guarded := newGuardedEcho(t)

	pair, err := issuer.IssueTokens("usr_abc", "ana@x.com")
	require.NoError(t, err)

	// A refresh token presented as a bearer token must not pass the guard.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
