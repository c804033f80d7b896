package storesdk

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sumansi/storefront/pkg/jwtx"
)

// stubServer is a minimal in-process stand-in for the storefront API,
// minting real signed tokens so expiry decoding works end to end.
type stubServer struct {
	issuer *jwtx.Issuer
	srv    *httptest.Server

	mu           sync.Mutex
	refreshCalls int
}

func newStubServer(t *testing.T, accessTTL time.Duration) *stubServer {
	t.Helper()

	issuer, err := jwtx.NewIssuer("access-secret", "refresh-secret", "storefront-test", time.Hour)
	require.NoError(t, err)
	if accessTTL > 0 {
		issuer.AccessTTL = accessTTL
	}

	s := &stubServer{issuer: issuer}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/signup", s.handleAuth(http.StatusCreated))
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("PUT /api/user/profile", s.handleProfile)
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Product{{ID: "prd_1", Name: "Linen Shirt", Price: 4500, Image: "shirt.jpg", InStock: true}})
	})

	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubServer) refreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

func (s *stubServer) issueInto(w http.ResponseWriter, status int, email string) {
	pair, err := s.issuer.IssueTokens("usr_stub", email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    pair.RefreshToken,
		Path:     "/api/refresh",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	writeJSON(w, status, authResponse{
		Message:     "ok",
		AccessToken: pair.AccessToken,
		User:        User{UserID: "usr_stub", Name: "Stub", Email: email},
	})
}

func (s *stubServer) handleAuth(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		s.issueInto(w, status, req.Email)
	}
}

func (s *stubServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Password != "correct-horse" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid credentials"})
		return
	}
	s.issueInto(w, http.StatusOK, req.Email)
}

func (s *stubServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refreshToken")
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No refresh token"})
		return
	}
	claims, err := s.issuer.VerifyRefresh(cookie.Value)
	if err != nil {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Invalid refresh token"})
		return
	}

	s.mu.Lock()
	s.refreshCalls++
	s.mu.Unlock()

	access, _, err := s.issuer.IssueAccessToken(claims.UserID(), claims.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}

func (s *stubServer) handleProfile(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims, err := s.issuer.VerifyAccess(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		return
	}

	var req ProfileUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, http.StatusOK, profileResponse{
		Message: "Profile updated",
		User:    User{UserID: claims.UserID(), Name: req.Name, Email: claims.Email, Phone: req.Phone},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func signupStub(t *testing.T, c *Client) *Session {
	t.Helper()
	session, err := c.Signup(t.Context(), SignupRequest{
		Name: "Ana", Email: "ana@example.com", Phone: "123", Password: "correct-horse",
	})
	require.NoError(t, err)
	return session
}

func TestClientAuthFlows(t *testing.T) {
	stub := newStubServer(t, 0)
	client := NewClient(stub.srv.URL)

	t.Run("signup returns an authenticated session", func(t *testing.T) {
		session := signupStub(t, client)
		require.True(t, session.Authenticated())
		require.Equal(t, "ana@example.com", session.User().Email)
		require.NotEmpty(t, session.AccessToken())
		require.WithinDuration(t, time.Now().Add(jwtx.DefaultAccessTokenTTL), session.ExpiresAt(), 5*time.Second)
	})

	t.Run("login failure surfaces the API error", func(t *testing.T) {
		_, err := client.Login(t.Context(), "ana@example.com", "wrong")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Invalid credentials", apiErr.Message)
		require.False(t, IsAuthError(err))
	})

	t.Run("catalog reads need no session", func(t *testing.T) {
		products, err := client.ListProducts(t.Context())
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.Equal(t, "Linen Shirt", products[0].Name)
	})
}

func TestSessionAutoRefresh(t *testing.T) {
	// Access TTL shorter than the refresh buffer, so the first
	// authenticated call must refresh before sending.
	stub := newStubServer(t, 10*time.Second)
	client := NewClient(stub.srv.URL)
	session := signupStub(t, client)

	user, err := session.UpdateProfile(t.Context(), ProfileUpdateRequest{Name: "Ana Updated", Phone: "456"})
	require.NoError(t, err)
	require.Equal(t, "Ana Updated", user.Name)
	require.Equal(t, 1, stub.refreshCount())

	// Session identity follows the server's copy
	require.Equal(t, "Ana Updated", session.User().Name)
}

func TestSessionRefreshIsRepeatable(t *testing.T) {
	stub := newStubServer(t, 0)
	client := NewClient(stub.srv.URL)
	session := signupStub(t, client)

	first := session.AccessToken()
	require.NoError(t, session.Refresh(t.Context()))
	require.NoError(t, session.Refresh(t.Context()))
	require.Equal(t, 2, stub.refreshCount())
	require.NotEmpty(t, session.AccessToken())
	require.NotEqual(t, "", first)
}

func TestSessionRefreshWithoutCookie(t *testing.T) {
	stub := newStubServer(t, 0)
	client := NewClient(stub.srv.URL)
	session := signupStub(t, client)

	// Losing the cookie jar simulates a restarted client that only
	// rehydrated the access token.
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client.HTTPClient.Jar = jar

	err = session.Refresh(t.Context())
	require.True(t, IsAuthError(err), "refresh without cookie should be an auth error, got %v", err)
	require.Equal(t, 0, stub.refreshCount())
}

func TestCacheResume(t *testing.T) {
	stub := newStubServer(t, 0)

	cachePath := filepath.Join(t.TempDir(), "session.json")
	client := NewClient(stub.srv.URL)
	client.Cache = NewCache(cachePath)

	session := signupStub(t, client)
	token := session.AccessToken()

	t.Run("resume rehydrates without a network call", func(t *testing.T) {
		restarted := NewClient(stub.srv.URL)
		restarted.Cache = NewCache(cachePath)

		resumed, err := restarted.ResumeSession()
		require.NoError(t, err)
		require.Equal(t, "ana@example.com", resumed.User().Email)
		require.Equal(t, token, resumed.AccessToken())
	})

	t.Run("logout clears the cache", func(t *testing.T) {
		session.Logout()
		require.False(t, session.Authenticated())

		_, err := client.ResumeSession()
		require.ErrorIs(t, err, ErrNoCachedSession)
	})
}

func TestCacheMissingFile(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "absent.json"))
	_, err := cache.Load()
	require.ErrorIs(t, err, ErrNoCachedSession)
	require.NoError(t, cache.Clear())
}
