package storesdk

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sumansi/storefront/pkg/jwtx"
)

// expiryBuffer is subtracted from the access token's expiry when
// deciding whether to refresh before an authenticated request, so a
// request never leaves with a token about to expire in flight.
const expiryBuffer = 30 * time.Second

// Session represents an authenticated session with automatic access
// token refresh. The refresh token lives only in the HTTP client's
// cookie jar; the session never sees it.
type Session struct {
	client *Client

	mu          sync.RWMutex
	user        User
	accessToken string
	expiresAt   time.Time
}

// User returns the public identity this session was issued for.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// AccessToken returns the current access token without checking
// expiration. Prefer the Session methods, which refresh automatically.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ExpiresAt returns the current access token's expiry instant.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Authenticated reports whether the session currently holds a token.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// Refresh calls the refresh endpoint and replaces the held access
// token. The browser-style cookie jar presents the refresh token; on
// failure the session state is left untouched and the caller decides
// whether to log out.
func (s *Session) Refresh(ctx context.Context) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/refresh", nil)
	if err != nil {
		return err
	}

	var refreshed refreshResponse
	if err := decodeJSON(resp, &refreshed, http.StatusOK); err != nil {
		return err
	}

	claims, err := jwtx.DecodeUnverified(refreshed.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to decode refreshed access token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return fmt.Errorf("refreshed access token carries no expiry claim")
	}

	s.mu.Lock()
	s.accessToken = refreshed.AccessToken
	s.expiresAt = claims.ExpiresAt.Time
	s.mu.Unlock()

	s.persist()
	return nil
}

// Logout clears all local session state and the durable cache. The
// server holds no session state to clear; tokens simply age out.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = User{}
	s.accessToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if s.client.Cache != nil {
		_ = s.client.Cache.Clear()
	}
}

// getValidToken returns a valid access token, refreshing first when the
// held one is within expiryBuffer of expiring.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	token := s.accessToken
	fresh := time.Now().Before(s.expiresAt.Add(-expiryBuffer))
	s.mu.RUnlock()

	if token == "" {
		return "", ErrNotAuthenticated
	}
	if fresh {
		return token, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, nil
}

// persist mirrors the in-memory state to the durable cache, if any.
func (s *Session) persist() {
	if s.client.Cache == nil {
		return
	}

	s.mu.RLock()
	state := State{User: s.user, AccessToken: s.accessToken}
	s.mu.RUnlock()

	_ = s.client.Cache.Save(state)
}
