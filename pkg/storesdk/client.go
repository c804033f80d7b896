package storesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/sumansi/storefront/pkg/jwtx"
)

// Client is a client for the storefront API. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Cache optionally persists session state across restarts. When set,
	// successful signup/login/refresh calls save to it and logout clears
	// it. Memory remains the source of truth.
	Cache *Cache
}

// NewClient creates a new storefront client. The HTTP client carries a
// cookie jar so the refresh token cookie set at signup/login is
// presented automatically on refresh calls.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// Signup registers a new account and returns an authenticated session.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/signup", body)
	if err != nil {
		return nil, err
	}

	var auth authResponse
	if err := decodeJSON(resp, &auth, http.StatusCreated); err != nil {
		return nil, err
	}

	return c.newSession(auth.User, auth.AccessToken)
}

// Login authenticates with email and password and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := jsonBody(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/login", body)
	if err != nil {
		return nil, err
	}

	var auth authResponse
	if err := decodeJSON(resp, &auth, http.StatusOK); err != nil {
		return nil, err
	}

	return c.newSession(auth.User, auth.AccessToken)
}

// ResumeSession rehydrates a session from the cache without a network
// round trip. The refresh cookie is not persisted, so a resumed session
// whose access token has already expired cannot refresh; its first
// authenticated call fails and the caller must log in again.
func (c *Client) ResumeSession() (*Session, error) {
	if c.Cache == nil {
		return nil, ErrNoCachedSession
	}

	state, err := c.Cache.Load()
	if err != nil {
		return nil, err
	}

	return c.newSession(state.User, state.AccessToken)
}

// newSession builds a session around an issued access token. The token
// is self-describing; its expiry is decoded locally, never fetched.
func (c *Client) newSession(user User, accessToken string) (*Session, error) {
	claims, err := jwtx.DecodeUnverified(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("access token carries no expiry claim")
	}

	s := &Session{
		client:      c,
		user:        user,
		accessToken: accessToken,
		expiresAt:   claims.ExpiresAt.Time,
	}
	s.persist()

	return s, nil
}
