package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants for the session lifecycle.
const (
	// DefaultAccessTokenTTL is the lifetime for access tokens. Fixed policy:
	// the client-side tracker warns one minute before this expires.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	// Overridable via JWT_REFRESH_EXPIRY.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims are the token claims shared by access and refresh tokens. The
// subject carries the public userId; both tokens are self-contained and
// never persisted server-side.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewClaims builds minimally-correct claims for a user identity.
func NewClaims(userID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}

// UserID returns the subject claim, the public opaque user identifier.
func (c *Claims) UserID() string { return c.Subject }

// ValidateExpiry ensures the token hasn't expired. Strict, no grace period:
// the guard rejects at the exp instant and refresh is the client's job.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// ExpiresIn reports the remaining lifetime of the token at time now.
// Negative durations mean the token is already expired.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
