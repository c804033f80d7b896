// Package jwtx mints and verifies the signed session credentials: a
// short-lived access token and a longer-lived refresh token, each HMAC
// signed with its own secret. Tokens are stateless; expiry is the only
// termination mechanism.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret reports an Issuer constructed without both signing
	// secrets. This is a configuration error and must abort startup:
	// signing with an empty key would quietly break all authentication.
	ErrMissingSecret = errors.New("jwtx: missing signing secret")

	// ErrInvalidToken covers malformed tokens, bad signatures and tokens
	// signed with the wrong secret. Callers treat it the same as expiry.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired reports a structurally valid token past its exp claim.
	ErrExpired = errors.New("jwtx: token expired")
)

// Issuer mints and verifies token pairs for authenticated identities.
// It performs no credential verification itself; callers must only hand
// it identities they have already authenticated.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewIssuer validates the secrets and returns a ready Issuer. Zero TTLs
// fall back to the package defaults.
func NewIssuer(accessSecret, refreshSecret, issuer string, refreshTTL time.Duration) (*Issuer, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, ErrMissingSecret
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		Issuer:        issuer,
		AccessTTL:     DefaultAccessTokenTTL,
		RefreshTTL:    refreshTTL,
	}, nil
}

// TokenPair is the result of minting: both signed tokens plus the access
// token's lifetime for clients that want it without decoding.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// IssueTokens mints an access/refresh pair bound to the given identity.
func (i *Issuer) IssueTokens(userID, email string) (TokenPair, error) {
	now := time.Now().UTC()

	access, err := sign(NewClaims(userID, email, i.Issuer, i.AccessTTL, now), i.accessSecret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("jwtx: sign access token: %w", err)
	}

	refresh, err := sign(NewClaims(userID, email, i.Issuer, i.RefreshTTL, now), i.refreshSecret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("jwtx: sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    i.AccessTTL,
	}, nil
}

// IssueAccessToken mints only a new access token, used by the refresh
// endpoint (the refresh token is not rotated in this flow).
func (i *Issuer) IssueAccessToken(userID, email string) (string, time.Duration, error) {
	now := time.Now().UTC()
	access, err := sign(NewClaims(userID, email, i.Issuer, i.AccessTTL, now), i.accessSecret)
	if err != nil {
		return "", 0, fmt.Errorf("jwtx: sign access token: %w", err)
	}
	return access, i.AccessTTL, nil
}

// VerifyAccess checks the signature and expiry of an access token and
// returns the decoded claims.
func (i *Issuer) VerifyAccess(token string) (Claims, error) {
	return verify(token, i.accessSecret, i.Issuer)
}

// VerifyRefresh checks the signature and expiry of a refresh token and
// returns the decoded claims.
func (i *Issuer) VerifyRefresh(token string) (Claims, error) {
	return verify(token, i.refreshSecret, i.Issuer)
}

// AccessVerifier exposes only access-token verification. The HTTP guard
// takes this so it can never accidentally accept a refresh token.
type AccessVerifier interface {
	VerifyAccess(token string) (Claims, error)
}

func sign(claims Claims, secret []byte) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func verify(tokenStr string, secret []byte, issuer string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Expiry is checked separately so expired tokens report ErrExpired
		// rather than a generic parse failure.
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if issuer != "" && claims.Issuer != issuer {
		return Claims{}, fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// DecodeUnverified extracts claims without checking the signature. The
// client-side tracker uses this to read its own token's expiry locally;
// it must never be used for authorization decisions.
func DecodeUnverified(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	var claims Claims
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}
