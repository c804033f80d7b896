package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/notify"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/cryptox"
	"github.com/sumansi/storefront/pkg/idx"
	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/sumansi/storefront/pkg/slogx"
)

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrInvalidResetToken  = errors.New("invalid_reset_token")
	ErrNotFound           = errors.New("not_found")
)

// dummyHash is verified against when login hits an unknown email, so the
// request costs the same whether or not the account exists.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$t2Dz0ZSSSJJEwBEqdS4hmevRZ6xWC9ANbvMJyMNKAK0"

// AuthService owns the account lifecycle: registration, credential
// verification, token minting and password recovery.
type AuthService struct {
	Store  store.Store
	Issuer *jwtx.Issuer
	Mailer *notify.Mailer

	// ResetURLBase is the client-side page the reset email links to. The raw
	// token is appended as the final path segment.
	ResetURLBase string

	// ResetTokenTTL bounds how long a reset link stays valid.
	ResetTokenTTL time.Duration
}

// Signup registers a new account and mints its first token pair. All four
// fields are required; the email must be unused.
func (s *AuthService) Signup(ctx context.Context, name, email, phone, password string) (domain.User, jwtx.TokenPair, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || password == "" {
		return domain.User{}, jwtx.TokenPair{}, ErrMissingFields
	}

	// Friendly pre-check. The UNIQUE(email) column still backstops the
	// race between concurrent signups for the same address.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, jwtx.TokenPair{}, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		UserID:       domain.NewUserID(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, jwtx.TokenPair{}, ErrEmailExists
		}
		return domain.User{}, jwtx.TokenPair{}, err
	}

	pair, err := s.Issuer.IssueTokens(user.UserID, user.Email)
	if err != nil {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	if s.Mailer != nil {
		s.Mailer.SendWelcome(user.Name, user.Email)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.UserID))
	return user, pair, nil
}

// Login verifies the credentials and mints a fresh token pair. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, jwtx.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, jwtx.TokenPair{}, ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.User{}, jwtx.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, jwtx.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, jwtx.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.Issuer.IssueTokens(user.UserID, user.Email)
	if err != nil {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	if s.Mailer != nil {
		s.Mailer.SendLoginAlert(user.Name, user.Email, time.Now())
	}

	slogx.FromContext(ctx).Info("user logged in", slog.String("user_id", user.UserID))
	return user, pair, nil
}

// Refresh verifies a refresh token and mints a new access token. The
// refresh token itself is not rotated and no account lookup happens; the
// token's own signature and expiry are the whole check.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Duration, error) {
	claims, err := s.Issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return "", 0, ErrInvalidRefresh
	}
	return s.Issuer.IssueAccessToken(claims.UserID(), claims.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
