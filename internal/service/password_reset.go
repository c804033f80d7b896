package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/cryptox"
	"github.com/sumansi/storefront/pkg/slogx"
)

// resetTokenBytes is the entropy of a password-reset token before encoding.
const resetTokenBytes = 32

// ForgotPassword starts password recovery. It always reports success to the
// caller; whether the address has an account is not disclosed. When the
// account exists a single-use link is mailed, valid for ResetTokenTTL.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(resetTokenBytes)
	if err != nil {
		return err
	}

	ttl := s.ResetTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	expires := time.Now().UTC().Add(ttl)

	// Only the fingerprint is stored; the raw token exists solely in the
	// emailed link.
	if err := s.Store.Users().SetResetToken(ctx, user.UserID, cryptox.FingerprintToken(token), expires); err != nil {
		return err
	}

	if s.Mailer != nil {
		resetURL := strings.TrimRight(s.ResetURLBase, "/") + "/" + token
		s.Mailer.SendPasswordReset(user.Name, user.Email, resetURL)
	}

	slogx.FromContext(ctx).Info("password reset issued", slog.String("user_id", user.UserID))
	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// token is single use: success clears it, and an expired or unknown token
// fails with ErrInvalidResetToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByResetTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return ErrInvalidResetToken
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.UserID, hash); err != nil {
			return err
		}
		return tx.Users().ClearResetToken(ctx, user.UserID)
	})
}
