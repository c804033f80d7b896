package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByUserID fetches a user by its public id.
func (s *UserService) GetUserByUserID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile changes the mutable account fields and returns the fresh
// record. Name must remain non-empty; phone and avatar may be cleared.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, phone, avatar string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrMissingFields
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, name, strings.TrimSpace(phone), strings.TrimSpace(avatar)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByUserID(ctx, userID)
}

// ListUsers returns every account as its public projection, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}
