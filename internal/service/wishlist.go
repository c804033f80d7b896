package service

import (
	"context"
	"errors"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
)

type WishlistService struct {
	Store store.Store
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]domain.WishlistEntry, error) {
	return s.Store.Wishlists().ListWishlist(ctx, userID)
}

// Toggle flips a product's wished state and reports whether it is wished
// after the call.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if productID == "" {
		return false, ErrMissingFields
	}

	if _, err := s.Store.Products().GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	wished, err := s.Store.Wishlists().HasWishlistEntry(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	if wished {
		if err := s.Store.Wishlists().RemoveWishlistEntry(ctx, userID, productID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return false, err
		}
		return false, nil
	}

	entry := domain.WishlistEntry{UserID: userID, ProductID: productID, AddedAt: time.Now().UTC()}
	if err := s.Store.Wishlists().AddWishlistEntry(ctx, entry); err != nil {
		// A concurrent toggle may have won the race; treat as wished.
		if errors.Is(err, store.ErrAlreadyExists) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Remove explicitly takes a product off the wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.Store.Wishlists().RemoveWishlistEntry(ctx, userID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
