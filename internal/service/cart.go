package service

import (
	"context"
	"errors"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/idx"
)

type CartService struct {
	Store store.Store
}

func (s *CartService) ListItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.Store.CartItems().ListCartItems(ctx, userID)
}

// AddItem puts a product in the user's cart. The product must exist;
// quantity defaults to one.
func (s *CartService) AddItem(ctx context.Context, userID, productID, size string, quantity int) (domain.CartItem, error) {
	if productID == "" {
		return domain.CartItem{}, ErrMissingFields
	}
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.Store.Products().GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CartItem{}, ErrNotFound
		}
		return domain.CartItem{}, err
	}

	item := domain.CartItem{
		ID:        idx.New().String(),
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.Store.CartItems().AddCartItem(ctx, item); err != nil {
		return domain.CartItem{}, err
	}
	return item, nil
}

// RemoveItem deletes one of the user's own line items.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if err := s.Store.CartItems().RemoveCartItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Store.CartItems().ClearCart(ctx, userID)
}
