package storesdk

import (
	"context"
	"net/http"
)

// ListCart retrieves the authenticated user's cart.
func (s *Session) ListCart(ctx context.Context) ([]CartItem, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return nil, err
	}

	var items []CartItem
	if err := decodeJSON(resp, &items, http.StatusOK); err != nil {
		return nil, err
	}

	return items, nil
}

// AddToCart adds a product to the cart. Size is optional; a quantity
// below one is stored as one.
func (s *Session) AddToCart(ctx context.Context, productID, size string, quantity int) (CartItem, error) {
	body, err := jsonBody(map[string]any{
		"productId": productID,
		"size":      size,
		"quantity":  quantity,
	})
	if err != nil {
		return CartItem{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/cart", body)
	if err != nil {
		return CartItem{}, err
	}

	var item CartItem
	if err := decodeJSON(resp, &item, http.StatusCreated); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// RemoveCartItem deletes one line item from the cart by its id.
func (s *Session) RemoveCartItem(ctx context.Context, itemID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/cart/"+itemID, nil)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// ClearCart empties the cart.
func (s *Session) ClearCart(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/cart", nil)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
