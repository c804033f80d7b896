package storesdk

import (
	"context"
	"net/http"
)

// Wishlist retrieves the authenticated user's wishlist.
func (s *Session) Wishlist(ctx context.Context) ([]WishlistEntry, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/wishlist", nil)
	if err != nil {
		return nil, err
	}

	var entries []WishlistEntry
	if err := decodeJSON(resp, &entries, http.StatusOK); err != nil {
		return nil, err
	}

	return entries, nil
}

// ToggleWishlist flips a product's wished state and reports the
// resulting state.
func (s *Session) ToggleWishlist(ctx context.Context, productID string) (WishlistStatus, error) {
	body, err := jsonBody(map[string]string{"productId": productID})
	if err != nil {
		return WishlistStatus{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/wishlist", body)
	if err != nil {
		return WishlistStatus{}, err
	}

	var status WishlistStatus
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return WishlistStatus{}, err
	}

	return status, nil
}

// RemoveWishlistEntry removes a product from the wishlist.
func (s *Session) RemoveWishlistEntry(ctx context.Context, productID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/wishlist/"+productID, nil)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
