package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// WishlistHandler serves the /api/wishlist routes.
type WishlistHandler struct {
	WishlistService *service.WishlistService
}

type wishlistToggleRequest struct {
	ProductID string `json:"productId"`
}

type wishlistToggleResponse struct {
	ProductID string `json:"productId"`
	Wished    bool   `json:"wished"`
}

// HandleList godoc
//
//	@Summary	List the user's wishlist
//	@Tags		Wishlist
//	@Produce	json
//	@Success	200	{array}		domain.WishlistEntry
//	@Failure	401	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/wishlist [get].
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	entries, err := h.WishlistService.List(r.Context(), userID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing wishlist failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if entries == nil {
		entries = []domain.WishlistEntry{}
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

// HandleToggle godoc
//
//	@Summary	Toggle a product's wished state
//	@Tags		Wishlist
//	@Accept		json
//	@Produce	json
//	@Param		body	body		wishlistToggleRequest	true	"Product"
//	@Success	200		{object}	wishlistToggleResponse
//	@Failure	400		{object}	map[string]string	"error"
//	@Failure	404		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/wishlist [post].
func (h *WishlistHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req wishlistToggleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	wished, err := h.WishlistService.Toggle(r.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Product id required")
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
		default:
			slogx.FromContext(r.Context()).Error("toggling wishlist failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wishlistToggleResponse{ProductID: req.ProductID, Wished: wished})
}

// HandleRemove godoc
//
//	@Summary	Remove a product from the wishlist
//	@Tags		Wishlist
//	@Produce	json
//	@Param		productId	path		string				true	"Product id"
//	@Success	200			{object}	map[string]string	"message"
//	@Failure	404			{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/wishlist/{productId} [delete].
func (h *WishlistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if err := h.WishlistService.Remove(r.Context(), userID, r.PathValue("productId")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Wishlist entry not found")
			return
		}
		slogx.FromContext(r.Context()).Error("removing wishlist entry failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Removed from wishlist"})
}
