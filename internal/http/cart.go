package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// CartHandler serves the /api/cart routes. Every route is scoped to the
// authenticated user; there is no way to address another user's cart.
type CartHandler struct {
	CartService *service.CartService
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// HandleList godoc
//
//	@Summary	List the user's cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{array}		domain.CartItem
//	@Failure	401	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/cart [get].
func (h *CartHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	items, err := h.CartService.ListItems(r.Context(), userID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing cart failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleAdd godoc
//
//	@Summary	Add a product to the cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		addCartItemRequest	true	"Line item"
//	@Success	201		{object}	domain.CartItem
//	@Failure	400		{object}	map[string]string	"error"
//	@Failure	404		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/cart [post].
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	item, err := h.CartService.AddItem(r.Context(), userID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Product id required")
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
		default:
			slogx.FromContext(r.Context()).Error("adding cart item failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, item)
}

// HandleRemove godoc
//
//	@Summary	Remove one line item
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string				true	"Cart item id"
//	@Success	200	{object}	map[string]string	"message"
//	@Failure	404	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/cart/{id} [delete].
func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if err := h.CartService.RemoveItem(r.Context(), userID, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		slogx.FromContext(r.Context()).Error("removing cart item failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Item removed"})
}

// HandleClear godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	map[string]string	"message"
//	@Failure	401	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/cart [delete].
func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if err := h.CartService.Clear(r.Context(), userID); err != nil {
		slogx.FromContext(r.Context()).Error("clearing cart failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
