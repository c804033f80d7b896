package http

import (
	"net/http"

	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// UsersHandler serves GET /api/users.
type UsersHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		List all accounts
//	@Description	Returns the public projection of every account; password hashes and reset tokens never appear.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		domain.PublicUser
//	@Failure		401	{object}	map[string]string	"error"
//	@Security		BearerAuth
//	@Router			/api/users [get].
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing users failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}
