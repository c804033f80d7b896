package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// ProfileHandler serves PUT /api/user/profile. The account to update comes
// from the verified token, never from the body.
type ProfileHandler struct {
	UserService *service.UserService
}

type profileRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

type profileResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

// ServeHTTP godoc
//
//	@Summary		Update the authenticated user's profile
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		profileRequest	true	"Profile fields"
//	@Success		200		{object}	profileResponse
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		401		{object}	map[string]string	"error"
//	@Security		BearerAuth
//	@Router			/api/user/profile [put].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	user, err := h.UserService.UpdateProfile(r.Context(), userID, req.Name, req.Phone, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Name required")
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found")
		default:
			slogx.FromContext(r.Context()).Error("profile update failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse{
		Message: "Profile updated",
		User:    user.Public(),
	})
}
