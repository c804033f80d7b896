package http

import (
	"net/http"

	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
)

// RefreshHandler serves POST /api/refresh. The refresh token arrives only
// via its cookie; a missing cookie and an invalid token are distinct
// failures so clients know whether logging in again can help.
type RefreshHandler struct {
	AuthService *service.AuthService
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ServeHTTP godoc
//
//	@Summary		Mint a fresh access token
//	@Description	Reads the refresh token from its httpOnly cookie and returns a new access token. The refresh token is not rotated.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	refreshResponse
//	@Failure		401	{object}	map[string]string	"error - no refresh token cookie"
//	@Failure		403	{object}	map[string]string	"error - invalid or expired refresh token"
//	@Router			/api/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "No refresh token")
		return
	}

	access, _, err := h.AuthService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		httpx.WriteError(w, http.StatusForbidden, "Invalid refresh token")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}
