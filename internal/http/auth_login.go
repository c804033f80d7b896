package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// LoginHandler serves POST /api/login.
type LoginHandler struct {
	AuthService  *service.AuthService
	SecureCookie bool
	RefreshTTL   time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and returns an access token. The refresh token is set as an httpOnly cookie scoped to /api/refresh.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	authResponse
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		500		{object}	map[string]string	"error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, pair, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, service.ErrInvalidCredentials):
			// Same body for unknown email and wrong password.
			httpx.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		default:
			slogx.FromContext(r.Context()).Error("login failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	setRefreshCookie(w, pair.RefreshToken, h.RefreshTTL, h.SecureCookie)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authResponse{
		Message:     "Login successful",
		AccessToken: pair.AccessToken,
		User:        user.Public(),
	})
}
