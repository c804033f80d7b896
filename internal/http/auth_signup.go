package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// SignupHandler serves POST /api/signup.
type SignupHandler struct {
	AuthService  *service.AuthService
	SecureCookie bool
	RefreshTTL   time.Duration
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type authResponse struct {
	Message     string            `json:"message"`
	AccessToken string            `json:"accessToken"`
	User        domain.PublicUser `json:"user"`
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account and returns an access token. The refresh token is set as an httpOnly cookie scoped to /api/refresh.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		signupRequest	true	"Registration details"
//	@Success		201		{object}	authResponse
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		500		{object}	map[string]string	"error"
//	@Router			/api/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "All fields required")
		return
	}

	user, pair, err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "All fields required")
		case errors.Is(err, service.ErrEmailExists):
			httpx.WriteError(w, http.StatusBadRequest, "Email already exists")
		default:
			slogx.FromContext(r.Context()).Error("signup failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	setRefreshCookie(w, pair.RefreshToken, h.RefreshTTL, h.SecureCookie)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, authResponse{
		Message:     "User registered successfully",
		AccessToken: pair.AccessToken,
		User:        user.Public(),
	})
}
