package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// ForgotPasswordHandler serves POST /api/forgot-password.
type ForgotPasswordHandler struct {
	AuthService *service.AuthService
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ServeHTTP godoc
//
//	@Summary		Request a password reset link
//	@Description	Emails a single-use reset link when the address has an account. The response does not reveal whether the account exists.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		forgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	map[string]string		"message"
//	@Failure		400		{object}	map[string]string		"error"
//	@Failure		500		{object}	map[string]string		"error"
//	@Router			/api/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Email required")
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "Email required")
			return
		}
		slogx.FromContext(r.Context()).Error("forgot password failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "If that email is registered, a reset link has been sent",
	})
}

// ResetPasswordHandler serves POST /api/reset-password/{token}.
type ResetPasswordHandler struct {
	AuthService *service.AuthService
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Reset the password with an emailed token
//	@Description	Consumes the single-use token from the reset link and installs the new password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string					true	"Reset token from the emailed link"
//	@Param			body	body		resetPasswordRequest	true	"New password"
//	@Success		200		{object}	map[string]string		"message"
//	@Failure		400		{object}	map[string]string		"error"
//	@Failure		500		{object}	map[string]string		"error"
//	@Router			/api/reset-password/{token} [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Password required")
		return
	}

	err := h.AuthService.ResetPassword(r.Context(), r.PathValue("token"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Password required")
		case errors.Is(err, service.ErrInvalidResetToken):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired reset token")
		default:
			slogx.FromContext(r.Context()).Error("password reset failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password reset successful"})
}
