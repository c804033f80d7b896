package http

import (
	"net/http"
	"time"
)

// refreshCookieName is the cookie carrying the refresh token.
const refreshCookieName = "refreshToken"

// refreshCookiePath scopes the cookie so the browser only attaches it to
// the refresh endpoint, never to ordinary API calls.
const refreshCookiePath = "/api/refresh"

// setRefreshCookie installs the refresh token as an httpOnly cookie. The
// token never appears in a response body; this cookie is its only home.
func setRefreshCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
