package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// RequireAuth is the authorization guard for protected operations. It
// extracts the bearer access token, verifies it, and attaches the decoded
// identity to the request context. It is a pure gate: absent, malformed or
// expired tokens get a 401 and the protected handler never runs. Refreshing
// is exclusively the client's responsibility.
//
// The access token is only ever read from the Authorization header, never
// from a cookie; the refresh cookie belongs to the refresh endpoint alone.
func RequireAuth(v jwtx.AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifyAccess(raw)
			if err != nil {
				log.Warn("access token rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx = contextWithIdentity(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithIdentity(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID())
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
