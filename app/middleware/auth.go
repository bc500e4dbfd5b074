package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "techwritehub/app/jwt"
	"techwritehub/app/services"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.UserService
}

// RequireAuth resolves the bearer token to an existing user record before the
// request reaches a resource handler. Tokens of deleted accounts fail here.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if _, err := a.Users.Get(claims.UserID); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
