package middleware

import (
	"context"
	"net/http"
	"strings"

	"budgettracker/utils"
)

type ctxKey string

// CtxUserIDKey holds the authenticated user's ID in the request context.
const CtxUserIDKey ctxKey = "user_id"

// RequireAuth validates the bearer token and pushes the user ID into the
// request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := utils.VerifyToken(token, secret)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
