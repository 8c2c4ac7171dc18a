package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// SessionContextKey is the context key for the authenticated session.
	SessionContextKey ContextKey = "session"
)

// Auth verifies the bearer token and attaches a session to the request
// context. Every owner-scoped operation downstream takes the session
// explicitly; nothing reads user identity from anywhere else.
func Auth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, claims.Session())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects sessions whose role cannot manage user accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !session.Role.CanManageUsers() {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromContext extracts the authenticated session from context.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(domain.Session)
	return session, ok
}
