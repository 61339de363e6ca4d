package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/repository"
)

// AuthMiddleware resolves the bearer token on protected routes to a full
// user record and attaches it to the request context. The user lookup means
// a token for a since-deleted account is rejected even before expiry.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  repository.Users
}

func NewAuthMiddleware(tokens *auth.TokenManager, users repository.Users) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			httpx.WriteMessage(w, http.StatusUnauthorized, "You are not logged in. Please log in to access this resource.")
			return
		}
		token := strings.TrimSpace(header[len("Bearer "):])

		claims, err := m.tokens.Parse(token)
		if err != nil {
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid token. Please log in again.")
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusUnauthorized, "The user belonging to this token no longer exists.")
			return
		}
		if err != nil {
			httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
