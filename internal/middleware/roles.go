package middleware

import (
	"net/http"

	"github.com/fittrack/fittrack-api/internal/api/httpx"
	"github.com/fittrack/fittrack-api/internal/models"
)

// RequireRole rejects authenticated users whose role is outside the
// allow-list. It must run after Protect.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := map[models.Role]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				httpx.WriteMessage(w, http.StatusUnauthorized, "You are not logged in. Please log in to access this resource.")
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				httpx.WriteMessage(w, http.StatusForbidden, "You do not have permission to perform this action.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
