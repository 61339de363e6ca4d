package middleware

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/models"
)

type userKey struct{}

func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// CurrentUser returns the authenticated user attached by Protect.
func CurrentUser(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}
