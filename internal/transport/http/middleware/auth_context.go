package middleware

import (
	"context"

	"github.com/accountkit/user-service/internal/domain"
)

type ctxKey struct{}

var userKey ctxKey

// WithUser attaches the resolved account to the request context.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the account resolved by the auth middleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok && u.ID != ""
}
