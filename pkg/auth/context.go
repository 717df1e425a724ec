package auth

import (
	"context"
	"errors"
)

// AnonymousUserID identifies unauthenticated requests in development mode.
const AnonymousUserID = "anonymous"

type contextKey string

const userContextKey contextKey = "auth.user"

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID string
	Email  string
}

// ErrNoUserInContext is returned when no identity was attached.
var ErrNoUserInContext = errors.New("no user in context")

// SetUserInContext attaches the user identity to the context.
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext extracts the user identity from the context.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}

// UserIDFromContext returns the user ID, or AnonymousUserID when absent.
func UserIDFromContext(ctx context.Context) string {
	user, err := GetUserFromContext(ctx)
	if err != nil {
		return AnonymousUserID
	}
	return user.UserID
}
