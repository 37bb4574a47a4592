package context

import (
	"context"

	"mrisafe/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for storing the authenticated caller's claims.
const KeyUser ContextKey = "user"

// SetUser stores the verified claims in echo.Context.
func SetUser(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyUser), claims)
}

// GetUser returns the verified claims stored by the auth middleware.
func GetUser(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyUser)).(*service.Claims)

	return claims, ok && claims != nil
}

// WithUser returns a new context carrying the verified claims.
func WithUser(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyUser, claims)
}

// GetUserFromContext extracts the verified claims from standard context.Context.
func GetUserFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(KeyUser).(*service.Claims)

	return claims, ok && claims != nil
}
