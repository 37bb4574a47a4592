package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims carried by an access token issued by the
// external identity provider.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenVerifier validates access tokens. Tokens are never issued by this service.
type TokenVerifier interface {
	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
