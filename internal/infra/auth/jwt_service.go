// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mrisafe/config"
	"mrisafe/internal/domain/service"
	"mrisafe/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// allowedClockSkew tolerates small drift between this host and the identity provider.
const allowedClockSkew = 30 * time.Second

// jwtService is a concrete implementation of the TokenVerifier interface using the JWT standard.
type jwtService struct {
	secret []byte // Shared HS256 secret of the identity provider.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
	}, nil
}

// ValidateToken checks the signature, algorithm and expiry of a token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(allowedClockSkew),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	if claims.Subject == "" {
		return nil, errors.New("access token has no subject")
	}

	return claims, nil
}
