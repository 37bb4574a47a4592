package auth

import (
	"testing"
	"time"

	"mrisafe/config"
	"mrisafe/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{JWTSecret: secret}}
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() *service.Claims {
	return &service.Claims{
		Email: "clinician@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "c0ffee00-0000-0000-0000-000000000001",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)

	verifier, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	assert.NotNil(t, verifier)
}

func TestJWTService_ValidateToken(t *testing.T) {
	verifier, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	claims, err := verifier.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "c0ffee00-0000-0000-0000-000000000001", claims.UserID())
	assert.Equal(t, "clinician@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	verifier, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-jwt"},
		{"Wrong secret", sign(t, jwt.SigningMethodHS256, []byte("another_secret"), validClaims())},
		{"Wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{"Unsigned", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())},
		{"Expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"Missing expiry", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"Missing subject", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
