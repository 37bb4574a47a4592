package handler

import (
	"net/http"

	"mrisafe/internal/delivery/api/response"
	deliverycontext "mrisafe/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SessionHandler reports who the caller is and whether the service is up
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Me returns the identity carried by the caller's access token.
// It requires the authentication middleware.
func (h *SessionHandler) Me(c echo.Context) error {
	claims, ok := deliverycontext.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": claims.UserID(),
		"email":  claims.Email,
		"role":   claims.Role,
		"status": "authenticated",
	})
}

// HealthCheck is the liveness probe
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
