package handler

import (
	"net/http"

	"mrisafe/internal/delivery/api/response"
	"mrisafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WaitlistHandlerParams holds dependencies for WaitlistHandler, injected by Fx.
type WaitlistHandlerParams struct {
	fx.In

	WaitlistUC usecase.WaitlistUsecase
}

// WaitlistHandler serves the launch waitlist
type WaitlistHandler struct {
	waitlistUC usecase.WaitlistUsecase
}

// NewWaitlistHandler is the constructor for WaitlistHandler
func NewWaitlistHandler(params WaitlistHandlerParams) *WaitlistHandler {
	return &WaitlistHandler{waitlistUC: params.WaitlistUC}
}

// JoinWaitlistRequest represents the request body for a waitlist sign-up
type JoinWaitlistRequest struct {
	Email  string `json:"email" validate:"required"`
	Source string `json:"source" validate:"max=64"`
}

// JoinWaitlist handles a sign-up. Repeated emails are reported as success.
func (h *WaitlistHandler) JoinWaitlist(c echo.Context) error {
	var req JoinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waitlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.waitlistUC.Join(c.Request().Context(), req.Email, req.Source)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.AlreadyJoined {
		status = http.StatusOK
	}

	return response.Success(c, status, result)
}

// ListWaitlist returns every sign-up, newest first
func (h *WaitlistHandler) ListWaitlist(c echo.Context) error {
	entries, err := h.waitlistUC.ListEntries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}
