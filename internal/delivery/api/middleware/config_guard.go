package middleware

import (
	"log/slog"

	"mrisafe/config"

	"github.com/labstack/echo/v4"
)

// ConfigGuard answers every request with the configuration error while the
// data source is missing its connection parameters.
type ConfigGuard struct {
	err error
}

// NewConfigGuard validates cfg once at startup.
func NewConfigGuard(cfg *config.Config, logger *slog.Logger) *ConfigGuard {
	err := cfg.Validate()
	if err != nil {
		logger.Error("Serving configuration error on every route", slog.Any("error", err))
	}

	return &ConfigGuard{err: err}
}

// Enabled reports whether the configuration is incomplete.
func (g *ConfigGuard) Enabled() bool {
	return g.err != nil
}

// Handle short-circuits the request with the configuration error.
func (g *ConfigGuard) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if g.err != nil {
			return g.err
		}

		return next(c)
	}
}
