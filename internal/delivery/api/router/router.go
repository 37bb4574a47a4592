// Package router wires the API handlers onto echo routes.
package router

import (
	"mrisafe/internal/delivery/api/middleware"
	"mrisafe/internal/delivery/api/router/handler"
	"mrisafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler   *handler.DeviceHandler
	CatalogHandler  *handler.CatalogHandler
	WaitlistHandler *handler.WaitlistHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler   *handler.DeviceHandler
	catalogHandler  *handler.CatalogHandler
	waitlistHandler *handler.WaitlistHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:   params.DeviceHandler,
		catalogHandler:  params.CatalogHandler,
		waitlistHandler: params.WaitlistHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Device catalog
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.GET("/export", r.deviceHandler.ExportDevices)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.GET("/:id/qr", r.deviceHandler.GetDeviceQR)
	}

	apiV1.GET("/search", r.deviceHandler.SearchDevices)
	apiV1.GET("/search/suggestions", r.deviceHandler.Suggestions)
	apiV1.GET("/safety-statuses", r.deviceHandler.SafetyStatuses)
	apiV1.GET("/listing", r.catalogHandler.GetListingPage)

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.catalogHandler.ListCategories)
		categoriesGroup.GET("/:id", r.catalogHandler.GetCategory)
	}

	manufacturersGroup := apiV1.Group("/manufacturers")
	{
		manufacturersGroup.GET("", r.catalogHandler.ListManufacturers)
		manufacturersGroup.GET("/:id", r.catalogHandler.GetManufacturer)
	}

	// Waitlist: sign-up is public, the listing is for admins
	apiV1.POST("/waitlist", r.waitlistHandler.JoinWaitlist)
	apiV1.GET("/waitlist", r.waitlistHandler.ListWaitlist,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	apiV1.GET("/me", r.sessionHandler.Me, r.authMiddleware.Authenticate)
}
