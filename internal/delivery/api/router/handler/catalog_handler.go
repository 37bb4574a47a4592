package handler

import (
	"net/http"

	"mrisafe/internal/delivery/api/response"
	"mrisafe/internal/domain/entity"
	"mrisafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves categories, manufacturers and the listing page bundle
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListingPageResponse is everything the listing surface needs in one call
type ListingPageResponse struct {
	Devices       []DeviceView           `json:"devices"`
	Categories    []*entity.Category     `json:"categories"`
	Manufacturers []*entity.Manufacturer `json:"manufacturers"`
	Safety        []SafetyLink           `json:"safety"`
}

// ListCategories handles listing every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory handles a single category
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// ListManufacturers handles listing every manufacturer
func (h *CatalogHandler) ListManufacturers(c echo.Context) error {
	manufacturers, err := h.catalogUC.ListManufacturers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manufacturers)
}

// GetManufacturer handles a single manufacturer
func (h *CatalogHandler) GetManufacturer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	manufacturer, err := h.catalogUC.GetManufacturer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manufacturer)
}

// GetListingPage loads devices, categories and manufacturers together
func (h *CatalogHandler) GetListingPage(c echo.Context) error {
	page, err := h.catalogUC.LoadListingPage(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListingPageResponse{
		Devices:       newDeviceViews(page.Devices),
		Categories:    page.Categories,
		Manufacturers: page.Manufacturers,
		Safety:        safetyLinks(),
	})
}
