package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mrisafe/internal/delivery/api/response"
	deliverycontext "mrisafe/internal/delivery/context"
	"mrisafe/internal/domain/entity"
	"mrisafe/internal/domain/service"
	"mrisafe/internal/query"
	"mrisafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCodeSvc service.QRCodeService
	Exporter  service.CatalogExporter
	Logger    *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	catalogUC usecase.CatalogUsecase
	qrCodeSvc service.QRCodeService
	exporter  service.CatalogExporter
	logger    *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		catalogUC: params.CatalogUC,
		qrCodeSvc: params.QRCodeSvc,
		exporter:  params.Exporter,
		logger:    params.Logger,
	}
}

// DeviceListResponse is the body of the device listing endpoint
type DeviceListResponse struct {
	Devices []DeviceView          `json:"devices"`
	Count   int                   `json:"count"`
	Filters *entity.SearchFilters `json:"filters"`
}

// DeviceDetailResponse is the body of the device detail endpoint
type DeviceDetailResponse struct {
	Device    DeviceView `json:"device"`
	PublicURL string     `json:"publicUrl"`
}

// SearchResponse is the body of the search endpoint
type SearchResponse struct {
	Query      string       `json:"query"`
	Count      int          `json:"count"`
	Summary    string       `json:"summary"`
	Message    string       `json:"message,omitempty"`
	SearchPath string       `json:"searchPath"`
	Devices    []DeviceView `json:"devices"`
}

// SuggestionsResponse is the body of the suggestions endpoint
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Popular     []string `json:"popular"`
}

// SafetyLink is a quick link to the devices of one classification
type SafetyLink struct {
	Status      entity.SafetyStatus `json:"status"`
	Description string              `json:"description"`
	Path        string              `json:"path"`
}

// ListDevices handles the filtered device listing
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.catalogUC.ListDevices(c.Request().Context(), filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeviceListResponse{
		Devices: newDeviceViews(devices),
		Count:   len(devices),
		Filters: filters,
	})
}

// GetDevice handles the device detail page
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.catalogUC.GetDevice(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeviceDetailResponse{
		Device:    newDeviceView(device),
		PublicURL: h.qrCodeSvc.DeviceURL(device.ID),
	})
}

// SearchDevices handles the free-text search. A blank query yields no devices.
func (h *DeviceHandler) SearchDevices(c echo.Context) error {
	q := c.QueryParam("q")

	devices, err := h.catalogUC.SearchDevices(c.Request().Context(), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := SearchResponse{
		Query:      q,
		Count:      len(devices),
		SearchPath: searchPath(q),
		Devices:    newDeviceViews(devices),
	}
	if strings.TrimSpace(q) != "" {
		resp.Summary = query.ResultSummary(len(devices), q)
		if len(devices) == 0 {
			resp.Message = query.EmptyMessage(q)
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

// Suggestions handles autocomplete for the search box. It never searches.
func (h *DeviceHandler) Suggestions(c echo.Context) error {
	q := c.QueryParam("q")

	suggestions := query.Suggest(q)
	if suggestions == nil {
		suggestions = []string{}
	}

	return response.Success(c, http.StatusOK, SuggestionsResponse{
		Query:       q,
		Suggestions: suggestions,
		Popular:     query.PopularTerms,
	})
}

// SafetyStatuses lists the classifications with links to their devices
func (h *DeviceHandler) SafetyStatuses(c echo.Context) error {
	return response.Success(c, http.StatusOK, safetyLinks())
}

// GetDeviceQR renders a PNG QR code of the device's public detail page
func (h *DeviceHandler) GetDeviceQR(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.catalogUC.GetDevice(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateDeviceQR(device.ID)
	if err != nil {
		return fmt.Errorf("generate QR code for device %d: %w", device.ID, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ExportDevices downloads the filtered listing as a spreadsheet
func (h *DeviceHandler) ExportDevices(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.catalogUC.ListDevices(c.Request().Context(), filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.ExportDevices(&buf, devices); err != nil {
		return fmt.Errorf("export %d devices: %w", len(devices), err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Exported device catalog", slog.Int("devices", len(devices)), slog.Int("bytes", buf.Len()))

	filename := "mri-devices" + h.exporter.FileExtension()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}
