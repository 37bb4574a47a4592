package handler

import (
	"net/url"
	"strconv"
	"strings"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

// DeviceView is a device as rendered by the API, with its navigation links.
type DeviceView struct {
	*entity.Device
	StatusDescription string `json:"statusDescription"`
	DetailPath        string `json:"detailPath"`
	QRCodePath        string `json:"qrCodePath"`
}

func newDeviceView(device *entity.Device) DeviceView {
	return DeviceView{
		Device:            device,
		StatusDescription: device.SafetyStatus.Description(),
		DetailPath:        detailPath(device.ID),
		QRCodePath:        detailPath(device.ID) + "/qr",
	}
}

func newDeviceViews(devices []*entity.Device) []DeviceView {
	views := make([]DeviceView, 0, len(devices))
	for _, device := range devices {
		if device == nil {
			continue
		}
		views = append(views, newDeviceView(device))
	}

	return views
}

func detailPath(id int64) string {
	return apiPrefix + "/devices/" + url.PathEscape(strconv.FormatInt(id, 10))
}

func searchPath(query string) string {
	return apiPrefix + "/search?q=" + url.QueryEscape(query)
}

func safetyLinks() []SafetyLink {
	links := make([]SafetyLink, 0, len(entity.SafetyStatuses))
	for _, status := range entity.SafetyStatuses {
		links = append(links, SafetyLink{
			Status:      status,
			Description: status.Description(),
			Path:        safetyPath(status),
		})
	}

	return links
}

func safetyPath(status entity.SafetyStatus) string {
	return apiPrefix + "/devices?safety=" + url.QueryEscape(string(status))
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + ": " + strconv.Quote(raw))
	}

	return id, nil
}

// optionalID reads a positive integer query parameter; absent means nil.
func optionalID(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + ": " + strconv.Quote(raw))
	}

	return &id, nil
}

// parseFilters reads categoryId, manufacturerId, safety and q from the query string.
func parseFilters(c echo.Context) (*entity.SearchFilters, error) {
	filters := &entity.SearchFilters{}

	var err error
	if filters.CategoryID, err = optionalID(c, "categoryId"); err != nil {
		return nil, err
	}
	if filters.ManufacturerID, err = optionalID(c, "manufacturerId"); err != nil {
		return nil, err
	}

	if raw := c.QueryParam("safety"); raw != "" {
		status := entity.SafetyStatus(raw)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid safety: " + strconv.Quote(raw))
		}
		filters.SafetyStatus = &status
	}

	if q := c.QueryParam("q"); strings.TrimSpace(q) != "" {
		filters.Query = &q
	}

	return filters, nil
}
