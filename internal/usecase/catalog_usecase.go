package usecase

import (
	"context"

	"mrisafe/internal/domain/entity"
)

// ListingPage is everything the device listing surface loads up front.
type ListingPage struct {
	Devices       []*entity.Device       `json:"devices"`
	Categories    []*entity.Category     `json:"categories"`
	Manufacturers []*entity.Manufacturer `json:"manufacturers"`
}

// CatalogUsecase defines the read use cases over the device catalog.
// Every failure is logged with the operation name before it is returned.
type CatalogUsecase interface {
	// ListDevices returns joined devices matching the structured filters and name substring
	ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error)

	// GetDevice returns one joined device
	GetDevice(ctx context.Context, id int64) (*entity.Device, error)

	// SearchDevices runs a free-text search; a blank query returns no devices
	SearchDevices(ctx context.Context, query string) ([]*entity.Device, error)

	// DevicesBySafetyStatus returns the devices with the given classification
	DevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error)

	// ListCategories returns every category
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns one category
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)

	// ListManufacturers returns every manufacturer
	ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error)

	// GetManufacturer returns one manufacturer
	GetManufacturer(ctx context.Context, id int64) (*entity.Manufacturer, error)

	// LoadListingPage fetches devices, categories and manufacturers concurrently
	LoadListingPage(ctx context.Context) (*ListingPage, error)
}
