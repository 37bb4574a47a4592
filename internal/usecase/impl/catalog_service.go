package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "mrisafe/internal/delivery/context"
	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/search"
	"mrisafe/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (srv *catalogService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// logFailure records a failed catalog operation. Cancellation is expected when a
// newer search supersedes an older one, so it is only logged at debug level.
func (srv *catalogService) logFailure(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, context.Canceled) || domainerrors.IsNotFound(err) {
		level = slog.LevelDebug
	}

	attrs = append(attrs, slog.String("operation", operation), slog.Any("error", err))
	srv.loggerFromContext(ctx).LogAttrs(ctx, level, "Catalog operation failed", attrs...)
}

// ListDevices returns joined devices matching the filters
func (srv *catalogService) ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error) {
	devices, err := srv.catalogRepo.ListDevices(ctx, filters)
	if err != nil {
		srv.logFailure(ctx, "ListDevices", err, filterAttrs(filters)...)

		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}

// GetDevice returns one joined device
func (srv *catalogService) GetDevice(ctx context.Context, id int64) (*entity.Device, error) {
	device, err := srv.catalogRepo.GetDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			err = domainerrors.ErrDeviceNotFound.WithDetails(fmt.Sprintf("device %d", id))
		}
		srv.logFailure(ctx, "GetDeviceByID", err, slog.Int64("device_id", id))

		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return device, nil
}

// SearchDevices runs a free-text search over the catalog
func (srv *catalogService) SearchDevices(ctx context.Context, query string) ([]*entity.Device, error) {
	if search.IsBlank(query) {
		return []*entity.Device{}, nil
	}

	devices, err := srv.catalogRepo.SearchDevices(ctx, query)
	if err != nil {
		srv.logFailure(ctx, "SearchDevices", err, slog.String("query", query))

		return nil, fmt.Errorf("failed to search devices: %w", err)
	}

	srv.loggerFromContext(ctx).DebugContext(ctx, "Search completed",
		slog.String("query", query),
		slog.Int("count", len(devices)),
	)

	return devices, nil
}

// DevicesBySafetyStatus returns the devices with the given classification
func (srv *catalogService) DevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error) {
	devices, err := srv.catalogRepo.GetDevicesBySafetyStatus(ctx, status)
	if err != nil {
		srv.logFailure(ctx, "GetDevicesBySafetyStatus", err, slog.String("safety_status", string(status)))

		return nil, fmt.Errorf("failed to list devices by safety status: %w", err)
	}

	return devices, nil
}

// ListCategories returns every category
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		srv.logFailure(ctx, "ListCategories", err)

		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetCategory returns one category
func (srv *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.catalogRepo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			err = domainerrors.ErrCategoryNotFound.WithDetails(fmt.Sprintf("category %d", id))
		}
		srv.logFailure(ctx, "GetCategoryByID", err, slog.Int64("category_id", id))

		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// ListManufacturers returns every manufacturer
func (srv *catalogService) ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error) {
	manufacturers, err := srv.catalogRepo.ListManufacturers(ctx)
	if err != nil {
		srv.logFailure(ctx, "ListManufacturers", err)

		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	return manufacturers, nil
}

// GetManufacturer returns one manufacturer
func (srv *catalogService) GetManufacturer(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	manufacturer, err := srv.catalogRepo.GetManufacturerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrManufacturerNotFound) {
			err = domainerrors.ErrManufacturerNotFound.WithDetails(fmt.Sprintf("manufacturer %d", id))
		}
		srv.logFailure(ctx, "GetManufacturerByID", err, slog.Int64("manufacturer_id", id))

		return nil, fmt.Errorf("failed to get manufacturer: %w", err)
	}

	return manufacturer, nil
}

// LoadListingPage fetches devices, categories and manufacturers concurrently.
// The first failure cancels the remaining reads.
func (srv *catalogService) LoadListingPage(ctx context.Context) (*usecase.ListingPage, error) {
	page := &usecase.ListingPage{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		devices, err := srv.ListDevices(groupCtx, nil)
		page.Devices = devices

		return err
	})
	group.Go(func() error {
		categories, err := srv.ListCategories(groupCtx)
		page.Categories = categories

		return err
	})
	group.Go(func() error {
		manufacturers, err := srv.ListManufacturers(groupCtx)
		page.Manufacturers = manufacturers

		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

func filterAttrs(filters *entity.SearchFilters) []slog.Attr {
	if filters == nil {
		return nil
	}

	var attrs []slog.Attr
	if filters.CategoryID != nil {
		attrs = append(attrs, slog.Int64("category_id", *filters.CategoryID))
	}
	if filters.ManufacturerID != nil {
		attrs = append(attrs, slog.Int64("manufacturer_id", *filters.ManufacturerID))
	}
	if filters.SafetyStatus != nil {
		attrs = append(attrs, slog.String("safety_status", string(*filters.SafetyStatus)))
	}
	if filters.Query != nil {
		attrs = append(attrs, slog.String("query", *filters.Query))
	}

	return attrs
}
