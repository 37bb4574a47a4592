package remote

import (
	"context"
	"strconv"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/errors"
	"mrisafe/internal/search"
)

const (
	tableDevices       = "devices"
	tableManufacturers = "manufacturers"
	tableCategories    = "device_categories"
	tableWaitlist      = "waitlist"
)

// catalogRepository implements repository.CatalogRepository against the hosted data service.
type catalogRepository struct {
	client *Client
}

// NewCatalogRepository is the constructor for the remote catalog.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

// ListDevices fetches joined devices, translating filters into equality and ilike parameters.
func (repo *catalogRepository) ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error) {
	q := newQuery(joinedDeviceSelect)
	if filters != nil {
		if filters.CategoryID != nil {
			q = q.eqInt("category_id", *filters.CategoryID)
		}
		if filters.ManufacturerID != nil {
			q = q.eqInt("manufacturer_id", *filters.ManufacturerID)
		}
		if filters.SafetyStatus != nil {
			q = q.eq("safety_status", string(*filters.SafetyStatus))
		}
		if filters.Query != nil && *filters.Query != "" {
			q = q.ilike("name", *filters.Query)
		}
	}

	var rows []deviceRow
	if err := repo.client.list(ctx, tableDevices, q, &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list devices")
	}

	return toDevices(rows), nil
}

// GetDeviceByID fetches one joined device under the single-row contract.
func (repo *catalogRepository) GetDeviceByID(ctx context.Context, id int64) (*entity.Device, error) {
	var row deviceRow
	err := repo.client.single(ctx, tableDevices, newQuery(joinedDeviceSelect).eqInt("id", id), &row)
	if err != nil {
		if isSingularityViolation(err) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDataServiceError(err, "get device "+strconv.FormatInt(id, 10))
	}

	return row.toDomain(), nil
}

// SearchDevices loads the joined catalog and applies the search engine, so that
// manufacturer and category names match exactly as they do for the other sources.
func (repo *catalogRepository) SearchDevices(ctx context.Context, query string) ([]*entity.Device, error) {
	if search.IsBlank(query) {
		return []*entity.Device{}, nil
	}

	var rows []deviceRow
	if err := repo.client.list(ctx, tableDevices, newQuery(joinedDeviceSelect), &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "search devices")
	}

	return search.Search(toDevices(rows), query), nil
}

// GetDevicesBySafetyStatus fetches joined devices with the given classification.
func (repo *catalogRepository) GetDevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error) {
	var rows []deviceRow
	q := newQuery(joinedDeviceSelect).eq("safety_status", string(status))
	if err := repo.client.list(ctx, tableDevices, q, &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list devices by safety status")
	}

	return toDevices(rows), nil
}

// ListCategories reads the whole category table.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := repo.client.list(ctx, tableCategories, newQuery("*"), &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].toDomain())
	}

	return categories, nil
}

// GetCategoryByID fetches one category under the single-row contract.
func (repo *catalogRepository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	var row categoryRow
	if err := repo.client.single(ctx, tableCategories, newQuery("*").eqInt("id", id), &row); err != nil {
		if isSingularityViolation(err) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDataServiceError(err, "get category "+strconv.FormatInt(id, 10))
	}

	return row.toDomain(), nil
}

// ListManufacturers reads the whole manufacturer table.
func (repo *catalogRepository) ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error) {
	var rows []manufacturerRow
	if err := repo.client.list(ctx, tableManufacturers, newQuery("*"), &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list manufacturers")
	}

	manufacturers := make([]*entity.Manufacturer, 0, len(rows))
	for i := range rows {
		manufacturers = append(manufacturers, rows[i].toDomain())
	}

	return manufacturers, nil
}

// GetManufacturerByID fetches one manufacturer under the single-row contract.
func (repo *catalogRepository) GetManufacturerByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	var row manufacturerRow
	if err := repo.client.single(ctx, tableManufacturers, newQuery("*").eqInt("id", id), &row); err != nil {
		if isSingularityViolation(err) {
			return nil, repository.ErrManufacturerNotFound
		}

		return nil, domainerrors.NewDataServiceError(err, "get manufacturer "+strconv.FormatInt(id, 10))
	}

	return row.toDomain(), nil
}

func isSingularityViolation(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.IsSingularityViolation()
}

func isUniqueViolation(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.IsUniqueViolation()
}
