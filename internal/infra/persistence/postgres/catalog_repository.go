package postgres

import (
	"context"
	"strconv"
	"strings"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/infra/persistence/model"
	"mrisafe/internal/search"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (repo *catalogRepository) joinedDevices(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Preload("Manufacturer").
		Preload("Category").
		Order("devices.id")
}

// ListDevices retrieves joined devices matching every set filter dimension.
func (repo *catalogRepository) ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error) {
	query := repo.joinedDevices(ctx)
	if filters != nil {
		if filters.CategoryID != nil {
			query = query.Where("devices.category_id = ?", *filters.CategoryID)
		}
		if filters.ManufacturerID != nil {
			query = query.Where("devices.manufacturer_id = ?", *filters.ManufacturerID)
		}
		if filters.SafetyStatus != nil {
			query = query.Where("devices.safety_status = ?", string(*filters.SafetyStatus))
		}
		if filters.Query != nil && *filters.Query != "" {
			query = query.Where(`LOWER(devices.name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(*filters.Query))+"%")
		}
	}

	var deviceModels []*model.DeviceModel
	if err := query.Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list devices")
	}

	return toDevicesDomain(deviceModels), nil
}

// GetDeviceByID retrieves one joined device by its id.
func (repo *catalogRepository) GetDeviceByID(ctx context.Context, id int64) (*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	result := repo.joinedDevices(ctx).Where("devices.id = ?", id).Limit(2).Find(&deviceModels)
	if result.Error != nil {
		return nil, domainerrors.NewDataServiceError(result.Error, "get device "+strconv.FormatInt(id, 10))
	}
	if len(deviceModels) != 1 {
		return nil, repository.ErrDeviceNotFound
	}

	return toDeviceDomain(deviceModels[0]), nil
}

// SearchDevices loads the joined catalog and applies the search engine.
func (repo *catalogRepository) SearchDevices(ctx context.Context, query string) ([]*entity.Device, error) {
	if search.IsBlank(query) {
		return []*entity.Device{}, nil
	}

	var deviceModels []*model.DeviceModel
	if err := repo.joinedDevices(ctx).Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDataServiceError(err, "search devices")
	}

	return search.Search(toDevicesDomain(deviceModels), query), nil
}

// GetDevicesBySafetyStatus retrieves joined devices with the given classification.
func (repo *catalogRepository) GetDevicesBySafetyStatus(ctx context.Context, status entity.SafetyStatus) ([]*entity.Device, error) {
	return repo.ListDevices(ctx, &entity.SearchFilters{SafetyStatus: &status})
}

// ListCategories retrieves every category ordered by id.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, toCategoryDomain(m))
	}

	return categories, nil
}

// GetCategoryByID retrieves one category by its id.
func (repo *catalogRepository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	result := repo.db.WithContext(ctx).Where("id = ?", id).Limit(2).Find(&categoryModels)
	if result.Error != nil {
		return nil, domainerrors.NewDataServiceError(result.Error, "get category "+strconv.FormatInt(id, 10))
	}
	if len(categoryModels) != 1 {
		return nil, repository.ErrCategoryNotFound
	}

	return toCategoryDomain(categoryModels[0]), nil
}

// ListManufacturers retrieves every manufacturer ordered by id.
func (repo *catalogRepository) ListManufacturers(ctx context.Context) ([]*entity.Manufacturer, error) {
	var manufacturerModels []*model.ManufacturerModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&manufacturerModels).Error; err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list manufacturers")
	}

	manufacturers := make([]*entity.Manufacturer, 0, len(manufacturerModels))
	for _, m := range manufacturerModels {
		manufacturers = append(manufacturers, toManufacturerDomain(m))
	}

	return manufacturers, nil
}

// GetManufacturerByID retrieves one manufacturer by its id.
func (repo *catalogRepository) GetManufacturerByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	var manufacturerModels []*model.ManufacturerModel

	result := repo.db.WithContext(ctx).Where("id = ?", id).Limit(2).Find(&manufacturerModels)
	if result.Error != nil {
		return nil, domainerrors.NewDataServiceError(result.Error, "get manufacturer "+strconv.FormatInt(id, 10))
	}
	if len(manufacturerModels) != 1 {
		return nil, repository.ErrManufacturerNotFound
	}

	return toManufacturerDomain(manufacturerModels[0]), nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return r.Replace(s)
}

func toDevicesDomain(data []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(data))
	for _, m := range data {
		devices = append(devices, toDeviceDomain(m))
	}

	return devices
}

// toDeviceDomain converts a GORM model to a domain entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	device := &entity.Device{
		ID:               data.ID,
		Name:             data.Name,
		ModelNumber:      data.ModelNumber,
		ManufacturerID:   data.ManufacturerID,
		CategoryID:       data.CategoryID,
		SafetyStatus:     entity.ParseSafetyStatus(data.SafetyStatus),
		Conditions:       data.Conditions,
		FieldStrength:    data.FieldStrength,
		AdditionalInfo:   data.AdditionalInfo,
		DocumentationURL: data.DocumentationURL,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Manufacturer != nil {
		device.Manufacturer = toManufacturerDomain(data.Manufacturer)
	}
	if data.Category != nil {
		device.Category = toCategoryDomain(data.Category)
	}

	return device
}

// fromDeviceDomain converts a domain entity to a GORM model, dropping joined objects.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:               data.ID,
		Name:             data.Name,
		ModelNumber:      data.ModelNumber,
		ManufacturerID:   data.ManufacturerID,
		CategoryID:       data.CategoryID,
		SafetyStatus:     string(data.SafetyStatus),
		Conditions:       data.Conditions,
		FieldStrength:    data.FieldStrength,
		AdditionalInfo:   data.AdditionalInfo,
		DocumentationURL: data.DocumentationURL,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toManufacturerDomain(data *model.ManufacturerModel) *entity.Manufacturer {
	return &entity.Manufacturer{
		ID:           data.ID,
		Name:         data.Name,
		Website:      data.Website,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromManufacturerDomain(data *entity.Manufacturer) *model.ManufacturerModel {
	return &model.ManufacturerModel{
		ID:           data.ID,
		Name:         data.Name,
		Website:      data.Website,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
