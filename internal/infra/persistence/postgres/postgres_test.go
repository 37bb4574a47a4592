package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/infra/dataservice/fixture"
	"mrisafe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.ManufacturerModel{},
		&model.CategoryModel{},
		&model.DeviceModel{},
		&model.WaitlistModel{},
	))

	return db
}

func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	ctx := context.Background()
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		w := f.NewCatalogWriter()
		if err := w.SaveManufacturers(ctx, fixture.Manufacturers()); err != nil {
			return err
		}
		if err := w.SaveCategories(ctx, fixture.Categories()); err != nil {
			return err
		}

		return w.SaveDevices(ctx, fixture.Devices())
	})
	require.NoError(t, err)
}

func deviceIDs(devices []*entity.Device) []int64 {
	out := make([]int64, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.ID)
	}

	return out
}

func TestCatalogRepository_ListDevices(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	all, err := repo.ListDevices(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, deviceIDs(all))
	require.NotNil(t, all[0].Manufacturer)
	assert.Equal(t, "Medtronic", all[0].Manufacturer.Name)
	require.NotNil(t, all[0].Category)
	assert.Equal(t, "Neurostimulators", all[0].Category.Name)
	assert.Equal(t, "NI-X1-2023", entity.StringValue(all[0].ModelNumber))

	manufacturerID := int64(1)
	status := entity.SafetyStatusConditional
	devices, err := repo.ListDevices(ctx, &entity.SearchFilters{ManufacturerID: &manufacturerID, SafetyStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, deviceIDs(devices))

	name := "neuro"
	devices, err = repo.ListDevices(ctx, &entity.SearchFilters{Query: &name})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, deviceIDs(devices))

	wildcard := "%"
	devices, err = repo.ListDevices(ctx, &entity.SearchFilters{Query: &wildcard})
	require.NoError(t, err)
	assert.Empty(t, devices, "LIKE wildcards in the query are literal")
}

func TestCatalogRepository_GetDeviceByID(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewCatalogRepository(db)

	device, err := repo.GetDeviceByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "InsulinFlow Pump", device.Name)
	assert.Equal(t, entity.SafetyStatusUnsafe, device.SafetyStatus)

	_, err = repo.GetDeviceByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestCatalogRepository_UnresolvedJoinStaysAbsent(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	orphan := &entity.Device{
		ID:             6,
		Name:           "Orphan Stimulator",
		ManufacturerID: 42,
		CategoryID:     42,
		SafetyStatus:   "not-a-status",
	}
	require.NoError(t, NewCatalogWriter(db).SaveDevices(context.Background(), []*entity.Device{orphan}))

	device, err := NewCatalogRepository(db).GetDeviceByID(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, device.Manufacturer)
	assert.Nil(t, device.Category)
	assert.Nil(t, device.ModelNumber)
	assert.Equal(t, entity.SafetyStatusUnknown, device.SafetyStatus)
}

func TestCatalogRepository_SearchDevices(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewCatalogRepository(db)

	testCases := []struct {
		query string
		want  []int64
	}{
		{query: "medtronic", want: []int64{1, 3}},
		{query: "Cardiac", want: []int64{3}},
		{query: "magnet", want: []int64{5}},
		{query: "cc-2023", want: []int64{5}},
		{query: "siemens", want: []int64{}},
		{query: "  ", want: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			devices, err := repo.SearchDevices(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, deviceIDs(devices))
		})
	}
}

func TestCatalogRepository_CategoriesAndManufacturers(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	category, err := repo.GetCategoryByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Cardiac Devices", category.Name)

	_, err = repo.GetCategoryByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	manufacturers, err := repo.ListManufacturers(ctx)
	require.NoError(t, err)
	assert.Len(t, manufacturers, 4)

	_, err = repo.GetManufacturerByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrManufacturerNotFound)
}

func TestCatalogWriter_UpsertIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	renamed := fixture.Devices()[:1]
	renamed[0].Name = "Neuro Implant X2"
	require.NoError(t, NewCatalogWriter(db).SaveDevices(context.Background(), renamed))
	seedFixture(t, db)

	var count int64
	require.NoError(t, db.Model(&model.DeviceModel{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	device, err := NewCatalogRepository(db).GetDeviceByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Neuro Implant X1", device.Name)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewCatalogWriter().SaveManufacturers(ctx, fixture.Manufacturers()); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	manufacturers, err := NewCatalogRepository(db).ListManufacturers(ctx)
	require.NoError(t, err)
	assert.Empty(t, manufacturers)
}

func TestWaitlistRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewWaitlistRepository(db)
	ctx := context.Background()

	first := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AddEntry(ctx, &entity.WaitlistEntry{Email: "a@example.com", Source: "landing_page", CreatedAt: first}))
	require.NoError(t, repo.AddEntry(ctx, &entity.WaitlistEntry{Email: "b@example.com", Source: "cli", CreatedAt: first.Add(time.Hour)}))

	err := repo.AddEntry(ctx, &entity.WaitlistEntry{Email: "a@example.com", Source: "cli"})
	assert.ErrorIs(t, err, repository.ErrDuplicateWaitlistEntry)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b@example.com", entries[0].Email)
	assert.Equal(t, "a@example.com", entries[1].Email)
}

func TestCatalogRepository_DatabaseFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.DeviceModel{}))

	_, err := NewCatalogRepository(db).ListDevices(context.Background(), nil)
	require.Error(t, err)

	var dsErr *domainerrors.DataServiceError
	assert.True(t, errors.As(err, &dsErr))
}
