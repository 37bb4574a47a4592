package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	mockRepo "mrisafe/internal/mocks/repository"
	"mrisafe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   usecase.SeedUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	writer    *mockRepo.MockCatalogWriter
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	writer := mockRepo.NewMockCatalogWriter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return seedServiceFixtures{
		service:   NewSeedService(txManager, logger),
		txManager: txManager,
		factory:   factory,
		writer:    writer,
	}
}

func testSeed() *usecase.CatalogSeed {
	return &usecase.CatalogSeed{
		Manufacturers: []*entity.Manufacturer{{ID: 1, Name: "Medtronic"}},
		Categories:    []*entity.Category{{ID: 1, Name: "Neurostimulators"}, {ID: 2, Name: "Cardiac Devices"}},
		Devices:       []*entity.Device{{ID: 1, Name: "Neuro Implant X1", ManufacturerID: 1, CategoryID: 1}},
	}
}

func (fx seedServiceFixtures) runTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewCatalogWriter().Return(fx.writer)
}

func TestSeedService_SeedCatalog(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()
	seed := testSeed()
	fx.runTransaction()

	var order []string
	fx.writer.EXPECT().SaveManufacturers(ctx, seed.Manufacturers).
		Run(func(context.Context, []*entity.Manufacturer) { order = append(order, "manufacturers") }).
		Return(nil)
	fx.writer.EXPECT().SaveCategories(ctx, seed.Categories).
		Run(func(context.Context, []*entity.Category) { order = append(order, "categories") }).
		Return(nil)
	fx.writer.EXPECT().SaveDevices(ctx, seed.Devices).
		Run(func(context.Context, []*entity.Device) { order = append(order, "devices") }).
		Return(nil)

	report, err := fx.service.SeedCatalog(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{Manufacturers: 1, Categories: 2, Devices: 1}, report)
	assert.Equal(t, []string{"manufacturers", "categories", "devices"}, order)
}

func TestSeedService_SeedCatalog_StopsOnFirstFailure(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()
	seed := testSeed()
	fx.runTransaction()

	fx.writer.EXPECT().SaveManufacturers(ctx, seed.Manufacturers).Return(nil)
	fx.writer.EXPECT().SaveCategories(ctx, seed.Categories).Return(errors.New("constraint"))

	report, err := fx.service.SeedCatalog(ctx, seed)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "failed to save categories")
}

func TestSeedService_SeedCatalog_ReadOnlySource(t *testing.T) {
	fx := createTestSeedService(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(domainerrors.ErrReadOnlySource)

	_, err := fx.service.SeedCatalog(context.Background(), testSeed())
	assert.ErrorIs(t, err, domainerrors.ErrReadOnlySource)
}
