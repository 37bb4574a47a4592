package postgres

import (
	"context"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// waitlistRepository implements the repository.WaitlistRepository interface.
type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{
		db: db,
	}
}

// AddEntry persists a sign-up.
func (repo *waitlistRepository) AddEntry(ctx context.Context, entry *entity.WaitlistEntry) error {
	entryM := &model.WaitlistModel{
		Email:     entry.Email,
		Source:    entry.Source,
		CreatedAt: entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWaitlistEntry
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidEmail
		}

		return domainerrors.NewDataServiceError(err, "add waitlist entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListEntries retrieves every sign-up, newest first.
func (repo *waitlistRepository) ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	var entryModels []*model.WaitlistModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entryModels).Error; err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list waitlist entries")
	}

	entries := make([]*entity.WaitlistEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, &entity.WaitlistEntry{
			Email:     m.Email,
			Source:    m.Source,
			CreatedAt: m.CreatedAt,
		})
	}

	return entries, nil
}
