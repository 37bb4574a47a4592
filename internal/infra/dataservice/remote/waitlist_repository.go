package remote

import (
	"context"
	"time"

	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
)

// waitlistRepository implements repository.WaitlistRepository against the hosted data service.
type waitlistRepository struct {
	client *Client
}

// NewWaitlistRepository is the constructor for the remote waitlist.
func NewWaitlistRepository(client *Client) repository.WaitlistRepository {
	return &waitlistRepository{client: client}
}

// AddEntry inserts the sign-up; a unique violation on email maps to ErrDuplicateWaitlistEntry.
func (repo *waitlistRepository) AddEntry(ctx context.Context, entry *entity.WaitlistEntry) error {
	rows := []waitlistRow{{Email: entry.Email, Source: entry.Source}}
	if err := repo.client.insert(ctx, tableWaitlist, rows); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateWaitlistEntry
		}

		return domainerrors.NewDataServiceError(err, "add waitlist entry")
	}

	return nil
}

// ListEntries returns every sign-up, newest first.
func (repo *waitlistRepository) ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	var rows []waitlistRow
	if err := repo.client.list(ctx, tableWaitlist, newQuery("*").order("created_at.desc"), &rows); err != nil {
		return nil, domainerrors.NewDataServiceError(err, "list waitlist entries")
	}

	entries := make([]*entity.WaitlistEntry, 0, len(rows))
	for _, row := range rows {
		entry := &entity.WaitlistEntry{Email: row.Email, Source: row.Source}
		if row.CreatedAt != nil {
			entry.CreatedAt = time.Time(*row.CreatedAt)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
