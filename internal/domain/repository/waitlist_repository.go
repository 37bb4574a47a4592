package repository

import (
	"context"

	"mrisafe/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateWaitlistEntry is returned when the email is already registered.
var ErrDuplicateWaitlistEntry = errors.New("email already on waitlist")

// WaitlistRepository stores launch sign-ups.
type WaitlistRepository interface {
	// AddEntry inserts a sign-up; a repeated email yields ErrDuplicateWaitlistEntry.
	AddEntry(ctx context.Context, entry *entity.WaitlistEntry) error

	// ListEntries returns every sign-up, newest first.
	ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error)
}
