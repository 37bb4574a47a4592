package usecase

import (
	"context"

	"mrisafe/internal/domain/entity"
)

// Waitlist outcome messages shown to the visitor.
const (
	WaitlistJoinedMessage  = "Thanks for joining! We'll let you know when we launch."
	WaitlistAlreadyMessage = "You're already on our waitlist!"
)

// WaitlistResult reports the outcome of a sign-up.
type WaitlistResult struct {
	Success       bool   `json:"success"`
	AlreadyJoined bool   `json:"alreadyJoined"`
	Message       string `json:"message"`
}

// WaitlistUsecase defines the launch waitlist use cases.
type WaitlistUsecase interface {
	// Join validates the email and records the sign-up. A repeated email is a success.
	Join(ctx context.Context, email, source string) (*WaitlistResult, error)

	// ListEntries returns every sign-up, newest first
	ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error)
}
