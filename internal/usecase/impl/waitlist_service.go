package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "mrisafe/internal/delivery/context"
	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/repository"
	"mrisafe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const maxWaitlistSourceLength = 64

type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewWaitlistService creates a new waitlist service instance
func NewWaitlistService(waitlistRepo repository.WaitlistRepository, logger *slog.Logger) usecase.WaitlistUsecase {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger,
	}
}

func (srv *waitlistService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Join records a sign-up. Emails are stored trimmed and lower-cased.
func (srv *waitlistService) Join(ctx context.Context, email, source string) (*usecase.WaitlistResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := srv.validate.Var(email, "required,email,max=254"); err != nil {
		return nil, domainerrors.ErrInvalidEmail.WithDetails(err.Error())
	}

	source = strings.TrimSpace(source)
	if source == "" {
		source = entity.DefaultWaitlistSource
	}
	if len(source) > maxWaitlistSourceLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("source is too long")
	}

	logger := srv.loggerFromContext(ctx)

	err := srv.waitlistRepo.AddEntry(ctx, &entity.WaitlistEntry{Email: email, Source: source})
	switch {
	case err == nil:
		logger.InfoContext(ctx, "Waitlist sign-up recorded", slog.String("source", source))

		return &usecase.WaitlistResult{Success: true, Message: usecase.WaitlistJoinedMessage}, nil

	case errors.Is(err, repository.ErrDuplicateWaitlistEntry):
		logger.InfoContext(ctx, "Waitlist sign-up repeated", slog.String("source", source))

		return &usecase.WaitlistResult{Success: true, AlreadyJoined: true, Message: usecase.WaitlistAlreadyMessage}, nil

	default:
		logger.ErrorContext(ctx, "Failed to add to waitlist",
			slog.String("operation", "AddEntry"),
			slog.String("source", source),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, fmt.Errorf("failed to join waitlist: %w", err)
		}

		return nil, domainerrors.ErrWaitlistFailed.WithDetails(err.Error())
	}
}

// ListEntries returns every sign-up, newest first
func (srv *waitlistService) ListEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	entries, err := srv.waitlistRepo.ListEntries(ctx)
	if err != nil {
		srv.loggerFromContext(ctx).ErrorContext(ctx, "Failed to list waitlist",
			slog.String("operation", "ListEntries"),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}

	return entries, nil
}
