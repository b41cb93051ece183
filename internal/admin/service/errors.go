package service

import (
	"context"
	"errors"

	"admingate/internal/admin/metrics"
	"admingate/internal/admin/store"
	dErrors "admingate/pkg/domain-errors"
)

// Store sentinel errors are translated into domain errors exactly once, here.
// The same sentinel maps differently depending on the operation: a missing
// account during login is an account_not_found credential failure, while a
// missing account during an authenticated lookup is a plain not_found.

func (s *Service) translateStoreError(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return dErrors.Wrap(err, dErrors.CodeConflict, "an admin with this email already exists")
	case errors.Is(err, store.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "admin not found")
	default:
		s.logger.ErrorContext(ctx, "store operation failed",
			"operation", op,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "storage failure")
	}
}

func (s *Service) translateLoginError(ctx context.Context, err error, email string) error {
	if errors.Is(err, store.ErrNotFound) {
		s.metrics.ObserveLogin(metrics.OutcomeAccountNotFound)
		s.logger.WarnContext(ctx, "login rejected - unknown account",
			"email", email,
		)
		return dErrors.Wrap(err, dErrors.CodeAccountNotFound, "admin not found")
	}
	s.metrics.ObserveLogin(metrics.OutcomeError)
	return s.translateStoreError(ctx, err, "login")
}

func (s *Service) translateDetailsError(ctx context.Context, err error, email string) error {
	if errors.Is(err, store.ErrNotFound) {
		s.logger.WarnContext(ctx, "details lookup for unknown account",
			"email", email,
		)
		return dErrors.Wrap(err, dErrors.CodeNotFound, "admin not found")
	}
	return s.translateStoreError(ctx, err, "details")
}
