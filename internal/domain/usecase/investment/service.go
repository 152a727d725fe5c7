// Package investment implements plan stakes and server-side ROI bookkeeping.
// All accrual is computed from stored start dates and copied plan terms;
// client-supplied progress is never trusted.
package investment

import (
	"context"

	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Service manages investment stakes and their payouts
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new investment service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// runInUnit executes fn inside a unit of work, rolling back on any error
func (s *Service) runInUnit(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after unit error", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}
