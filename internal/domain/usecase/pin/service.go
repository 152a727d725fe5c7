// Package pin implements admin-driven withdrawal PIN issuance and lifecycle.
package pin

import (
	"context"

	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Service manages withdrawal PIN issuance, cancellation, deletion and listing
type Service struct {
	uow          persistence.UnitOfWork
	generator    coreport.PinGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new PIN service
func NewService(
	uow persistence.UnitOfWork,
	generator coreport.PinGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		generator:    generator,
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
