// Package ledger is the single authority over user balance mutations.
// Approval, rejection, direct adjustment, stake debits and profit payouts all
// go through Service; no other code writes users.balance.
package ledger

import (
	"context"

	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Service applies balance-affecting operations atomically.
// Each operation runs inside one unit of work: status change, balance write
// and audit row commit together or not at all.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new ledger service
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

// runInUnit executes fn inside a unit of work, rolling back on any error.
// The rollback error, if any, is logged but the original error wins.
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
