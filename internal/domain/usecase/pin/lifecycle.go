package pin

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Cancel moves an active PIN to cancelled, appending the note.
// A used PIN is immutable; a second cancel fails with a clear conflict.
// The status change and its audit row are one atomic unit.
func (s *Service) Cancel(ctx context.Context, adminID, pinID uint64, notes string) (*entity.WithdrawalPin, error) {
	var cancelled *entity.WithdrawalPin

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		pinRepo := s.uow.GetPinRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		p, err := pinRepo.GetByID(txCtx, pinID)
		if err != nil {
			return err
		}
		if err := p.Cancel(notes, s.timeProvider); err != nil {
			return err
		}
		if err := pinRepo.Update(txCtx, p); err != nil {
			return err
		}

		detail := fmt.Sprintf("pin %d cancelled (note: %s)", pinID, notes)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, p.UserID, entity.ActionPinCancelled, detail, s.timeProvider)); err != nil {
			return err
		}

		cancelled = p
		return nil
	})
	if err != nil {
		s.logger.Warn("Pin cancellation failed", map[string]any{
			"admin_id": adminID,
			"pin_id":   pinID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Pin cancelled", map[string]any{
		"admin_id": adminID,
		"pin_id":   pinID,
		"user_id":  cancelled.UserID,
	})
	return cancelled, nil
}

// Delete removes a PIN row outright. Used PINs are part of the audit trail
// and cannot be deleted.
func (s *Service) Delete(ctx context.Context, adminID, pinID uint64) (*entity.WithdrawalPin, error) {
	var deleted *entity.WithdrawalPin

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		pinRepo := s.uow.GetPinRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		p, err := pinRepo.GetByID(txCtx, pinID)
		if err != nil {
			return err
		}
		if !p.CanDelete() {
			return errs.NewPinStateError(p.ID, string(p.Status), errs.ErrPinUsed)
		}
		if err := pinRepo.Delete(txCtx, pinID); err != nil {
			return err
		}

		detail := fmt.Sprintf("pin %d deleted", pinID)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, p.UserID, entity.ActionPinDeleted, detail, s.timeProvider)); err != nil {
			return err
		}

		deleted = p
		return nil
	})
	if err != nil {
		s.logger.Warn("Pin deletion failed", map[string]any{
			"admin_id": adminID,
			"pin_id":   pinID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Pin deleted", map[string]any{
		"admin_id": adminID,
		"pin_id":   pinID,
		"user_id":  deleted.UserID,
	})
	return deleted, nil
}

// ListResult carries a page of PINs plus the unpaged total and, when the
// listing was filtered to one user, that user's PIN policy.
type ListResult struct {
	Pins     []*entity.WithdrawalPin
	Total    int64
	Settings *entity.PinSettings
}

// List returns PINs matching the filter. Expiry is evaluated at read time:
// active rows past their expiry date are reported (and persisted) as expired.
func (s *Service) List(ctx context.Context, filter persistence.PinFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	pinRepo := s.uow.GetPinRepository(ctx)

	pins, total, err := pinRepo.List(ctx, filter, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	result := &ListResult{Pins: pins, Total: total}

	if filter.UserID != nil {
		settings, err := pinRepo.GetSettings(ctx, *filter.UserID)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			settings = entity.DefaultPinSettings(*filter.UserID)
		}
		result.Settings = settings
	}

	return result, nil
}
