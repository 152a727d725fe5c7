package pin

import (
	"context"
	"fmt"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
)

// IssueRequest carries PIN issuance parameters. Zero values take defaults.
type IssueRequest struct {
	UserID     uint64
	PinLength  int
	PinCount   int
	ExpiryDays int
	Notes      string
}

// IssueResult reports the issued batch
type IssueResult struct {
	User       *entity.User
	Pins       []*entity.WithdrawalPin
	ExpiryDays int
	ExpiryDate time.Time
}

// applyDefaults fills unset parameters and validates ranges
func (r *IssueRequest) applyDefaults() error {
	if r.UserID == 0 {
		return errs.ErrInvalidUserID
	}
	if r.PinLength == 0 {
		r.PinLength = entity.DefaultPinLength
	}
	if r.PinCount == 0 {
		r.PinCount = entity.DefaultPinCount
	}
	if r.ExpiryDays == 0 {
		r.ExpiryDays = entity.DefaultExpiry
	}

	if r.PinLength < entity.MinPinLength || r.PinLength > entity.MaxPinLength {
		return fmt.Errorf("%w: pin_length must be between %d and %d",
			errs.ErrInvalidPinRequest, entity.MinPinLength, entity.MaxPinLength)
	}
	if r.PinCount < entity.MinPinCount || r.PinCount > entity.MaxPinCount {
		return fmt.Errorf("%w: pin_count must be between %d and %d",
			errs.ErrInvalidPinRequest, entity.MinPinCount, entity.MaxPinCount)
	}
	if r.ExpiryDays < entity.MinExpiryDays || r.ExpiryDays > entity.MaxExpiryDays {
		return fmt.Errorf("%w: expiry_days must be between %d and %d",
			errs.ErrInvalidPinRequest, entity.MinExpiryDays, entity.MaxExpiryDays)
	}
	return nil
}

// Issue generates a batch of withdrawal PINs for a user.
//
// The user's PIN policy is resolved first (defaults when no settings row
// exists); a disabled policy is enabled as a side effect of issuing. The
// batch fails with ErrPinLimitExceeded and inserts nothing when active PINs
// plus the requested count would exceed max_pins. One audit row summarizes
// the whole batch.
func (s *Service) Issue(ctx context.Context, adminID uint64, req IssueRequest) (*IssueResult, error) {
	if err := req.applyDefaults(); err != nil {
		return nil, err
	}

	var result *IssueResult

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		userRepo := s.uow.GetUserRepository(txCtx)
		pinRepo := s.uow.GetPinRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		user, err := userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			return err
		}

		settings, err := pinRepo.GetSettings(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if settings == nil {
			settings = entity.DefaultPinSettings(req.UserID)
		}
		if !settings.Enabled {
			settings.Enabled = true
			settings.UpdatedAt = s.timeProvider.Now()
			if err := pinRepo.SaveSettings(txCtx, settings); err != nil {
				return err
			}
		}

		now := s.timeProvider.Now()
		activeCount, err := pinRepo.CountActive(txCtx, req.UserID, now)
		if err != nil {
			return err
		}
		if activeCount+int64(req.PinCount) > int64(settings.MaxPins) {
			return fmt.Errorf("%w: %d active, %d requested, limit %d",
				errs.ErrPinLimitExceeded, activeCount, req.PinCount, settings.MaxPins)
		}

		pins := make([]*entity.WithdrawalPin, 0, req.PinCount)
		for i := 0; i < req.PinCount; i++ {
			code, err := s.generator.Generate(req.PinLength)
			if err != nil {
				return fmt.Errorf("%w: pin generation failed: %s", errs.ErrInternalServer, err.Error())
			}
			p, err := entity.NewWithdrawalPin(req.UserID, code, req.ExpiryDays, req.Notes, s.timeProvider)
			if err != nil {
				return err
			}
			if err := pinRepo.Create(txCtx, p); err != nil {
				return err
			}
			pins = append(pins, p)
		}

		detail := fmt.Sprintf("issued %d pin(s), length %d, expiring in %d days",
			req.PinCount, req.PinLength, req.ExpiryDays)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, req.UserID, entity.ActionPinsIssued, detail, s.timeProvider)); err != nil {
			return err
		}

		result = &IssueResult{
			User:       user,
			Pins:       pins,
			ExpiryDays: req.ExpiryDays,
			ExpiryDate: pins[0].ExpiryDate,
		}
		return nil
	})

	if err != nil {
		s.logger.Warn("Pin issuance failed", map[string]any{
			"admin_id": adminID,
			"user_id":  req.UserID,
			"count":    req.PinCount,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Pins issued", map[string]any{
		"admin_id":    adminID,
		"user_id":     req.UserID,
		"count":       req.PinCount,
		"pin_length":  req.PinLength,
		"expiry_days": req.ExpiryDays,
	})
	return result, nil
}
