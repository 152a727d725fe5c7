package investment

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
)

// PlanRequest carries catalog terms for a new plan. Amounts are decimal
// strings; an empty MaxAmount leaves the plan unbounded.
type PlanRequest struct {
	Name          string
	ROIPercentage int64
	DurationDays  int
	MinAmount     string
	MaxAmount     string
}

// PlanUpdate carries partial plan edits. Nil fields are left untouched.
// Edits never reach investments already staked; their terms were copied.
type PlanUpdate struct {
	Name          *string
	ROIPercentage *int64
	DurationDays  *int
	MinAmount     *string
	MaxAmount     *string
	Active        *bool
}

// CreatePlan adds a plan to the catalog and records the admin action
func (s *Service) CreatePlan(ctx context.Context, adminID uint64, req PlanRequest) (*entity.Plan, error) {
	minCents, err := entity.ValidatePositiveAmount(req.MinAmount)
	if err != nil {
		return nil, err
	}

	var maxCents int64
	if req.MaxAmount != "" {
		maxCents, err = entity.ValidatePositiveAmount(req.MaxAmount)
		if err != nil {
			return nil, err
		}
	}

	plan, err := entity.NewPlan(req.Name, req.ROIPercentage, req.DurationDays, minCents, maxCents, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.runInUnit(ctx, func(txCtx context.Context) error {
		planRepo := s.uow.GetPlanRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		if err := planRepo.Create(txCtx, plan); err != nil {
			return err
		}

		detail := fmt.Sprintf("created plan %q: %d%% over %d days", plan.Name, plan.ROIPercentage, plan.DurationDays)
		return auditRepo.CreateAdminLog(txCtx,
			entity.NewAdminLog(adminID, entity.ActionPlanCreated, detail, s.timeProvider))
	})
	if err != nil {
		s.logger.Warn("Plan creation failed", map[string]any{
			"admin_id": adminID,
			"name":     req.Name,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Plan created", map[string]any{
		"admin_id": adminID,
		"plan_id":  plan.ID,
		"name":     plan.Name,
	})
	return plan, nil
}

// UpdatePlan applies partial edits to a catalog plan. Deactivation goes
// through here too (Active=false); running stakes are unaffected.
func (s *Service) UpdatePlan(ctx context.Context, adminID, planID uint64, update PlanUpdate) (*entity.Plan, error) {
	var updated *entity.Plan

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		planRepo := s.uow.GetPlanRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		plan, err := planRepo.GetByID(txCtx, planID)
		if err != nil {
			return err
		}

		if update.Name != nil {
			plan.Name = *update.Name
		}
		if update.ROIPercentage != nil {
			plan.ROIPercentage = *update.ROIPercentage
		}
		if update.DurationDays != nil {
			plan.DurationDays = *update.DurationDays
		}
		if update.MinAmount != nil {
			minCents, err := entity.ValidatePositiveAmount(*update.MinAmount)
			if err != nil {
				return err
			}
			plan.MinAmountInCents = minCents
		}
		if update.MaxAmount != nil {
			if *update.MaxAmount == "" {
				plan.MaxAmountInCents = 0
			} else {
				maxCents, err := entity.ValidatePositiveAmount(*update.MaxAmount)
				if err != nil {
					return err
				}
				plan.MaxAmountInCents = maxCents
			}
		}
		if update.Active != nil {
			plan.Active = *update.Active
		}

		if plan.Name == "" || plan.ROIPercentage <= 0 || plan.DurationDays <= 0 {
			return fmt.Errorf("%w: plan terms must stay positive", errs.ErrInvalidRequest)
		}
		if plan.MaxAmountInCents > 0 && plan.MaxAmountInCents < plan.MinAmountInCents {
			return fmt.Errorf("%w: maximum amount is below the minimum", errs.ErrInvalidRequest)
		}

		plan.UpdatedAt = s.timeProvider.Now()
		if err := planRepo.Update(txCtx, plan); err != nil {
			return err
		}

		detail := fmt.Sprintf("updated plan %d (%q), active=%t", plan.ID, plan.Name, plan.Active)
		if err := auditRepo.CreateAdminLog(txCtx,
			entity.NewAdminLog(adminID, entity.ActionPlanUpdated, detail, s.timeProvider)); err != nil {
			return err
		}

		updated = plan
		return nil
	})
	if err != nil {
		s.logger.Warn("Plan update failed", map[string]any{
			"admin_id": adminID,
			"plan_id":  planID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Plan updated", map[string]any{
		"admin_id": adminID,
		"plan_id":  planID,
		"active":   updated.Active,
	})
	return updated, nil
}
