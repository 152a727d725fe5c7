package investment

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Create stakes a user's balance into a plan.
//
// The stake debit, the investment row and the completed ledger transaction
// are one atomic unit. Plan terms (ROI percentage, duration) are copied onto
// the investment so later plan edits never change a running stake.
func (s *Service) Create(ctx context.Context, userID, planID uint64, amount string) (*entity.Investment, error) {
	amountInCents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	var created *entity.Investment

	err = s.runInUnit(ctx, func(txCtx context.Context) error {
		planRepo := s.uow.GetPlanRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)
		invRepo := s.uow.GetInvestmentRepository(txCtx)
		txRepo := s.uow.GetTransactionRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		plan, err := planRepo.GetByID(txCtx, planID)
		if err != nil {
			return err
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		inv, err := entity.NewInvestment(userID, plan, amountInCents, s.timeProvider)
		if err != nil {
			return err
		}

		if err := user.Debit(amountInCents, s.timeProvider); err != nil {
			return err
		}

		txn, err := entity.NewTransaction(userID, string(entity.TypeInvestment), amount, s.timeProvider)
		if err != nil {
			return err
		}
		// Stake debits settle immediately; there is no approval step
		txn.Status = entity.StatusCompleted

		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}
		if err := invRepo.Create(txCtx, inv); err != nil {
			return err
		}
		if err := txRepo.Create(txCtx, txn); err != nil {
			return err
		}

		detail := fmt.Sprintf("staked %s into plan %d for %d days at %d%%",
			txn.Amount, plan.ID, plan.DurationDays, plan.ROIPercentage)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(userID, userID, entity.ActionInvestmentStake, detail, s.timeProvider)); err != nil {
			return err
		}

		created = inv
		return nil
	})
	if err != nil {
		s.logger.Warn("Investment creation failed", map[string]any{
			"user_id": userID,
			"plan_id": planID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Investment created", map[string]any{
		"user_id":       userID,
		"plan_id":       planID,
		"investment_id": created.ID,
		"amount":        amount,
	})
	return created, nil
}

// List returns investments matching the filter plus the unpaged total
func (s *Service) List(ctx context.Context, filter persistence.InvestmentFilter) ([]*entity.Investment, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.uow.GetInvestmentRepository(ctx).List(ctx, filter)
}

// GetPlans returns the plan catalog
func (s *Service) GetPlans(ctx context.Context, activeOnly bool) ([]*entity.Plan, error) {
	return s.uow.GetPlanRepository(ctx).List(ctx, activeOnly)
}
