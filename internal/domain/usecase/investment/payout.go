package investment

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// PayoutResult reports one matured investment's settlement
type PayoutResult struct {
	InvestmentID uint64
	UserID       uint64
	Principal    string
	Profit       string
	NewBalance   string
}

// MaturePayouts settles every active investment that has reached its end
// date: the investment flips to completed and the user is credited principal
// plus capped ROI through a completed profit transaction. Each investment
// settles in its own atomic unit so one failure never blocks the rest; the
// per-investment status re-read under a row lock guarantees a stake pays out
// exactly once even if two sweeps race.
func (s *Service) MaturePayouts(ctx context.Context, adminID uint64) ([]PayoutResult, error) {
	now := s.timeProvider.Now()

	mature, err := s.uow.GetInvestmentRepository(ctx).ListMature(ctx, now)
	if err != nil {
		return nil, err
	}

	results := make([]PayoutResult, 0, len(mature))
	for _, candidate := range mature {
		res, err := s.payoutOne(ctx, adminID, candidate.ID)
		if err != nil {
			s.logger.Warn("Investment payout failed", map[string]any{
				"investment_id": candidate.ID,
				"user_id":       candidate.UserID,
				"error":         err.Error(),
			})
			continue
		}
		results = append(results, *res)
	}

	s.logger.Info("Mature payout sweep finished", map[string]any{
		"admin_id":   adminID,
		"candidates": len(mature),
		"settled":    len(results),
	})
	return results, nil
}

// payoutOne settles a single investment atomically
func (s *Service) payoutOne(ctx context.Context, adminID, investmentID uint64) (*PayoutResult, error) {
	var result *PayoutResult

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		invRepo := s.uow.GetInvestmentRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)
		txRepo := s.uow.GetTransactionRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		inv, err := invRepo.GetByIDForUpdate(txCtx, investmentID)
		if err != nil {
			return err
		}

		profit, err := inv.Complete(s.timeProvider.Now())
		if err != nil {
			return err
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, inv.UserID)
		if err != nil {
			return err
		}

		payout := inv.AmountInCents + profit
		user.Credit(payout, s.timeProvider)

		txn, err := entity.NewTransaction(inv.UserID, string(entity.TypeProfit),
			entity.AmountInCentsToString(payout), s.timeProvider)
		if err != nil {
			return err
		}
		txn.Status = entity.StatusCompleted
		txn.AdminID = &adminID

		if err := invRepo.Update(txCtx, inv); err != nil {
			return err
		}
		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}
		if err := txRepo.Create(txCtx, txn); err != nil {
			return err
		}

		detail := fmt.Sprintf("investment %d matured: principal %s, profit %s",
			inv.ID, entity.AmountInCentsToString(inv.AmountInCents), entity.AmountInCentsToString(profit))
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, inv.UserID, entity.ActionProfitPaid, detail, s.timeProvider)); err != nil {
			return err
		}

		result = &PayoutResult{
			InvestmentID: inv.ID,
			UserID:       inv.UserID,
			Principal:    entity.AmountInCentsToString(inv.AmountInCents),
			Profit:       entity.AmountInCentsToString(profit),
			NewBalance:   user.GetBalance(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
