package ledger

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
)

// AdjustmentType selects the direction of a direct admin adjustment
type AdjustmentType string

// Adjustment directions
const (
	AdjustCredit AdjustmentType = "credit"
	AdjustDebit  AdjustmentType = "debit"
)

// AdjustResult reports the outcome of a direct balance adjustment
type AdjustResult struct {
	TransactionID uint64
	NewBalance    string
}

// AdjustBalance applies a direct admin credit or debit to a user's balance.
//
// The balance write, the completed admin_credit/admin_debit transaction row
// and the security log row are one atomic unit. A debit that would drive the
// balance negative fails with ErrInsufficientBalance and writes nothing.
func (s *Service) AdjustBalance(
	ctx context.Context,
	adminID uint64,
	userID uint64,
	amount string,
	adjType AdjustmentType,
	note string,
) (*AdjustResult, error) {
	if adjType != AdjustCredit && adjType != AdjustDebit {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAdjustmentType, adjType)
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amountInCents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	var result *AdjustResult

	err = s.runInUnit(ctx, func(txCtx context.Context) error {
		userRepo := s.uow.GetUserRepository(txCtx)
		txRepo := s.uow.GetTransactionRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		txType := entity.TypeAdminCredit
		if adjType == AdjustCredit {
			user.Credit(amountInCents, s.timeProvider)
		} else {
			txType = entity.TypeAdminDebit
			if err := user.Debit(amountInCents, s.timeProvider); err != nil {
				return errs.NewLedgerError("adjustment", userID, 0, amount, err)
			}
		}

		txn, err := entity.NewTransaction(userID, string(txType), amount, s.timeProvider)
		if err != nil {
			return err
		}
		// Direct adjustments are resolved at creation
		txn.Status = entity.StatusCompleted
		txn.AdminID = &adminID
		txn.AdminNote = note

		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}
		if err := txRepo.Create(txCtx, txn); err != nil {
			return err
		}

		detail := fmt.Sprintf("%s %s (note: %s)", adjType, txn.Amount, note)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, userID, entity.ActionBalanceAdjusted, detail, s.timeProvider)); err != nil {
			return err
		}

		result = &AdjustResult{
			TransactionID: txn.ID,
			NewBalance:    user.GetBalance(),
		}
		return nil
	})

	if err != nil {
		s.logger.Warn("Balance adjustment failed", map[string]any{
			"admin_id": adminID,
			"user_id":  userID,
			"type":     string(adjType),
			"amount":   amount,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Balance adjusted", map[string]any{
		"admin_id":    adminID,
		"user_id":     userID,
		"type":        string(adjType),
		"amount":      amount,
		"new_balance": result.NewBalance,
	})
	return result, nil
}
