package ledger

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
)

// ProcessResult reports the outcome of an admin approval or rejection
type ProcessResult struct {
	TransactionID uint64
	NewStatus     entity.TransactionStatus
	NewBalance    string
}

// ProcessTransaction applies an admin decision to a pending transaction.
//
// The whole transition is one atomic unit: the status re-read under a row
// lock (so a resolved transaction can never be processed twice), the balance
// mutation for approved deposits/withdrawals, and the audit row. Approving a
// withdrawal re-verifies funds; on insufficient balance nothing commits and
// the transaction stays pending.
func (s *Service) ProcessTransaction(
	ctx context.Context,
	adminID uint64,
	transactionID uint64,
	action entity.ProcessAction,
	note string,
) (*ProcessResult, error) {
	if action != entity.ActionApprove && action != entity.ActionReject {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAction, action)
	}

	var result *ProcessResult

	err := s.runInUnit(ctx, func(txCtx context.Context) error {
		txRepo := s.uow.GetTransactionRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)
		auditRepo := s.uow.GetAuditRepository(txCtx)

		txn, err := txRepo.GetByIDForUpdate(txCtx, transactionID)
		if err != nil {
			return err
		}

		// Idempotency guard: re-processing a resolved transaction is rejected,
		// not silently accepted
		if !txn.IsPending() {
			return fmt.Errorf("%w: current status is %s", errs.ErrAlreadyProcessed, txn.Status)
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, txn.UserID)
		if err != nil {
			return err
		}

		if err := txn.Resolve(action, adminID, note, s.timeProvider); err != nil {
			return err
		}

		if txn.Status == entity.StatusCompleted {
			switch {
			case txn.CreditsOnApproval():
				user.Credit(txn.AmountInCents, s.timeProvider)
			case txn.DebitsOnApproval():
				if err := user.Debit(txn.AmountInCents, s.timeProvider); err != nil {
					return errs.NewLedgerError("approval", user.ID, txn.ID, txn.Amount, err)
				}
			}
		}

		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}
		if err := txRepo.Update(txCtx, txn); err != nil {
			return err
		}

		detail := fmt.Sprintf("transaction %d (%s %s) %s", txn.ID, txn.Type, txn.Amount, txn.Status)
		if err := auditRepo.CreateSecurityLog(txCtx,
			entity.NewSecurityLog(adminID, user.ID, entity.ActionTransactionReview, detail, s.timeProvider)); err != nil {
			return err
		}

		result = &ProcessResult{
			TransactionID: txn.ID,
			NewStatus:     txn.Status,
			NewBalance:    user.GetBalance(),
		}
		return nil
	})

	if err != nil {
		s.logger.Warn("Transaction processing failed", map[string]any{
			"transaction_id": transactionID,
			"admin_id":       adminID,
			"action":         string(action),
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction processed", map[string]any{
		"transaction_id": result.TransactionID,
		"admin_id":       adminID,
		"new_status":     string(result.NewStatus),
		"new_balance":    result.NewBalance,
	})
	return result, nil
}
