package ledger

import (
	"context"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// SubmitDeposit records a user's deposit claim as a pending transaction.
// No balance changes until an admin approves it.
func (s *Service) SubmitDeposit(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(userID, string(entity.TypeDeposit), amount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.runInUnit(ctx, func(txCtx context.Context) error {
		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit submitted", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"amount":         txn.Amount,
	})
	return txn, nil
}

// SubmitWithdrawal records a pending withdrawal request.
//
// The user must present an active, unexpired PIN; the PIN is claimed (marked
// used) atomically with the transaction insert so two withdrawals can never
// share one PIN. Funds are checked at submission and re-checked at approval;
// the balance itself only moves when an admin approves.
func (s *Service) SubmitWithdrawal(ctx context.Context, userID uint64, amount, pinCode string) (*entity.Transaction, error) {
	if pinCode == "" {
		return nil, errs.ErrPinRequired
	}

	txn, err := entity.NewTransaction(userID, string(entity.TypeWithdrawal), amount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.runInUnit(ctx, func(txCtx context.Context) error {
		userRepo := s.uow.GetUserRepository(txCtx)
		pinRepo := s.uow.GetPinRepository(txCtx)
		txRepo := s.uow.GetTransactionRepository(txCtx)

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if !user.CanDebit(txn.AmountInCents) {
			return errs.NewInsufficientBalanceError(userID, txn.Amount, user.GetBalance())
		}

		pin, err := pinRepo.FindActivePin(txCtx, userID, pinCode, s.timeProvider.Now())
		if err != nil {
			if errs.IsNotFoundError(err) {
				return errs.ErrPinRequired
			}
			return err
		}
		if err := pin.Claim(s.timeProvider); err != nil {
			return err
		}
		if err := pinRepo.Update(txCtx, pin); err != nil {
			return err
		}

		txn.PinID = &pin.ID
		return txRepo.Create(txCtx, txn)
	})
	if err != nil {
		s.logger.Warn("Withdrawal submission failed", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Withdrawal submitted", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"amount":         txn.Amount,
	})
	return txn, nil
}

// ListTransactions returns transactions matching the filter plus the unpaged total
func (s *Service) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}
