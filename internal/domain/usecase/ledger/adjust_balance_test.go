package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	expectRepos := func(f *ledgerFixture) {
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Credit adjustment writes a completed transaction", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		user := testUser(t, 7, 10000, f.time)

		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeAdminCredit &&
				txn.Status == entity.StatusCompleted &&
				txn.AdminID != nil && *txn.AdminID == adminID &&
				txn.AdminNote == "bonus"
		})).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionBalanceAdjusted && log.TargetUserID == 7
		})).Return(nil).Once()

		result, err := f.service.AdjustBalance(ctx, adminID, 7, "25.00", AdjustCredit, "bonus")

		require.NoError(t, err)
		assert.Equal(t, "125.00", result.NewBalance)
		assert.Equal(t, int64(12500), user.Balance())
	})

	t.Run("Debit adjustment reduces the balance", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		user := testUser(t, 7, 10000, f.time)

		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeAdminDebit && txn.Status == entity.StatusCompleted
		})).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.AdjustBalance(ctx, adminID, 7, "40.00", AdjustDebit, "correction")

		require.NoError(t, err)
		assert.Equal(t, "60.00", result.NewBalance)
	})

	t.Run("Debit past zero rolls back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		user := testUser(t, 7, 10000, f.time)

		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()

		result, err := f.service.AdjustBalance(ctx, adminID, 7, "100.01", AdjustDebit, "")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, result)
		assert.Equal(t, int64(10000), user.Balance())
	})

	t.Run("Unknown adjustment type fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		result, err := f.service.AdjustBalance(ctx, adminID, 7, "10.00", AdjustmentType("transfer"), "")

		assert.ErrorIs(t, err, errs.ErrInvalidAdjustmentType)
		assert.Nil(t, result)
	})

	t.Run("Zero user ID fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		result, err := f.service.AdjustBalance(ctx, adminID, 0, "10.00", AdjustCredit, "")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, result)
	})

	t.Run("Invalid amount fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		result, err := f.service.AdjustBalance(ctx, adminID, 7, "0.00", AdjustCredit, "")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, result)
	})
}
