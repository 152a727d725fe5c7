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

func TestProcessTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	pendingTxn := func(t *testing.T, f *ledgerFixture, txType entity.TransactionType, amount string) *entity.Transaction {
		txn, err := entity.NewTransaction(7, string(txType), amount, f.time)
		require.NoError(t, err)
		txn.ID = 300
		return txn
	}

	expectRepos := func(f *ledgerFixture) {
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Approving a deposit credits the balance", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		txn := pendingTxn(t, f, entity.TypeDeposit, "50.00")
		user := testUser(t, 7, 10000, f.time)

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).Return(txn, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.ActorID == adminID && log.TargetUserID == 7 && log.Action == entity.ActionTransactionReview
		})).Return(nil).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionApprove, "looks good")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, result.NewStatus)
		assert.Equal(t, "150.00", result.NewBalance)
		assert.Equal(t, int64(15000), user.Balance())
	})

	t.Run("Approving a withdrawal debits the balance", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		txn := pendingTxn(t, f, entity.TypeWithdrawal, "50.00")
		user := testUser(t, 7, 10000, f.time)

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).Return(txn, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionApprove, "")

		require.NoError(t, err)
		assert.Equal(t, "50.00", result.NewBalance)
	})

	t.Run("Rejecting leaves the balance untouched", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		txn := pendingTxn(t, f, entity.TypeWithdrawal, "50.00")
		user := testUser(t, 7, 10000, f.time)

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).Return(txn, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Update(mock.Anything, txn).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionReject, "fraud")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, result.NewStatus)
		assert.Equal(t, "100.00", result.NewBalance)
		assert.Equal(t, int64(10000), user.Balance())
	})

	t.Run("Withdrawal approval with insufficient funds rolls back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		txn := pendingTxn(t, f, entity.TypeWithdrawal, "150.00")
		user := testUser(t, 7, 10000, f.time)

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).Return(txn, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionApprove, "")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, result)
		assert.Equal(t, int64(10000), user.Balance())
	})

	t.Run("Processing a resolved transaction conflicts", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		txn := pendingTxn(t, f, entity.TypeDeposit, "50.00")
		require.NoError(t, txn.Resolve(entity.ActionApprove, adminID, "", f.time))

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).Return(txn, nil).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionReject, "")

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Nil(t, result)
	})

	t.Run("Unknown action fails without opening a unit", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ProcessAction("hold"), "")

		assert.ErrorIs(t, err, errs.ErrInvalidAction)
		assert.Nil(t, result)
	})

	t.Run("Missing transaction rolls back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		f.txRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(300)).
			Return(nil, errs.ErrTransactionNotFound).Once()

		result, err := f.service.ProcessTransaction(ctx, adminID, 300, entity.ActionApprove, "")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Nil(t, result)
	})
}
