package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	coremocks "github.com/tonsuimining/platform/mocks/port/core"
	persistencemocks "github.com/tonsuimining/platform/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	txRepo   *persistencemocks.MockTransactionRepository
	pinRepo  *persistencemocks.MockPinRepository
	audit    *persistencemocks.MockAuditRepository
	time     *coremocks.MockTimeProvider
	service  *Service
}

func newLedgerFixture(t *testing.T, fixedTime time.Time) *ledgerFixture {
	f := &ledgerFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		txRepo:   persistencemocks.NewMockTransactionRepository(t),
		pinRepo:  persistencemocks.NewMockPinRepository(t),
		audit:    persistencemocks.NewMockAuditRepository(t),
		time:     coremocks.NewMockTimeProvider(t),
	}

	f.time.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(f.uow, f.time, logger)
	return f
}

// expectUnit wires Begin/Commit for the happy path
func (f *ledgerFixture) expectUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

// expectRolledBackUnit wires Begin/Rollback for the failure path
func (f *ledgerFixture) expectRolledBackUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func testUser(t *testing.T, id uint64, balanceCents int64, tp *coremocks.MockTimeProvider) *entity.User {
	u, err := entity.NewUser("user@example.com", "User", "hash", tp)
	require.NoError(t, err)
	u.ID = id
	u.SetBalance(balanceCents, tp)
	return u
}

func TestSubmitDeposit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful deposit submission", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.UserID == 7 &&
				txn.Type == entity.TypeDeposit &&
				txn.AmountInCents == 10050 &&
				txn.Status == entity.StatusPending
		})).Return(nil).Once()

		txn, err := f.service.SubmitDeposit(ctx, 7, "100.50")

		require.NoError(t, err)
		assert.Equal(t, "100.50", txn.Amount)
		assert.Equal(t, entity.StatusPending, txn.Status)
	})

	t.Run("Invalid amount never opens a unit", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		txn, err := f.service.SubmitDeposit(ctx, 7, "-5.00")

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, txn)
	})

	t.Run("Zero user ID fails", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		txn, err := f.service.SubmitDeposit(ctx, 0, "10.00")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, txn)
	})
}

func TestSubmitWithdrawal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newActivePin := func(t *testing.T, tp *coremocks.MockTimeProvider) *entity.WithdrawalPin {
		p, err := entity.NewWithdrawalPin(7, "483920", 30, "", tp)
		require.NoError(t, err)
		p.ID = 55
		return p
	}

	t.Run("Successful withdrawal claims the pin", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectUnit(ctx)
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()

		pin := newActivePin(t, f.time)
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).
			Return(testUser(t, 7, 20000, f.time), nil).Once()
		f.pinRepo.EXPECT().FindActivePin(mock.Anything, uint64(7), "483920", fixedTime).
			Return(pin, nil).Once()
		f.pinRepo.EXPECT().Update(mock.Anything, pin).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeWithdrawal &&
				txn.PinID != nil && *txn.PinID == 55 &&
				txn.Status == entity.StatusPending
		})).Return(nil).Once()

		txn, err := f.service.SubmitWithdrawal(ctx, 7, "100.00", "483920")

		require.NoError(t, err)
		assert.Equal(t, entity.PinUsed, pin.Status)
		assert.Equal(t, entity.StatusPending, txn.Status)
	})

	t.Run("Missing pin code fails upfront", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)

		txn, err := f.service.SubmitWithdrawal(ctx, 7, "100.00", "")

		assert.Equal(t, errs.ErrPinRequired, err)
		assert.Nil(t, txn)
	})

	t.Run("Insufficient balance rolls back", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()

		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).
			Return(testUser(t, 7, 5000, f.time), nil).Once()

		txn, err := f.service.SubmitWithdrawal(ctx, 7, "100.00", "483920")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, txn)
	})

	t.Run("Unknown pin maps to pin required", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()

		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).
			Return(testUser(t, 7, 20000, f.time), nil).Once()
		f.pinRepo.EXPECT().FindActivePin(mock.Anything, uint64(7), "000000", fixedTime).
			Return(nil, errs.ErrPinNotFound).Once()

		txn, err := f.service.SubmitWithdrawal(ctx, 7, "100.00", "000000")

		assert.Equal(t, errs.ErrPinRequired, err)
		assert.Nil(t, txn)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Filter defaults are applied", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.Page == 1 && filter.Limit == 20
		})).Return(nil, int64(0), nil).Once()

		_, _, err := f.service.ListTransactions(ctx, persistence.TransactionFilter{})
		assert.NoError(t, err)
	})

	t.Run("Limit is clamped to 100", func(t *testing.T) {
		f := newLedgerFixture(t, fixedTime)
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.txRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
			return filter.Limit == 100
		})).Return(nil, int64(0), nil).Once()

		_, _, err := f.service.ListTransactions(ctx, persistence.TransactionFilter{Page: 2, Limit: 500})
		assert.NoError(t, err)
	})
}
