package investment

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

func TestMaturePayouts(t *testing.T) {
	ctx := context.Background()
	// The sweep runs well past maturity of stakes started on March 1st
	sweepTime := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	startTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	matureInvestment := func(id, userID uint64) *entity.Investment {
		return &entity.Investment{
			ID:            id,
			UserID:        userID,
			PlanID:        1,
			AmountInCents: 10000,
			ROIPercentage: 10,
			DurationDays:  7,
			StartDate:     startTime,
			EndDate:       startTime.AddDate(0, 0, 7),
			Status:        entity.InvestmentActive,
		}
	}

	t.Run("Mature investment pays principal plus capped profit", func(t *testing.T) {
		f := newInvestmentFixture(t, sweepTime)

		inv := matureInvestment(10, 7)
		user := investmentTestUser(t, 7, 0, f.time)

		f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.invRepo).Times(2)
		f.invRepo.EXPECT().ListMature(mock.Anything, sweepTime).
			Return([]*entity.Investment{inv}, nil).Once()

		f.expectUnit(ctx)
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()

		f.invRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(10)).Return(inv, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.invRepo.EXPECT().Update(mock.Anything, inv).Return(nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeProfit &&
				txn.Status == entity.StatusCompleted &&
				txn.AmountInCents == 11000
		})).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionProfitPaid
		})).Return(nil).Once()

		results, err := f.service.MaturePayouts(ctx, adminID)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "100.00", results[0].Principal)
		assert.Equal(t, "10.00", results[0].Profit)
		assert.Equal(t, "110.00", results[0].NewBalance)
		assert.Equal(t, entity.InvestmentCompleted, inv.Status)
		assert.Equal(t, int64(11000), user.Balance())
	})

	t.Run("Empty sweep settles nothing", func(t *testing.T) {
		f := newInvestmentFixture(t, sweepTime)

		f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.invRepo).Once()
		f.invRepo.EXPECT().ListMature(mock.Anything, sweepTime).
			Return(nil, nil).Once()

		results, err := f.service.MaturePayouts(ctx, adminID)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("A raced completion skips without failing the sweep", func(t *testing.T) {
		f := newInvestmentFixture(t, sweepTime)

		// Another sweep completed this one between listing and locking
		inv := matureInvestment(10, 7)
		inv.Status = entity.InvestmentCompleted

		f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.invRepo).Times(2)
		f.invRepo.EXPECT().ListMature(mock.Anything, sweepTime).
			Return([]*entity.Investment{inv}, nil).Once()

		f.expectRolledBackUnit(ctx)
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()

		f.invRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(10)).Return(inv, nil).Once()

		results, err := f.service.MaturePayouts(ctx, adminID)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("One failing payout does not block the rest", func(t *testing.T) {
		f := newInvestmentFixture(t, sweepTime)

		broken := matureInvestment(10, 7)
		healthy := matureInvestment(11, 8)
		user := investmentTestUser(t, 8, 0, f.time)

		f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.invRepo).Times(3)
		f.invRepo.EXPECT().ListMature(mock.Anything, sweepTime).
			Return([]*entity.Investment{broken, healthy}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(2)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Times(2)
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Times(2)
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Times(2)

		f.invRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(10)).
			Return(nil, errs.ErrDatabaseConnection).Once()

		f.invRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(11)).Return(healthy, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(8)).Return(user, nil).Once()
		f.invRepo.EXPECT().Update(mock.Anything, healthy).Return(nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		results, err := f.service.MaturePayouts(ctx, adminID)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, uint64(11), results[0].InvestmentID)
	})
}
