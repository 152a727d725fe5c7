package investment

import (
	"context"
	"testing"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coremocks "github.com/tonsuimining/platform/mocks/port/core"
	persistencemocks "github.com/tonsuimining/platform/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type investmentFixture struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	invRepo  *persistencemocks.MockInvestmentRepository
	planRepo *persistencemocks.MockPlanRepository
	txRepo   *persistencemocks.MockTransactionRepository
	audit    *persistencemocks.MockAuditRepository
	time     *coremocks.MockTimeProvider
	service  *Service
}

func newInvestmentFixture(t *testing.T, fixedTime time.Time) *investmentFixture {
	f := &investmentFixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		invRepo:  persistencemocks.NewMockInvestmentRepository(t),
		planRepo: persistencemocks.NewMockPlanRepository(t),
		txRepo:   persistencemocks.NewMockTransactionRepository(t),
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

func (f *investmentFixture) expectUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

func (f *investmentFixture) expectRolledBackUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func starterPlan() *entity.Plan {
	return &entity.Plan{
		ID:               1,
		Name:             "Starter",
		ROIPercentage:    10,
		DurationDays:     7,
		MinAmountInCents: 5000,
		MaxAmountInCents: 100000,
		Active:           true,
	}
}

func investmentTestUser(t *testing.T, id uint64, balanceCents int64, tp *coremocks.MockTimeProvider) *entity.User {
	u, err := entity.NewUser("user@example.com", "User", "hash", tp)
	require.NoError(t, err)
	u.ID = id
	u.SetBalance(balanceCents, tp)
	return u
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	expectRepos := func(f *investmentFixture) {
		f.uow.EXPECT().GetPlanRepository(mock.Anything).Return(f.planRepo).Once()
		f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
		f.uow.EXPECT().GetInvestmentRepository(mock.Anything).Return(f.invRepo).Once()
		f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Stake debits the balance atomically", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		user := investmentTestUser(t, 7, 20000, f.time)

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(starterPlan(), nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()
		f.userRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.invRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(inv *entity.Investment) bool {
			return inv.UserID == 7 &&
				inv.PlanID == 1 &&
				inv.AmountInCents == 10000 &&
				inv.ROIPercentage == 10 &&
				inv.DurationDays == 7
		})).Return(nil).Once()
		f.txRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeInvestment && txn.Status == entity.StatusCompleted
		})).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionInvestmentStake
		})).Return(nil).Once()

		inv, err := f.service.Create(ctx, 7, 1, "100.00")

		require.NoError(t, err)
		assert.Equal(t, int64(10000), user.Balance())
		assert.Equal(t, fixedTime.AddDate(0, 0, 7), inv.EndDate)
	})

	t.Run("Insufficient balance rolls back", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		user := investmentTestUser(t, 7, 5000, f.time)

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(starterPlan(), nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(user, nil).Once()

		inv, err := f.service.Create(ctx, 7, 1, "100.00")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, inv)
		assert.Equal(t, int64(5000), user.Balance())
	})

	t.Run("Inactive plan rolls back", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		plan := starterPlan()
		plan.Active = false

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(plan, nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).
			Return(investmentTestUser(t, 7, 20000, f.time), nil).Once()

		inv, err := f.service.Create(ctx, 7, 1, "100.00")

		assert.Equal(t, errs.ErrPlanInactive, err)
		assert.Nil(t, inv)
	})

	t.Run("Amount below plan minimum rolls back", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(starterPlan(), nil).Once()
		f.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).
			Return(investmentTestUser(t, 7, 20000, f.time), nil).Once()

		inv, err := f.service.Create(ctx, 7, 1, "10.00")

		assert.Equal(t, errs.ErrInvalidInvestmentAmount, err)
		assert.Nil(t, inv)
	})

	t.Run("Unknown plan rolls back", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(404)).
			Return(nil, errs.ErrPlanNotFound).Once()

		inv, err := f.service.Create(ctx, 7, 404, "100.00")

		assert.ErrorIs(t, err, errs.ErrPlanNotFound)
		assert.Nil(t, inv)
	})

	t.Run("Invalid amount never opens a unit", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)

		inv, err := f.service.Create(ctx, 7, 1, "0.00")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, inv)
	})
}
