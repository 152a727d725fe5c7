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

func TestCreatePlan(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	expectPlanRepos := func(f *investmentFixture) {
		f.uow.EXPECT().GetPlanRepository(mock.Anything).Return(f.planRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("New plan is stored active with an admin log row", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectPlanRepos(f)

		f.planRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Plan) bool {
			return p.Name == "Platinum" &&
				p.ROIPercentage == 80 &&
				p.DurationDays == 60 &&
				p.MinAmountInCents == 1000000 &&
				p.MaxAmountInCents == 0 &&
				p.Active
		})).Return(nil).Once()
		f.audit.EXPECT().CreateAdminLog(mock.Anything, mock.MatchedBy(func(log *entity.AdminLog) bool {
			return log.AdminID == adminID && log.Action == entity.ActionPlanCreated
		})).Return(nil).Once()

		plan, err := f.service.CreatePlan(ctx, adminID, PlanRequest{
			Name:          "Platinum",
			ROIPercentage: 80,
			DurationDays:  60,
			MinAmount:     "10000.00",
		})

		require.NoError(t, err)
		assert.True(t, plan.Active)
		assert.Equal(t, fixedTime, plan.CreatedAt)
	})

	t.Run("Invalid minimum amount never opens a unit", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)

		plan, err := f.service.CreatePlan(ctx, adminID, PlanRequest{
			Name:          "Platinum",
			ROIPercentage: 80,
			DurationDays:  60,
			MinAmount:     "not-a-number",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, plan)
	})

	t.Run("Maximum below minimum never opens a unit", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)

		plan, err := f.service.CreatePlan(ctx, adminID, PlanRequest{
			Name:          "Platinum",
			ROIPercentage: 80,
			DurationDays:  60,
			MinAmount:     "100.00",
			MaxAmount:     "50.00",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, plan)
	})
}

func TestUpdatePlan(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	expectPlanRepos := func(f *investmentFixture) {
		f.uow.EXPECT().GetPlanRepository(mock.Anything).Return(f.planRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Deactivation keeps other terms and is audited", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectPlanRepos(f)

		plan := starterPlan()
		inactive := false

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(plan, nil).Once()
		f.planRepo.EXPECT().Update(mock.Anything, plan).Return(nil).Once()
		f.audit.EXPECT().CreateAdminLog(mock.Anything, mock.MatchedBy(func(log *entity.AdminLog) bool {
			return log.AdminID == adminID && log.Action == entity.ActionPlanUpdated
		})).Return(nil).Once()

		updated, err := f.service.UpdatePlan(ctx, adminID, 1, PlanUpdate{Active: &inactive})

		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.Equal(t, "Starter", updated.Name)
		assert.Equal(t, fixedTime, updated.UpdatedAt)
	})

	t.Run("Amount bounds are re-validated after edits", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectPlanRepos(f)

		maxAmount := "10.00" // below the Starter minimum of 50.00

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(starterPlan(), nil).Once()

		updated, err := f.service.UpdatePlan(ctx, adminID, 1, PlanUpdate{MaxAmount: &maxAmount})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, updated)
	})

	t.Run("Unknown plan rolls back", func(t *testing.T) {
		f := newInvestmentFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectPlanRepos(f)

		f.planRepo.EXPECT().GetByID(mock.Anything, uint64(404)).
			Return(nil, errs.ErrPlanNotFound).Once()

		updated, err := f.service.UpdatePlan(ctx, adminID, 404, PlanUpdate{})

		assert.ErrorIs(t, err, errs.ErrPlanNotFound)
		assert.Nil(t, updated)
	})
}
