package pin

import (
	"context"
	"testing"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activePin(t *testing.T, f *pinFixture, id uint64) *entity.WithdrawalPin {
	p, err := entity.NewWithdrawalPin(7, "483920", 30, "", f.time)
	require.NoError(t, err)
	p.ID = id
	return p
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	expectRepos := func(f *pinFixture) {
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Active pin cancels with audit row", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		p := activePin(t, f, 55)

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(55)).Return(p, nil).Once()
		f.pinRepo.EXPECT().Update(mock.Anything, p).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionPinCancelled && log.TargetUserID == 7
		})).Return(nil).Once()

		cancelled, err := f.service.Cancel(ctx, adminID, 55, "no longer needed")

		require.NoError(t, err)
		assert.Equal(t, entity.PinCancelled, cancelled.Status)
		assert.Equal(t, "no longer needed", cancelled.Notes)
	})

	t.Run("Used pin cannot be cancelled", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		p := activePin(t, f, 55)
		require.NoError(t, p.Claim(f.time))

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(55)).Return(p, nil).Once()

		cancelled, err := f.service.Cancel(ctx, adminID, 55, "")

		assert.ErrorIs(t, err, errs.ErrPinUsed)
		assert.Nil(t, cancelled)
	})

	t.Run("Cancelling twice conflicts", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		p := activePin(t, f, 55)
		require.NoError(t, p.Cancel("first", f.time))

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(55)).Return(p, nil).Once()

		cancelled, err := f.service.Cancel(ctx, adminID, 55, "second")

		assert.ErrorIs(t, err, errs.ErrPinAlreadyCancelled)
		assert.Nil(t, cancelled)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	expectRepos := func(f *pinFixture) {
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
		f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
	}

	t.Run("Unused pin deletes", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectUnit(ctx)
		expectRepos(f)

		p := activePin(t, f, 55)

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(55)).Return(p, nil).Once()
		f.pinRepo.EXPECT().Delete(mock.Anything, uint64(55)).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionPinDeleted
		})).Return(nil).Once()

		deleted, err := f.service.Delete(ctx, adminID, 55)

		require.NoError(t, err)
		assert.Equal(t, uint64(55), deleted.ID)
	})

	t.Run("Used pin stays in the audit trail", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		p := activePin(t, f, 55)
		require.NoError(t, p.Claim(f.time))

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(55)).Return(p, nil).Once()

		deleted, err := f.service.Delete(ctx, adminID, 55)

		assert.ErrorIs(t, err, errs.ErrPinUsed)
		assert.Nil(t, deleted)
	})

	t.Run("Missing pin rolls back", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		expectRepos(f)

		f.pinRepo.EXPECT().GetByID(mock.Anything, uint64(404)).
			Return(nil, errs.ErrPinNotFound).Once()

		deleted, err := f.service.Delete(ctx, adminID, 404)

		assert.ErrorIs(t, err, errs.ErrPinNotFound)
		assert.Nil(t, deleted)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Unfiltered listing returns no settings", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()

		pins := []*entity.WithdrawalPin{activePin(t, f, 55)}
		f.pinRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter persistence.PinFilter) bool {
			return filter.Page == 1 && filter.Limit == 20
		}), fixedTime).Return(pins, int64(1), nil).Once()

		result, err := f.service.List(ctx, persistence.PinFilter{})

		require.NoError(t, err)
		assert.Len(t, result.Pins, 1)
		assert.Equal(t, int64(1), result.Total)
		assert.Nil(t, result.Settings)
	})

	t.Run("User-scoped listing resolves the policy", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()

		userID := uint64(7)
		f.pinRepo.EXPECT().List(mock.Anything, mock.Anything, fixedTime).
			Return(nil, int64(0), nil).Once()
		f.pinRepo.EXPECT().GetSettings(mock.Anything, userID).Return(nil, nil).Once()

		result, err := f.service.List(ctx, persistence.PinFilter{UserID: &userID})

		require.NoError(t, err)
		require.NotNil(t, result.Settings)
		assert.Equal(t, entity.DefaultMaxPins, result.Settings.MaxPins)
		assert.True(t, result.Settings.Enabled)
	})
}
