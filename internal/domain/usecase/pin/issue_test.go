package pin

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

type pinFixture struct {
	uow       *persistencemocks.MockUnitOfWork
	userRepo  *persistencemocks.MockUserRepository
	pinRepo   *persistencemocks.MockPinRepository
	audit     *persistencemocks.MockAuditRepository
	generator *coremocks.MockPinGenerator
	time      *coremocks.MockTimeProvider
	service   *Service
}

func newPinFixture(t *testing.T, fixedTime time.Time) *pinFixture {
	f := &pinFixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		userRepo:  persistencemocks.NewMockUserRepository(t),
		pinRepo:   persistencemocks.NewMockPinRepository(t),
		audit:     persistencemocks.NewMockAuditRepository(t),
		generator: coremocks.NewMockPinGenerator(t),
		time:      coremocks.NewMockTimeProvider(t),
	}

	f.time.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(f.uow, f.generator, f.time, logger)
	return f
}

func (f *pinFixture) expectUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

func (f *pinFixture) expectRolledBackUnit(ctx context.Context) {
	f.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func (f *pinFixture) expectRepos() {
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.userRepo).Once()
	f.uow.EXPECT().GetPinRepository(mock.Anything).Return(f.pinRepo).Once()
	f.uow.EXPECT().GetAuditRepository(mock.Anything).Return(f.audit).Once()
}

func pinTestUser(t *testing.T, id uint64, tp *coremocks.MockTimeProvider) *entity.User {
	u, err := entity.NewUser("user@example.com", "User", "hash", tp)
	require.NoError(t, err)
	u.ID = id
	return u
}

func TestIssue(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const adminID = uint64(99)

	t.Run("Issue with defaults", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectUnit(ctx)
		f.expectRepos()

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(pinTestUser(t, 7, f.time), nil).Once()
		f.pinRepo.EXPECT().GetSettings(mock.Anything, uint64(7)).Return(nil, nil).Once()
		f.pinRepo.EXPECT().CountActive(mock.Anything, uint64(7), fixedTime).Return(int64(0), nil).Once()
		f.generator.EXPECT().Generate(entity.DefaultPinLength).Return("483920", nil).Once()
		f.pinRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.WithdrawalPin) bool {
			return p.UserID == 7 && p.Pin == "483920" && p.Status == entity.PinActive
		})).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.MatchedBy(func(log *entity.SecurityLog) bool {
			return log.Action == entity.ActionPinsIssued && log.ActorID == adminID
		})).Return(nil).Once()

		result, err := f.service.Issue(ctx, adminID, IssueRequest{UserID: 7})

		require.NoError(t, err)
		require.Len(t, result.Pins, 1)
		assert.Equal(t, entity.DefaultExpiry, result.ExpiryDays)
		assert.Equal(t, fixedTime.AddDate(0, 0, entity.DefaultExpiry), result.ExpiryDate)
	})

	t.Run("Batch issue generates each pin", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectUnit(ctx)
		f.expectRepos()

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(pinTestUser(t, 7, f.time), nil).Once()
		f.pinRepo.EXPECT().GetSettings(mock.Anything, uint64(7)).
			Return(&entity.PinSettings{UserID: 7, Enabled: true, MaxPins: 5}, nil).Once()
		f.pinRepo.EXPECT().CountActive(mock.Anything, uint64(7), fixedTime).Return(int64(1), nil).Once()
		f.generator.EXPECT().Generate(8).Return("48392011", nil).Times(3)
		f.pinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(3)
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Issue(ctx, adminID, IssueRequest{
			UserID:     7,
			PinLength:  8,
			PinCount:   3,
			ExpiryDays: 7,
		})

		require.NoError(t, err)
		assert.Len(t, result.Pins, 3)
		assert.Equal(t, 7, result.ExpiryDays)
	})

	t.Run("Disabled policy is enabled on issue", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectUnit(ctx)
		f.expectRepos()

		settings := &entity.PinSettings{UserID: 7, Enabled: false, MaxPins: 5}

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(pinTestUser(t, 7, f.time), nil).Once()
		f.pinRepo.EXPECT().GetSettings(mock.Anything, uint64(7)).Return(settings, nil).Once()
		f.pinRepo.EXPECT().SaveSettings(mock.Anything, mock.MatchedBy(func(s *entity.PinSettings) bool {
			return s.Enabled
		})).Return(nil).Once()
		f.pinRepo.EXPECT().CountActive(mock.Anything, uint64(7), fixedTime).Return(int64(0), nil).Once()
		f.generator.EXPECT().Generate(entity.DefaultPinLength).Return("483920", nil).Once()
		f.pinRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.audit.EXPECT().CreateSecurityLog(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := f.service.Issue(ctx, adminID, IssueRequest{UserID: 7})
		require.NoError(t, err)
	})

	t.Run("Active pin limit blocks the whole batch", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		f.expectRepos()

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).
			Return(pinTestUser(t, 7, f.time), nil).Once()
		f.pinRepo.EXPECT().GetSettings(mock.Anything, uint64(7)).
			Return(&entity.PinSettings{UserID: 7, Enabled: true, MaxPins: 5}, nil).Once()
		f.pinRepo.EXPECT().CountActive(mock.Anything, uint64(7), fixedTime).Return(int64(4), nil).Once()

		result, err := f.service.Issue(ctx, adminID, IssueRequest{UserID: 7, PinCount: 2})

		assert.ErrorIs(t, err, errs.ErrPinLimitExceeded)
		assert.Nil(t, result)
	})

	t.Run("Unknown user rolls back", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)
		f.expectRolledBackUnit(ctx)
		f.expectRepos()

		f.userRepo.EXPECT().GetByID(mock.Anything, uint64(404)).
			Return(nil, errs.ErrUserNotFound).Once()

		result, err := f.service.Issue(ctx, adminID, IssueRequest{UserID: 404})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, result)
	})

	t.Run("Parameter validation happens before any unit", func(t *testing.T) {
		f := newPinFixture(t, fixedTime)

		cases := []IssueRequest{
			{UserID: 0},
			{UserID: 7, PinLength: 3},
			{UserID: 7, PinLength: 11},
			{UserID: 7, PinCount: 11},
			{UserID: 7, ExpiryDays: 400},
		}
		for _, req := range cases {
			result, err := f.service.Issue(ctx, adminID, req)
			assert.Error(t, err)
			assert.Nil(t, result)
		}
	})
}
