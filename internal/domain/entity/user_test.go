package entity

import (
	"testing"
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coremocks "github.com/tonsuimining/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "Alice", "hashed-secret", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, RoleUser, user.Role)
		assert.Equal(t, UserActive, user.Status)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.GetBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty email should return error", func(t *testing.T) {
		user, err := NewUser("", "Alice", "hashed-secret", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, user)
	})

	t.Run("Empty password hash should return error", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "Alice", "", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, user)
	})
}

func TestUserBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newUser := func(t *testing.T, balance int64) *User {
		u, err := NewUser("bob@example.com", "Bob", "hash", mockTime)
		require.NoError(t, err)
		u.SetBalance(balance, mockTime)
		return u
	}

	t.Run("Credit adds to balance", func(t *testing.T) {
		u := newUser(t, 1000)
		u.Credit(500, mockTime)

		assert.Equal(t, int64(1500), u.Balance())
		assert.Equal(t, "15.00", u.GetBalance())
	})

	t.Run("Debit subtracts from balance", func(t *testing.T) {
		u := newUser(t, 1000)
		err := u.Debit(400, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(600), u.Balance())
	})

	t.Run("Debit below zero fails", func(t *testing.T) {
		u := newUser(t, 1000)
		err := u.Debit(1001, mockTime)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(1000), u.Balance())
	})

	t.Run("Debit exact balance succeeds", func(t *testing.T) {
		u := newUser(t, 1000)
		err := u.Debit(1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), u.Balance())
	})

	t.Run("CanDebit reflects balance", func(t *testing.T) {
		u := newUser(t, 1000)

		assert.True(t, u.CanDebit(1000))
		assert.False(t, u.CanDebit(1001))
	})
}

func TestUserIsAdmin(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	u, err := NewUser("carol@example.com", "Carol", "hash", mockTime)
	require.NoError(t, err)
	assert.False(t, u.IsAdmin())

	u.Role = RoleAdmin
	assert.True(t, u.IsAdmin())
}
