package entity

import (
	"testing"
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coremocks "github.com/tonsuimining/platform/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid deposit", func(t *testing.T) {
		txn, err := NewTransaction(1, string(TypeDeposit), "100.5", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), txn.UserID)
		assert.Equal(t, TypeDeposit, txn.Type)
		assert.Equal(t, "100.50", txn.Amount)
		assert.Equal(t, int64(10050), txn.AmountInCents)
		assert.Equal(t, StatusPending, txn.Status)
		assert.Nil(t, txn.AdminID)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Zero user ID fails", func(t *testing.T) {
		txn, err := NewTransaction(0, string(TypeDeposit), "100.00", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, txn)
	})

	t.Run("Unknown type fails", func(t *testing.T) {
		txn, err := NewTransaction(1, "transfer", "100.00", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, txn)
	})

	t.Run("Zero amount fails", func(t *testing.T) {
		txn, err := NewTransaction(1, string(TypeDeposit), "0.00", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, txn)
	})

	t.Run("Negative amount fails", func(t *testing.T) {
		txn, err := NewTransaction(1, string(TypeWithdrawal), "-5.00", mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, txn)
	})
}

func TestTransactionResolve(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newPending := func(t *testing.T) *Transaction {
		txn, err := NewTransaction(1, string(TypeDeposit), "50.00", mockTime)
		require.NoError(t, err)
		return txn
	}

	t.Run("Approve moves pending to completed", func(t *testing.T) {
		txn := newPending(t)
		err := txn.Resolve(ActionApprove, 99, "ok", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, txn.Status)
		require.NotNil(t, txn.AdminID)
		assert.Equal(t, uint64(99), *txn.AdminID)
		assert.Equal(t, "ok", txn.AdminNote)
	})

	t.Run("Reject moves pending to rejected", func(t *testing.T) {
		txn := newPending(t)
		err := txn.Resolve(ActionReject, 99, "suspicious", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusRejected, txn.Status)
	})

	t.Run("Resolving twice fails", func(t *testing.T) {
		txn := newPending(t)
		require.NoError(t, txn.Resolve(ActionApprove, 99, "", mockTime))

		err := txn.Resolve(ActionReject, 99, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, StatusCompleted, txn.Status)
	})

	t.Run("Unknown action fails", func(t *testing.T) {
		txn := newPending(t)
		err := txn.Resolve(ProcessAction("hold"), 99, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAction)
		assert.Equal(t, StatusPending, txn.Status)
	})
}

func TestTransactionBalanceDirection(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	deposit, err := NewTransaction(1, string(TypeDeposit), "10.00", mockTime)
	require.NoError(t, err)
	assert.True(t, deposit.CreditsOnApproval())
	assert.False(t, deposit.DebitsOnApproval())

	withdrawal, err := NewTransaction(1, string(TypeWithdrawal), "10.00", mockTime)
	require.NoError(t, err)
	assert.False(t, withdrawal.CreditsOnApproval())
	assert.True(t, withdrawal.DebitsOnApproval())
}
