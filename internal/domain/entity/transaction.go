package entity

import (
	"fmt"
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// TransactionType represents the kind of ledger entry
type TransactionType string

// Transaction types
const (
	TypeDeposit     TransactionType = "deposit"
	TypeWithdrawal  TransactionType = "withdrawal"
	TypeAdminCredit TransactionType = "admin_credit"
	TypeAdminDebit  TransactionType = "admin_debit"
	TypeProfit      TransactionType = "profit"
	TypeInvestment  TransactionType = "investment"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses; pending moves to completed or rejected at most once
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

// ProcessAction is an admin decision on a pending transaction
type ProcessAction string

// Admin actions
const (
	ActionApprove ProcessAction = "approve"
	ActionReject  ProcessAction = "reject"
)

// Transaction represents a balance-affecting ledger record
type Transaction struct {
	ID            uint64
	UserID        uint64
	Type          TransactionType
	Amount        string
	AmountInCents int64
	Status        TransactionStatus
	AdminNote     string
	AdminID       *uint64 // attributes the resolving admin, nil while pending
	PinID         *uint64 // withdrawal PIN claimed at submission, withdrawals only
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new pending transaction with basic validation
func NewTransaction(
	userID uint64,
	txType string,
	amount string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !isValidType(txType) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, txType)
	}

	amountInCents, err := ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		UserID:        userID,
		Type:          TransactionType(txType),
		Amount:        EnsureTwoDecimalPlaces(amount),
		AmountInCents: amountInCents,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsPending reports whether the transaction is still awaiting resolution
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// Resolve applies an admin decision, moving pending to completed or rejected.
// A transaction resolves at most once; any further attempt is a state conflict.
func (t *Transaction) Resolve(action ProcessAction, adminID uint64, note string, timeProvider coreport.TimeProvider) error {
	if !t.IsPending() {
		return fmt.Errorf("%w: current status is %s", errs.ErrAlreadyProcessed, t.Status)
	}

	switch action {
	case ActionApprove:
		t.Status = StatusCompleted
	case ActionReject:
		t.Status = StatusRejected
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidAction, action)
	}

	t.AdminID = &adminID
	t.AdminNote = note
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// CreditsOnApproval reports whether approving this transaction increases the balance
func (t *Transaction) CreditsOnApproval() bool {
	return t.Type == TypeDeposit
}

// DebitsOnApproval reports whether approving this transaction decreases the balance
func (t *Transaction) DebitsOnApproval() bool {
	return t.Type == TypeWithdrawal
}

// isValidType validates if the transaction type is allowed
func isValidType(txType string) bool {
	switch TransactionType(txType) {
	case TypeDeposit, TypeWithdrawal, TypeAdminCredit, TypeAdminDebit, TypeProfit, TypeInvestment:
		return true
	}
	return false
}
