package entity

import (
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// Role constants for user accounts
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserStatus defines possible account states
type UserStatus string

// Account states; accounts are never deleted in-flow, only status changes
const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User represents a platform account with a balance.
// Balance is stored in cents to avoid floating point precision issues and is
// only ever mutated through the ledger service.
type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Status       UserStatus
	balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active user account with a zero balance
func NewUser(email, name, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if email == "" || passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Status:       UserActive,
		balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// IsAdmin reports whether the account carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanDebit checks if the user has enough balance for a deduction
func (u *User) CanDebit(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// Credit adds the amount to the balance
func (u *User) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance.
// Returns ErrInsufficientBalance if the balance would go negative.
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < amountInCents {
		return errs.NewInsufficientBalanceError(u.ID, AmountInCentsToString(amountInCents), u.GetBalance())
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
