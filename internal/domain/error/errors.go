package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeAlreadyProcessed    = 4004
	CodeConstraintViolation = 4005
	CodeInvalidPinRequest   = 4006
	CodePinLimitExceeded    = 4007
	CodePinUsed             = 4008
	CodePinNotActive        = 4009
	CodeInvalidInvestment   = 4010
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodePinNotFound         = 4042
	CodePlanNotFound        = 4043
	CodeUnauthenticated     = 4100
	CodeForbidden           = 4300

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a debit would drive a balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a monetary amount is malformed or non-positive
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount is too large to represent in cents
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrAlreadyProcessed is returned when a resolved transaction is processed again
	ErrAlreadyProcessed = errors.New("transaction has already been processed")

	// ErrInvalidAction is returned when a transaction action is not approve or reject
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidAdjustmentType is returned when a balance adjustment type is unknown
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPlanNotFound is returned when the requested investment plan doesn't exist
	ErrPlanNotFound = errors.New("investment plan not found")

	// ErrPlanInactive is returned when investing into a deactivated plan
	ErrPlanInactive = errors.New("investment plan is not active")

	// ErrInvestmentNotFound is returned when the requested investment doesn't exist
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentAmount is returned when a stake is outside the plan bounds
	ErrInvalidInvestmentAmount = errors.New("investment amount outside plan limits")

	// ErrPinNotFound is returned when the requested withdrawal PIN doesn't exist
	ErrPinNotFound = errors.New("withdrawal pin not found")

	// ErrPinUsed is returned when mutating a PIN that has already been used
	ErrPinUsed = errors.New("withdrawal pin has already been used")

	// ErrPinAlreadyCancelled is returned when cancelling an already cancelled PIN
	ErrPinAlreadyCancelled = errors.New("withdrawal pin has already been cancelled")

	// ErrPinExpired is returned when claiming a PIN past its expiry date
	ErrPinExpired = errors.New("withdrawal pin has expired")

	// ErrPinLimitExceeded is returned when issuing would exceed the user's active PIN quota
	ErrPinLimitExceeded = errors.New("active pin limit exceeded")

	// ErrPinRequired is returned when a withdrawal is submitted without a valid PIN
	ErrPinRequired = errors.New("a valid withdrawal pin is required")

	// ErrInvalidPinRequest is returned when PIN issuance parameters are out of range
	ErrInvalidPinRequest = errors.New("invalid pin request parameters")

	// ErrUnauthenticated is returned when no valid identity accompanies the request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the identity lacks the required role
	ErrForbidden = errors.New("insufficient privileges")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateUser is returned when registering an email that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrPinLimitExceeded):
		return CodePinLimitExceeded
	case errors.Is(err, ErrPinUsed), errors.Is(err, ErrPinAlreadyCancelled):
		return CodePinUsed
	case errors.Is(err, ErrPinExpired), errors.Is(err, ErrPinRequired):
		return CodePinNotActive
	case errors.Is(err, ErrInvalidPinRequest):
		return CodeInvalidPinRequest
	case errors.Is(err, ErrInvalidInvestmentAmount), errors.Is(err, ErrPlanInactive):
		return CodeInvalidInvestment
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrPinNotFound):
		return CodePinNotFound
	case errors.Is(err, ErrPlanNotFound):
		return CodePlanNotFound
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LedgerError represents a failure while applying a balance-affecting operation
type LedgerError struct {
	Operation     string
	UserID        uint64
	TransactionID uint64
	Amount        string
	Err           error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %d (transaction: %d, amount: %s): %v",
		e.Operation, e.UserID, e.TransactionID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "ledger_error",
		"operation":      e.Operation,
		"user_id":        e.UserID,
		"transaction_id": e.TransactionID,
		"amount":         e.Amount,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(operation string, userID, transactionID uint64, amount string, err error) error {
	return &LedgerError{
		Operation:     operation,
		UserID:        userID,
		TransactionID: transactionID,
		Amount:        amount,
		Err:           err,
	}
}

// PinStateError describes an invalid withdrawal PIN state transition
type PinStateError struct {
	PinID  uint64
	Status string
	Err    error
}

// Error implements the error interface
func (e *PinStateError) Error() string {
	return fmt.Sprintf("pin %d in state %q: %v", e.PinID, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *PinStateError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PinStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "pin_state_error",
		"pin_id":     e.PinID,
		"status":     e.Status,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPinStateError creates a detailed PIN state error
func NewPinStateError(pinID uint64, status string, err error) error {
	return &PinStateError{PinID: pinID, Status: status, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPinNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrInvestmentNotFound)
}

// IsStateConflictError checks if the error is a state-machine conflict
// (already processed transaction, used/cancelled PIN, exceeded quota)
func IsStateConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed) ||
		errors.Is(err, ErrPinUsed) ||
		errors.Is(err, ErrPinAlreadyCancelled) ||
		errors.Is(err, ErrPinLimitExceeded)
}

// IsAuthError checks if the error relates to authentication or authorization
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidCredentials)
}

// IsValidationError checks if the error is a client input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrInvalidAdjustmentType) ||
		errors.Is(err, ErrInvalidPinRequest) ||
		errors.Is(err, ErrInvalidInvestmentAmount) ||
		errors.Is(err, ErrInvalidRequest)
}
