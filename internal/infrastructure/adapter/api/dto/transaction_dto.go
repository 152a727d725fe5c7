package dto

import (
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// DepositRequest represents the API request for submitting a deposit
type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// WithdrawalRequest represents the API request for submitting a withdrawal.
// A valid withdrawal PIN must accompany every request.
type WithdrawalRequest struct {
	Amount string `json:"amount" binding:"required"`
	Pin    string `json:"pin" binding:"required"`
}

// ProcessRequest represents the admin decision on a pending transaction
type ProcessRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Note   string `json:"note"`
}

// AdjustRequest represents a direct admin balance adjustment
type AdjustRequest struct {
	Amount string `json:"amount" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=credit debit"`
	Note   string `json:"note"`
}

// TransactionResponse represents a ledger transaction in API responses
type TransactionResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	AdminNote string    `json:"adminNote,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProcessResponse reports the outcome of an admin decision
type ProcessResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Status        string `json:"status"`
	NewBalance    string `json:"newBalance"`
}

// AdjustResponse reports the outcome of a direct adjustment
type AdjustResponse struct {
	TransactionID uint64 `json:"transactionId"`
	NewBalance    string `json:"newBalance"`
}

// NewTransactionResponse maps a transaction entity to its API shape
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      string(t.Type),
		Amount:    t.Amount,
		Status:    string(t.Status),
		AdminNote: t.AdminNote,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewTransactionResponses maps a slice of transactions
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
