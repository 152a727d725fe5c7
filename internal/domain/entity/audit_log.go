package entity

import (
	"time"

	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// Security log actions
const (
	ActionLogin             = "login"
	ActionBalanceAdjusted   = "balance_adjusted"
	ActionTransactionReview = "transaction_reviewed"
	ActionPinsIssued        = "pins_issued"
	ActionPinCancelled      = "pin_cancelled"
	ActionPinDeleted        = "pin_deleted"
	ActionProfitPaid        = "profit_paid"
	ActionInvestmentStake   = "investment_stake"
	ActionPlanCreated       = "plan_created"
	ActionPlanUpdated       = "plan_updated"
)

// SecurityLog is an append-only audit record of a sensitive action.
// Rows are written in the same store transaction as the state change they
// document and are never updated or deleted.
type SecurityLog struct {
	ID           uint64
	ActorID      uint64 // who performed the action
	TargetUserID uint64 // whose state was changed
	Action       string
	Detail       string
	CreatedAt    time.Time
}

// NewSecurityLog creates an audit record for a sensitive action
func NewSecurityLog(actorID, targetUserID uint64, action, detail string, timeProvider coreport.TimeProvider) *SecurityLog {
	return &SecurityLog{
		ActorID:      actorID,
		TargetUserID: targetUserID,
		Action:       action,
		Detail:       detail,
		CreatedAt:    timeProvider.Now(),
	}
}

// AdminLog records an admin-surface action for the admin activity feed.
// Like SecurityLog it is append-only.
type AdminLog struct {
	ID        uint64
	AdminID   uint64
	Action    string
	Detail    string
	CreatedAt time.Time
}

// NewAdminLog creates an admin activity record
func NewAdminLog(adminID uint64, action, detail string, timeProvider coreport.TimeProvider) *AdminLog {
	return &AdminLog{
		AdminID:   adminID,
		Action:    action,
		Detail:    detail,
		CreatedAt: timeProvider.Now(),
	}
}
