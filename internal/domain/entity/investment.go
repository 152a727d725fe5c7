package entity

import (
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// InvestmentStatus defines possible investment states
type InvestmentStatus string

// Investment states
const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
)

// Investment is a user's stake in a plan. ROI percentage and duration are
// frozen at join time. Accrual is computed server-side from StartDate against
// the stored terms; client-supplied progress is never trusted.
type Investment struct {
	ID            uint64
	UserID        uint64
	PlanID        uint64
	AmountInCents int64
	ROIPercentage int64
	DurationDays  int
	StartDate     time.Time
	EndDate       time.Time
	Status        InvestmentStatus
	PaidOutCents  int64 // profit already paid through the ledger
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvestment creates an active investment from a plan, copying its terms
func NewInvestment(userID uint64, plan *Plan, amountInCents int64, timeProvider coreport.TimeProvider) (*Investment, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !plan.Active {
		return nil, errs.ErrPlanInactive
	}
	if !plan.AllowsAmount(amountInCents) {
		return nil, errs.ErrInvalidInvestmentAmount
	}

	now := timeProvider.Now()
	return &Investment{
		UserID:        userID,
		PlanID:        plan.ID,
		AmountInCents: amountInCents,
		ROIPercentage: plan.ROIPercentage,
		DurationDays:  plan.DurationDays,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, plan.DurationDays),
		Status:        InvestmentActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ProjectedReturnCents is the hard cap on cumulative ROI for this investment:
// amount * roi_percentage / 100.
func (i *Investment) ProjectedReturnCents() int64 {
	return i.AmountInCents * i.ROIPercentage / 100
}

// AccruedCents computes ROI earned up to now, linear over the duration and
// capped at the projected final return. Accrual never exceeds the cap even
// if the investment is read long after maturity.
func (i *Investment) AccruedCents(now time.Time) int64 {
	if now.Before(i.StartDate) {
		return 0
	}

	elapsed := now.Sub(i.StartDate)
	total := time.Duration(i.DurationDays) * 24 * time.Hour
	if total <= 0 || elapsed >= total {
		return i.ProjectedReturnCents()
	}

	// int64 cents * hours stays far from overflow for realistic stakes
	return i.ProjectedReturnCents() * int64(elapsed/time.Hour) / int64(total/time.Hour)
}

// IsMature reports whether the investment has reached its end date
func (i *Investment) IsMature(now time.Time) bool {
	return !now.Before(i.EndDate)
}

// Complete marks a mature investment as completed and records the final
// payout. Returns the profit amount to pay through the ledger.
func (i *Investment) Complete(now time.Time) (int64, error) {
	if i.Status != InvestmentActive {
		return 0, errs.ErrAlreadyProcessed
	}
	if !i.IsMature(now) {
		return 0, errs.ErrInvalidRequest
	}

	profit := i.ProjectedReturnCents() - i.PaidOutCents
	if profit < 0 {
		profit = 0
	}

	i.Status = InvestmentCompleted
	i.PaidOutCents = i.ProjectedReturnCents()
	i.UpdatedAt = now
	return profit, nil
}
