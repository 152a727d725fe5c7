package entity

import (
	"fmt"
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// Plan is an investment product template. ROI percentage and duration are
// copied into an Investment row at join time so later plan edits never
// change running investments.
type Plan struct {
	ID               uint64
	Name             string
	ROIPercentage    int64 // whole percent
	DurationDays     int
	MinAmountInCents int64
	MaxAmountInCents int64
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPlan creates an active plan after validating the catalog terms
func NewPlan(name string, roiPercentage int64, durationDays int, minAmountInCents, maxAmountInCents int64, timeProvider coreport.TimeProvider) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: plan name is required", errs.ErrInvalidRequest)
	}
	if roiPercentage <= 0 {
		return nil, fmt.Errorf("%w: roi percentage must be positive", errs.ErrInvalidRequest)
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", errs.ErrInvalidRequest)
	}
	if minAmountInCents <= 0 {
		return nil, fmt.Errorf("%w: minimum amount must be positive", errs.ErrInvalidRequest)
	}
	if maxAmountInCents > 0 && maxAmountInCents < minAmountInCents {
		return nil, fmt.Errorf("%w: maximum amount is below the minimum", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &Plan{
		Name:             name,
		ROIPercentage:    roiPercentage,
		DurationDays:     durationDays,
		MinAmountInCents: minAmountInCents,
		MaxAmountInCents: maxAmountInCents,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// AllowsAmount checks a stake against the plan bounds.
// A zero MaxAmountInCents means the plan has no upper bound.
func (p *Plan) AllowsAmount(amountInCents int64) bool {
	if amountInCents < p.MinAmountInCents {
		return false
	}
	if p.MaxAmountInCents > 0 && amountInCents > p.MaxAmountInCents {
		return false
	}
	return true
}
