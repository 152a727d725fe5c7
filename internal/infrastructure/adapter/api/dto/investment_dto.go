package dto

import (
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// CreateInvestmentRequest represents the API request for staking into a plan
type CreateInvestmentRequest struct {
	PlanID uint64 `json:"planId" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// CreatePlanRequest represents the API request for adding a catalog plan
type CreatePlanRequest struct {
	Name          string `json:"name" binding:"required"`
	ROIPercentage int64  `json:"roiPercentage" binding:"required"`
	DurationDays  int    `json:"durationDays" binding:"required"`
	MinAmount     string `json:"minAmount" binding:"required"`
	MaxAmount     string `json:"maxAmount"`
}

// UpdatePlanRequest represents partial plan edits; omitted fields keep
// their current value
type UpdatePlanRequest struct {
	Name          *string `json:"name"`
	ROIPercentage *int64  `json:"roiPercentage"`
	DurationDays  *int    `json:"durationDays"`
	MinAmount     *string `json:"minAmount"`
	MaxAmount     *string `json:"maxAmount"`
	Active        *bool   `json:"active"`
}

// PlanResponse represents an investment plan in API responses
type PlanResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	ROIPercentage int64  `json:"roiPercentage"`
	DurationDays  int    `json:"durationDays"`
	MinAmount     string `json:"minAmount"`
	MaxAmount     string `json:"maxAmount,omitempty"` // empty means no upper bound
	Active        bool   `json:"active"`
}

// InvestmentResponse represents a stake in API responses. Accrued ROI is
// computed server-side at read time and capped at the projected return.
type InvestmentResponse struct {
	ID              uint64    `json:"id"`
	PlanID          uint64    `json:"planId"`
	Amount          string    `json:"amount"`
	ROIPercentage   int64     `json:"roiPercentage"`
	DurationDays    int       `json:"durationDays"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Status          string    `json:"status"`
	AccruedROI      string    `json:"accruedRoi"`
	ProjectedReturn string    `json:"projectedReturn"`
}

// PayoutResponse reports one settled investment from a maturity sweep
type PayoutResponse struct {
	InvestmentID uint64 `json:"investmentId"`
	UserID       uint64 `json:"userId"`
	Principal    string `json:"principal"`
	Profit       string `json:"profit"`
	NewBalance   string `json:"newBalance"`
}

// NewPlanResponse maps a plan entity to its API shape
func NewPlanResponse(p *entity.Plan) PlanResponse {
	resp := PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		ROIPercentage: p.ROIPercentage,
		DurationDays:  p.DurationDays,
		MinAmount:     entity.AmountInCentsToString(p.MinAmountInCents),
		Active:        p.Active,
	}
	if p.MaxAmountInCents > 0 {
		resp.MaxAmount = entity.AmountInCentsToString(p.MaxAmountInCents)
	}
	return resp
}

// NewInvestmentResponse maps an investment entity with read-time accrual
func NewInvestmentResponse(i *entity.Investment, now time.Time) InvestmentResponse {
	return InvestmentResponse{
		ID:              i.ID,
		PlanID:          i.PlanID,
		Amount:          entity.AmountInCentsToString(i.AmountInCents),
		ROIPercentage:   i.ROIPercentage,
		DurationDays:    i.DurationDays,
		StartDate:       i.StartDate,
		EndDate:         i.EndDate,
		Status:          string(i.Status),
		AccruedROI:      entity.AmountInCentsToString(i.AccruedCents(now)),
		ProjectedReturn: entity.AmountInCentsToString(i.ProjectedReturnCents()),
	}
}
