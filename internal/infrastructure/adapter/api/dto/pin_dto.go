package dto

import (
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// IssuePinRequest represents the admin request to issue withdrawal PINs.
// Zero values fall back to server-side defaults.
type IssuePinRequest struct {
	UserID     uint64 `json:"userId" binding:"required"`
	PinLength  int    `json:"pinLength"`
	PinCount   int    `json:"pinCount"`
	ExpiryDays int    `json:"expiryDays"`
	Notes      string `json:"notes"`
}

// CancelPinRequest carries the optional cancellation note
type CancelPinRequest struct {
	Notes string `json:"notes"`
}

// PinResponse represents a withdrawal PIN in API responses
type PinResponse struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"userId"`
	Pin        string    `json:"pin"`
	Status     string    `json:"status"`
	ExpiryDate time.Time `json:"expiryDate"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IssuePinResponse reports a freshly issued batch
type IssuePinResponse struct {
	UserID     uint64        `json:"userId"`
	UserEmail  string        `json:"userEmail"`
	Pins       []PinResponse `json:"pins"`
	ExpiryDays int           `json:"expiryDays"`
	ExpiryDate time.Time     `json:"expiryDate"`
}

// PinSettingsResponse represents a user's PIN policy
type PinSettingsResponse struct {
	UserID  uint64 `json:"userId"`
	Enabled bool   `json:"enabled"`
	MaxPins int    `json:"maxPins"`
}

// PinListResponse carries a page of PINs with the policy when user-scoped
type PinListResponse struct {
	Pins     []PinResponse        `json:"pins"`
	Total    int64                `json:"total"`
	Settings *PinSettingsResponse `json:"settings,omitempty"`
}

// NewPinResponse maps a PIN entity to its API shape, applying read-time
// expiry so a stale active row never shows as active
func NewPinResponse(p *entity.WithdrawalPin, now time.Time) PinResponse {
	return PinResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Pin:        p.Pin,
		Status:     string(p.EffectiveStatus(now)),
		ExpiryDate: p.ExpiryDate,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}

// NewPinResponses maps a slice of PINs
func NewPinResponses(pins []*entity.WithdrawalPin, now time.Time) []PinResponse {
	out := make([]PinResponse, 0, len(pins))
	for _, p := range pins {
		out = append(out, NewPinResponse(p, now))
	}
	return out
}
