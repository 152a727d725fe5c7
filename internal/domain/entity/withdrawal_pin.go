package entity

import (
	"fmt"
	"time"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
)

// PinStatus defines the lifecycle states of a withdrawal PIN
type PinStatus string

// PIN states. Used, cancelled and expired are all terminal.
const (
	PinActive    PinStatus = "active"
	PinUsed      PinStatus = "used"
	PinCancelled PinStatus = "cancelled"
	PinExpired   PinStatus = "expired"
)

// PIN issuance parameter bounds
const (
	MinPinLength     = 4
	MaxPinLength     = 10
	MinPinCount      = 1
	MaxPinCount      = 10
	MinExpiryDays    = 1
	MaxExpiryDays    = 365
	DefaultPinLength = 6
	DefaultPinCount  = 1
	DefaultExpiry    = 30
	DefaultMaxPins   = 5
)

// WithdrawalPin is a short-lived numeric code an admin issues to a user.
// A user must claim an active PIN to submit a withdrawal.
type WithdrawalPin struct {
	ID         uint64
	UserID     uint64
	Pin        string
	Status     PinStatus
	ExpiryDate time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewWithdrawalPin creates an active PIN expiring after expiryDays
func NewWithdrawalPin(userID uint64, pin string, expiryDays int, notes string, timeProvider coreport.TimeProvider) (*WithdrawalPin, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if len(pin) < MinPinLength || len(pin) > MaxPinLength {
		return nil, fmt.Errorf("%w: pin length must be between %d and %d", errs.ErrInvalidPinRequest, MinPinLength, MaxPinLength)
	}
	if expiryDays < MinExpiryDays || expiryDays > MaxExpiryDays {
		return nil, fmt.Errorf("%w: expiry days must be between %d and %d", errs.ErrInvalidPinRequest, MinExpiryDays, MaxExpiryDays)
	}

	now := timeProvider.Now()
	return &WithdrawalPin{
		UserID:     userID,
		Pin:        pin,
		Status:     PinActive,
		ExpiryDate: now.AddDate(0, 0, expiryDays),
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsExpired evaluates expiry against the given time. Expiry is a read-time
// property; rows flip to expired lazily when observed.
func (p *WithdrawalPin) IsExpired(now time.Time) bool {
	return now.After(p.ExpiryDate)
}

// EffectiveStatus returns the status with read-time expiry applied
func (p *WithdrawalPin) EffectiveStatus(now time.Time) PinStatus {
	if p.Status == PinActive && p.IsExpired(now) {
		return PinExpired
	}
	return p.Status
}

// Claim marks an active, unexpired PIN as used. A used PIN is immutable.
func (p *WithdrawalPin) Claim(timeProvider coreport.TimeProvider) error {
	now := timeProvider.Now()
	switch p.EffectiveStatus(now) {
	case PinActive:
		p.Status = PinUsed
		p.UpdatedAt = now
		return nil
	case PinExpired:
		return errs.NewPinStateError(p.ID, string(PinExpired), errs.ErrPinExpired)
	case PinUsed:
		return errs.NewPinStateError(p.ID, string(PinUsed), errs.ErrPinUsed)
	default:
		return errs.NewPinStateError(p.ID, string(p.Status), errs.ErrPinRequired)
	}
}

// Cancel moves an active PIN to cancelled, appending a note.
// Cancelling twice fails; a used PIN can never be cancelled.
func (p *WithdrawalPin) Cancel(notes string, timeProvider coreport.TimeProvider) error {
	switch p.Status {
	case PinUsed:
		return errs.NewPinStateError(p.ID, string(PinUsed), errs.ErrPinUsed)
	case PinCancelled:
		return errs.NewPinStateError(p.ID, string(PinCancelled), errs.ErrPinAlreadyCancelled)
	}

	p.Status = PinCancelled
	if notes != "" {
		if p.Notes != "" {
			p.Notes += "; "
		}
		p.Notes += notes
	}
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// CanDelete reports whether the row may be removed outright.
// Used PINs are part of the audit trail and stay.
func (p *WithdrawalPin) CanDelete() bool {
	return p.Status != PinUsed
}

// PinSettings is the per-user PIN policy row
type PinSettings struct {
	UserID    uint64
	Enabled   bool
	MaxPins   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPinSettings returns the policy applied when a user has no settings row
func DefaultPinSettings(userID uint64) *PinSettings {
	return &PinSettings{
		UserID:  userID,
		Enabled: true,
		MaxPins: DefaultMaxPins,
	}
}
