package persistence

import (
	"context"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// PinFilter narrows withdrawal PIN listings
type PinFilter struct {
	UserID   *uint64
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}

// PinRepository defines methods to interact with withdrawal PINs and per-user
// PIN policies
type PinRepository interface {
	// Create saves a new PIN row
	Create(ctx context.Context, pin *entity.WithdrawalPin) error

	// Update persists PIN status and note changes
	//
	// Possible errors:
	// - ErrPinNotFound: If the PIN doesn't exist
	Update(ctx context.Context, pin *entity.WithdrawalPin) error

	// GetByID retrieves a PIN by ID
	//
	// Possible errors:
	// - ErrPinNotFound: If the PIN doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.WithdrawalPin, error)

	// Delete removes a PIN row outright
	//
	// Possible errors:
	// - ErrPinNotFound: If the PIN doesn't exist
	Delete(ctx context.Context, id uint64) error

	// FindActivePin finds an active, unexpired PIN matching the code for the
	// user, holding an exclusive row lock so two withdrawals cannot claim the
	// same PIN.
	//
	// Possible errors:
	// - ErrPinNotFound: If no matching active PIN exists
	FindActivePin(ctx context.Context, userID uint64, pin string, now time.Time) (*entity.WithdrawalPin, error)

	// CountActive counts the user's PINs that are active and not expired at now
	CountActive(ctx context.Context, userID uint64, now time.Time) (int64, error)

	// List returns PINs matching the filter plus the unpaged total.
	// Rows whose expiry has passed are persisted as expired before listing.
	List(ctx context.Context, filter PinFilter, now time.Time) ([]*entity.WithdrawalPin, int64, error)

	// GetSettings loads the user's PIN policy, or nil when no row exists
	GetSettings(ctx context.Context, userID uint64) (*entity.PinSettings, error)

	// SaveSettings inserts or updates the user's PIN policy
	SaveSettings(ctx context.Context, settings *entity.PinSettings) error
}
