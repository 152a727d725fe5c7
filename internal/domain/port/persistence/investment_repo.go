package persistence

import (
	"context"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// InvestmentFilter narrows investment listings
type InvestmentFilter struct {
	UserID *uint64
	Status string
	Page   int
	Limit  int
}

// InvestmentRepository defines methods to interact with investment stakes
type InvestmentRepository interface {
	// Create saves a new investment row
	Create(ctx context.Context, investment *entity.Investment) error

	// Update persists status and payout changes
	Update(ctx context.Context, investment *entity.Investment) error

	// GetByID retrieves an investment by ID
	//
	// Possible errors:
	// - ErrInvestmentNotFound: If the investment doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Investment, error)

	// GetByIDForUpdate retrieves an investment holding an exclusive row lock
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Investment, error)

	// List returns investments matching the filter plus the unpaged total
	List(ctx context.Context, filter InvestmentFilter) ([]*entity.Investment, int64, error)

	// ListMature returns active investments whose end date is at or before now
	ListMature(ctx context.Context, now time.Time) ([]*entity.Investment, error)
}
