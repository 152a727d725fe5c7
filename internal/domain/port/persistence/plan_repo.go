package persistence

import (
	"context"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// PlanRepository defines methods to interact with the investment plan catalog
type PlanRepository interface {
	// GetByID retrieves a plan by ID
	//
	// Possible errors:
	// - ErrPlanNotFound: If the plan doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Plan, error)

	// List returns the catalog; activeOnly hides deactivated plans
	List(ctx context.Context, activeOnly bool) ([]*entity.Plan, error)

	// Create adds a plan to the catalog
	Create(ctx context.Context, plan *entity.Plan) error

	// Update persists plan changes (running investments keep their copied terms)
	Update(ctx context.Context, plan *entity.Plan) error
}
