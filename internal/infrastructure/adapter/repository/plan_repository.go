package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PlanRepository implements the PlanRepository port using GORM
type PlanRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPlanRepository creates a new PlanRepository instance
func NewPlanRepository(db *gorm.DB, logger coreport.Logger) *PlanRepository {
	return &PlanRepository{db: db, logger: logger}
}

func modelToPlanEntity(m *model.Plan) *entity.Plan {
	return &entity.Plan{
		ID:               m.ID,
		Name:             m.Name,
		ROIPercentage:    m.ROIPercentage,
		DurationDays:     m.DurationDays,
		MinAmountInCents: m.MinAmountInCents,
		MaxAmountInCents: m.MaxAmountInCents,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uint64) (*entity.Plan, error) {
	var planModel model.Plan
	result := r.db.WithContext(ctx).First(&planModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPlanNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToPlanEntity(&planModel), nil
}

// List returns the catalog; activeOnly hides deactivated plans
func (r *PlanRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Plan, error) {
	query := r.db.WithContext(ctx).Model(&model.Plan{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var planModels []model.Plan
	if err := query.Order("id ASC").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for i := range planModels {
		plans = append(plans, modelToPlanEntity(&planModels[i]))
	}
	return plans, nil
}

// Create adds a plan to the catalog
func (r *PlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planModel := model.Plan{
		Name:             plan.Name,
		ROIPercentage:    plan.ROIPercentage,
		DurationDays:     plan.DurationDays,
		MinAmountInCents: plan.MinAmountInCents,
		MaxAmountInCents: plan.MaxAmountInCents,
		Active:           plan.Active,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&planModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating plan", map[string]any{
			"name":  plan.Name,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	plan.ID = planModel.ID
	return nil
}

// Update persists plan changes. Running investments keep the terms they
// copied at join time, so this never touches investment rows.
func (r *PlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	result := r.db.WithContext(ctx).Model(&model.Plan{}).
		Where("id = ?", plan.ID).
		Updates(map[string]interface{}{
			"name":                plan.Name,
			"roi_percentage":      plan.ROIPercentage,
			"duration_days":       plan.DurationDays,
			"min_amount_in_cents": plan.MinAmountInCents,
			"max_amount_in_cents": plan.MaxAmountInCents,
			"active":              plan.Active,
			"updated_at":          plan.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPlanNotFound
	}
	return nil
}
