package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvestmentRepository implements the InvestmentRepository port using GORM
type InvestmentRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewInvestmentRepository creates a new InvestmentRepository instance
func NewInvestmentRepository(db *gorm.DB, logger coreport.Logger) *InvestmentRepository {
	return &InvestmentRepository{db: db, logger: logger}
}

func modelToInvestmentEntity(m *model.Investment) *entity.Investment {
	return &entity.Investment{
		ID:            m.ID,
		UserID:        m.UserID,
		PlanID:        m.PlanID,
		AmountInCents: m.AmountInCents,
		ROIPercentage: m.ROIPercentage,
		DurationDays:  m.DurationDays,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        entity.InvestmentStatus(m.Status),
		PaidOutCents:  m.PaidOutCents,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// Create saves a new investment row
func (r *InvestmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	invModel := model.Investment{
		UserID:        investment.UserID,
		PlanID:        investment.PlanID,
		AmountInCents: investment.AmountInCents,
		ROIPercentage: investment.ROIPercentage,
		DurationDays:  investment.DurationDays,
		StartDate:     investment.StartDate,
		EndDate:       investment.EndDate,
		Status:        string(investment.Status),
		PaidOutCents:  investment.PaidOutCents,
		CreatedAt:     investment.CreatedAt,
		UpdatedAt:     investment.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&invModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating investment", map[string]any{
			"user_id": investment.UserID,
			"plan_id": investment.PlanID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	investment.ID = invModel.ID
	return nil
}

// Update persists status and payout changes
func (r *InvestmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	result := r.db.WithContext(ctx).Model(&model.Investment{}).
		Where("id = ?", investment.ID).
		Updates(map[string]interface{}{
			"status":         string(investment.Status),
			"paid_out_cents": investment.PaidOutCents,
			"updated_at":     investment.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrInvestmentNotFound
	}
	return nil
}

// GetByID retrieves an investment by ID
func (r *InvestmentRepository) GetByID(ctx context.Context, id uint64) (*entity.Investment, error) {
	var invModel model.Investment
	result := r.db.WithContext(ctx).First(&invModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToInvestmentEntity(&invModel), nil
}

// GetByIDForUpdate retrieves an investment holding an exclusive row lock
func (r *InvestmentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Investment, error) {
	var invModel model.Investment
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&invModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToInvestmentEntity(&invModel), nil
}

// List returns investments matching the filter plus the unpaged total
func (r *InvestmentRepository) List(ctx context.Context, filter persistence.InvestmentFilter) ([]*entity.Investment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Investment{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	page, limit := normalizePage(filter.Page, filter.Limit)

	var invModels []model.Investment
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&invModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	investments := make([]*entity.Investment, 0, len(invModels))
	for i := range invModels {
		investments = append(investments, modelToInvestmentEntity(&invModels[i]))
	}

	return investments, total, nil
}

// ListMature returns active investments whose end date is at or before now
func (r *InvestmentRepository) ListMature(ctx context.Context, now time.Time) ([]*entity.Investment, error) {
	var invModels []model.Investment
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date <= ?", string(entity.InvestmentActive), now).
		Order("end_date ASC").
		Find(&invModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	investments := make([]*entity.Investment, 0, len(invModels))
	for i := range invModels {
		investments = append(investments, modelToInvestmentEntity(&invModels[i]))
	}
	return investments, nil
}
