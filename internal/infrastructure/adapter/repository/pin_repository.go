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

// PinRepository implements the PinRepository port using GORM
type PinRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPinRepository creates a new PinRepository instance
func NewPinRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PinRepository {
	return &PinRepository{db: db, timeProvider: timeProvider, logger: logger}
}

func modelToPinEntity(m *model.WithdrawalPin) *entity.WithdrawalPin {
	return &entity.WithdrawalPin{
		ID:         m.ID,
		UserID:     m.UserID,
		Pin:        m.Pin,
		Status:     entity.PinStatus(m.Status),
		ExpiryDate: m.ExpiryDate,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Create saves a new PIN row
func (r *PinRepository) Create(ctx context.Context, pin *entity.WithdrawalPin) error {
	pinModel := model.WithdrawalPin{
		UserID:     pin.UserID,
		Pin:        pin.Pin,
		Status:     string(pin.Status),
		ExpiryDate: pin.ExpiryDate,
		Notes:      pin.Notes,
		CreatedAt:  pin.CreatedAt,
		UpdatedAt:  pin.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&pinModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating pin", map[string]any{
			"user_id": pin.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	pin.ID = pinModel.ID
	return nil
}

// Update persists PIN status and note changes
func (r *PinRepository) Update(ctx context.Context, pin *entity.WithdrawalPin) error {
	result := r.db.WithContext(ctx).Model(&model.WithdrawalPin{}).
		Where("id = ?", pin.ID).
		Updates(map[string]interface{}{
			"status":     string(pin.Status),
			"notes":      pin.Notes,
			"updated_at": pin.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPinNotFound
	}
	return nil
}

// GetByID retrieves a PIN by ID
func (r *PinRepository) GetByID(ctx context.Context, id uint64) (*entity.WithdrawalPin, error) {
	var pinModel model.WithdrawalPin
	result := r.db.WithContext(ctx).First(&pinModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPinNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToPinEntity(&pinModel), nil
}

// Delete removes a PIN row outright
func (r *PinRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.WithdrawalPin{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPinNotFound
	}
	return nil
}

// FindActivePin finds an active, unexpired PIN matching the code for the
// user. The row lock keeps two concurrent withdrawals from claiming the
// same PIN.
func (r *PinRepository) FindActivePin(ctx context.Context, userID uint64, pin string, now time.Time) (*entity.WithdrawalPin, error) {
	var pinModel model.WithdrawalPin
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND pin = ? AND status = ? AND expiry_date > ?",
			userID, pin, string(entity.PinActive), now).
		First(&pinModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPinNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToPinEntity(&pinModel), nil
}

// CountActive counts the user's PINs that are active and not expired at now
func (r *PinRepository) CountActive(ctx context.Context, userID uint64, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WithdrawalPin{}).
		Where("user_id = ? AND status = ? AND expiry_date > ?", userID, string(entity.PinActive), now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count, nil
}

// List returns PINs matching the filter plus the unpaged total.
// Active rows past their expiry are flipped to expired first so listings
// never show a stale active status.
func (r *PinRepository) List(ctx context.Context, filter persistence.PinFilter, now time.Time) ([]*entity.WithdrawalPin, int64, error) {
	if err := r.expireStale(ctx, filter.UserID, now); err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Model(&model.WithdrawalPin{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	page, limit := normalizePage(filter.Page, filter.Limit)

	var pinModels []model.WithdrawalPin
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pinModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	pins := make([]*entity.WithdrawalPin, 0, len(pinModels))
	for i := range pinModels {
		pins = append(pins, modelToPinEntity(&pinModels[i]))
	}

	return pins, total, nil
}

// expireStale persists read-time expiry for active rows past their date
func (r *PinRepository) expireStale(ctx context.Context, userID *uint64, now time.Time) error {
	query := r.db.WithContext(ctx).Model(&model.WithdrawalPin{}).
		Where("status = ? AND expiry_date <= ?", string(entity.PinActive), now)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	result := query.Updates(map[string]interface{}{
		"status":     string(entity.PinExpired),
		"updated_at": now,
	})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Expired stale pins", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return nil
}

// GetSettings loads the user's PIN policy, or nil when no row exists
func (r *PinRepository) GetSettings(ctx context.Context, userID uint64) (*entity.PinSettings, error) {
	var settingsModel model.PinSettings
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.PinSettings{
		UserID:    settingsModel.UserID,
		Enabled:   settingsModel.Enabled,
		MaxPins:   settingsModel.MaxPins,
		CreatedAt: settingsModel.CreatedAt,
		UpdatedAt: settingsModel.UpdatedAt,
	}, nil
}

// SaveSettings inserts or updates the user's PIN policy
func (r *PinRepository) SaveSettings(ctx context.Context, settings *entity.PinSettings) error {
	now := r.timeProvider.Now()
	settingsModel := model.PinSettings{
		UserID:    settings.UserID,
		Enabled:   settings.Enabled,
		MaxPins:   settings.MaxPins,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "max_pins", "updated_at"}),
		}).
		Create(&settingsModel).Error
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
