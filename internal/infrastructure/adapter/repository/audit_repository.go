package repository

import (
	"context"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AuditRepository implements the AuditRepository port using GORM.
// Both tables are append-only; there are no update or delete paths.
type AuditRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAuditRepository creates a new AuditRepository instance
func NewAuditRepository(db *gorm.DB, logger coreport.Logger) *AuditRepository {
	return &AuditRepository{db: db, logger: logger}
}

// CreateSecurityLog appends a security log row
func (r *AuditRepository) CreateSecurityLog(ctx context.Context, log *entity.SecurityLog) error {
	logModel := model.SecurityLog{
		ActorID:      log.ActorID,
		TargetUserID: log.TargetUserID,
		Action:       log.Action,
		Detail:       log.Detail,
		CreatedAt:    log.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&logModel).Error; err != nil {
		r.logger.Error("Database error when writing security log", map[string]any{
			"action": log.Action,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	log.ID = logModel.ID
	return nil
}

// CreateAdminLog appends an admin activity row
func (r *AuditRepository) CreateAdminLog(ctx context.Context, log *entity.AdminLog) error {
	logModel := model.AdminLog{
		AdminID:   log.AdminID,
		Action:    log.Action,
		Detail:    log.Detail,
		CreatedAt: log.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&logModel).Error; err != nil {
		r.logger.Error("Database error when writing admin log", map[string]any{
			"action": log.Action,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	log.ID = logModel.ID
	return nil
}

// ListSecurityLogs returns security logs for a target user, newest first
func (r *AuditRepository) ListSecurityLogs(ctx context.Context, targetUserID uint64, limit int) ([]*entity.SecurityLog, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var logModels []model.SecurityLog
	err := r.db.WithContext(ctx).
		Where("target_user_id = ?", targetUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	logs := make([]*entity.SecurityLog, 0, len(logModels))
	for i := range logModels {
		logs = append(logs, &entity.SecurityLog{
			ID:           logModels[i].ID,
			ActorID:      logModels[i].ActorID,
			TargetUserID: logModels[i].TargetUserID,
			Action:       logModels[i].Action,
			Detail:       logModels[i].Detail,
			CreatedAt:    logModels[i].CreatedAt,
		})
	}
	return logs, nil
}
