package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func modelToTransactionEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entity.TransactionType(m.Type),
		Amount:        entity.AmountInCentsToString(m.AmountInCents),
		AmountInCents: m.AmountInCents,
		Status:        entity.TransactionStatus(m.Status),
		AdminNote:     m.AdminNote,
		AdminID:       m.AdminID,
		PinID:         m.PinID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// entityToModel converts a transaction entity to its database model
func transactionEntityToModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:            t.ID,
		UserID:        t.UserID,
		Type:          string(t.Type),
		AmountInCents: t.AmountInCents,
		Status:        string(t.Status),
		AdminNote:     t.AdminNote,
		AdminID:       t.AdminID,
		PinID:         t.PinID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// Create saves a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := transactionEntityToModel(transaction)

	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"user_id": transaction.UserID,
			"type":    string(transaction.Type),
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = txModel.ID
	return nil
}

// Update persists status, note and attribution changes
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"status":     string(transaction.Status),
			"admin_note": transaction.AdminNote,
			"admin_id":   transaction.AdminID,
			"updated_at": transaction.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Database error when updating transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).First(&txModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToTransactionEntity(&txModel), nil
}

// GetByIDForUpdate retrieves a transaction holding an exclusive row lock.
// The approval flow re-reads status under this lock so a resolved
// transaction can never be processed twice.
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&txModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error when locking transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToTransactionEntity(&txModel), nil
}

// List returns transactions matching the filter plus the unpaged total
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	page, limit := normalizePage(filter.Page, filter.Limit)

	var txModels []model.Transaction
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&txModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, modelToTransactionEntity(&txModels[i]))
	}

	return transactions, total, nil
}
