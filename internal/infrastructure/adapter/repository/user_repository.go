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
	"gorm.io/gorm/clause"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Email:        userModel.Email,
		Name:         userModel.Name,
		PasswordHash: userModel.PasswordHash,
		Role:         userModel.Role,
		Status:       entity.UserStatus(userModel.Status),
	}
	user.SetBalance(userModel.Balance, r.timeProvider)

	// Timestamps come from the row, not from SetBalance
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user holding an exclusive row lock.
// Concurrent balance mutations on the same user serialize here.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Database error when getting user by email", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Status:       string(user.Status),
		Balance:      user.Balance(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// Update persists user mutations (balance, status, timestamps)
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"balance":    user.Balance(),
			"status":     string(user.Status),
			"name":       user.Name,
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}
