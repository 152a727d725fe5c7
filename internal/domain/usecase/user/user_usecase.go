// Package user implements account registration, authentication and profile
// reads. Balance mutations live in the ledger package, never here.
package user

import (
	"context"
	"errors"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// Service handles account lifecycle operations
type Service struct {
	userRepo     persistence.UserRepository
	auditRepo    persistence.AuditRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service
func NewService(
	userRepo persistence.UserRepository,
	auditRepo persistence.AuditRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new active account with a zero balance
func (s *Service) Register(ctx context.Context, email, name, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, errs.ErrInvalidRequest
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := entity.NewUser(email, name, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": u.ID,
		"email":   u.Email,
	})
	return u, nil
}

// Authenticate verifies credentials and records a login security log.
// The same generic error comes back for unknown email and wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		s.logger.Warn("Failed login attempt", map[string]any{
			"user_id": u.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if u.Status != entity.UserActive {
		return nil, errs.ErrForbidden
	}

	if err := s.auditRepo.CreateSecurityLog(ctx,
		entity.NewSecurityLog(u.ID, u.ID, entity.ActionLogin, "successful login", s.timeProvider)); err != nil {
		// A failed audit write must not lock users out of their accounts
		s.logger.Error("Failed to write login audit log", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
	}

	s.logger.Info("User authenticated", map[string]any{
		"user_id": u.ID,
	})
	return u, nil
}

// GetByID returns the account for profile reads
func (s *Service) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, userID)
}

// SecurityLogs returns the audit trail for a user, newest first
func (s *Service) SecurityLogs(ctx context.Context, targetUserID uint64, limit int) ([]*entity.SecurityLog, error) {
	if targetUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.auditRepo.ListSecurityLogs(ctx, targetUserID, limit)
}

// UserExists reports whether the user exists without surfacing the row
func (s *Service) UserExists(ctx context.Context, userID uint64) (bool, error) {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
