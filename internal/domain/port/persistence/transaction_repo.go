package persistence

import (
	"context"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	UserID *uint64
	Status string
	Type   string
	Page   int
	Limit  int
}

// TransactionRepository defines essential methods to interact with ledger transactions
type TransactionRepository interface {
	// Create saves a new transaction record
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status, note and attribution changes
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByIDForUpdate retrieves a transaction holding an exclusive row lock.
	// The approval state machine re-reads status under this lock so a
	// resolved transaction can never be processed twice.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns transactions matching the filter plus the unpaged total
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)
}
