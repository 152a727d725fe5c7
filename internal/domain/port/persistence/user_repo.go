package persistence

import (
	"context"

	"github.com/tonsuimining/platform/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID holding an exclusive row lock.
	// Must be called inside a unit of work; concurrent balance mutations on
	// the same user serialize on this lock.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email address
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists user mutations (balance, status, timestamps)
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error
}
