package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across multiple
// repositories inside one atomic store transaction. Every balance-affecting
// operation (approval, adjustment, stake, payout) runs entirely inside one
// unit: either all of its writes commit or none do.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetInvestmentRepository returns an investment repository bound to the current transaction
	GetInvestmentRepository(ctx context.Context) InvestmentRepository

	// GetPlanRepository returns a plan repository bound to the current transaction
	GetPlanRepository(ctx context.Context) PlanRepository

	// GetPinRepository returns a PIN repository bound to the current transaction
	GetPinRepository(ctx context.Context) PinRepository

	// GetAuditRepository returns an audit repository bound to the current transaction
	GetAuditRepository(ctx context.Context) AuditRepository
}
