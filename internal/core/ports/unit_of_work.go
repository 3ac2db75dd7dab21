package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary around the redelivery store.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// RedeliveryRepository returns a repository bound to the transaction started by Begin.
	RedeliveryRepository() RedeliveryRepository
}
