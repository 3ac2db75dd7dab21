// Package commands contains the operations that publish lifecycle events or change
// the redelivery store. Each command is built by its constructor, checked with
// Validate and executed by a handler that receives its dependencies as interfaces.
package commands

import (
	"context"

	"orderlifecycle/internal/core/ports"
)

// Unit of Work interfaces narrowed to what the command handlers use.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RedeliveryRepoFactory provides the redelivery repository bound to a transaction.
	RedeliveryRepoFactory interface {
		RedeliveryRepository() ports.RedeliveryRepository
	}

	// RedeliveryUoW groups redelivery store changes into one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   if err := uow.RedeliveryRepository().Add(ctx, entry); err != nil {
	//       return err
	//   }
	//   return uow.Commit(ctx)
	RedeliveryUoW interface {
		TxManager
		RedeliveryRepoFactory
	}

	// RedeliveryUoWFactory creates a unit of work per command.
	RedeliveryUoWFactory interface {
		Create() RedeliveryUoW
	}
)
