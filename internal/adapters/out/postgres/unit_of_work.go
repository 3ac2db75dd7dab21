// Package postgres provides the GORM unit of work around the redelivery store.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	entries, err := uow.RedeliveryRepository().GetDue(ctx, now, 50)
//	if err != nil {
//	    return err
//	}
//	// ... publish, then Update or Remove each entry
//
//	return uow.Commit(ctx)
//
// Rows returned by GetDue stay locked until Commit or Rollback. Each goroutine must
// use its own UnitOfWork.
package postgres

import (
	"context"

	"orderlifecycle/internal/adapters/out/postgres/redeliveryrepo"
	"orderlifecycle/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per command.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active, which
// is the normal outcome of a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RedeliveryRepository uses the active transaction, or the plain connection when
// Begin was not called.
func (uow *GormUnitOfWork) RedeliveryRepository() ports.RedeliveryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return redeliveryrepo.NewGormRedeliveryRepository(db)
}
