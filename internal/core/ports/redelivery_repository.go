package ports

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/redelivery"
)

// RedeliveryRepository stores messages whose publication failed.
type RedeliveryRepository interface {
	// Add persists a new entry.
	Add(ctx context.Context, entry *redelivery.Entry) error

	// Update persists the attempt count, last error and schedule of an existing entry.
	Update(ctx context.Context, entry *redelivery.Entry) error

	// Remove deletes the entry. Removing an unknown id returns errs.ErrObjectNotFound.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetDue returns up to limit entries whose next attempt is at or before now,
	// oldest first. Inside a transaction the rows stay locked until it ends and
	// rows locked by other transactions are skipped.
	GetDue(ctx context.Context, now time.Time, limit int) ([]*redelivery.Entry, error)
}
