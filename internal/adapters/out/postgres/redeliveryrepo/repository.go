package redeliveryrepo

import (
	"context"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/redelivery"
	"orderlifecycle/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRedeliveryRepository implements ports.RedeliveryRepository using GORM.
type GormRedeliveryRepository struct {
	db *gorm.DB
}

// NewGormRedeliveryRepository binds the repository to db, which may be a transaction.
func NewGormRedeliveryRepository(db *gorm.DB) *GormRedeliveryRepository {
	return &GormRedeliveryRepository{db: db}
}

// Add saves a new entry.
func (r *GormRedeliveryRepository) Add(ctx context.Context, entry *redelivery.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the retry state of an existing entry.
func (r *GormRedeliveryRepository) Update(ctx context.Context, entry *redelivery.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("id = ?", entry.ID().Bytes()).
		Updates(map[string]any{
			"attempts":        entry.Attempts(),
			"last_error":      entry.LastError(),
			"next_attempt_at": entry.NextAttemptAt(),
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("redelivery entry", entry.ID().String(), gorm.ErrRecordNotFound)
	}
	return nil
}

// Remove deletes the entry with id.
func (r *GormRedeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&EntryDTO{}, "id = ?", id.Bytes())
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("redelivery entry", id.String())
	}
	return nil
}

// GetDue locks up to limit due rows with FOR UPDATE SKIP LOCKED, so concurrent
// workers sharing the table never pick the same entry.
func (r *GormRedeliveryRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]*redelivery.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("next_attempt_at <= ?", now).
		Order("next_attempt_at, created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*redelivery.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
