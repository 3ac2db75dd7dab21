// Package redeliveryrepo persists redelivery entries with GORM. The lifecycle message
// is stored in its JSON wire form and read back through lifecycle.Decode, so stored
// rows are validated like messages received from the bus.
package redeliveryrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/redelivery"
	"orderlifecycle/internal/core/domain/model/routing"

	"github.com/google/uuid"
)

// EntryDTO is one row of the redelivery_entries table. The (next_attempt_at,
// created_at) index serves the due-entry scan.
type EntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       string    `gorm:"size:128;index"`
	Kind          string    `gorm:"size:32;not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	Exchange      string    `gorm:"size:128;not null"`
	RoutingKey    string    `gorm:"size:128"`
	Queue         string    `gorm:"size:128;not null"`
	Attempts      int       `gorm:"not null"`
	LastError     string    `gorm:"type:text"`
	NextAttemptAt time.Time `gorm:"not null;index:idx_redelivery_due,priority:1"`
	CreatedAt     time.Time `gorm:"not null;index:idx_redelivery_due,priority:2"`
}

func (EntryDTO) TableName() string {
	return "redelivery_entries"
}

func fromDomain(entry *redelivery.Entry) (EntryDTO, error) {
	payload, err := json.Marshal(entry.Message())
	if err != nil {
		return EntryDTO{}, fmt.Errorf("encode redelivery payload: %w", err)
	}

	d := entry.Destination()
	return EntryDTO{
		ID:            entry.ID().Bytes(),
		OrderID:       entry.Message().OrderID(),
		Kind:          entry.Message().Kind().String(),
		Payload:       payload,
		Exchange:      string(d.Exchange),
		RoutingKey:    string(d.RoutingKey),
		Queue:         string(d.Queue),
		Attempts:      entry.Attempts(),
		LastError:     entry.LastError(),
		NextAttemptAt: entry.NextAttemptAt(),
		CreatedAt:     entry.CreatedAt(),
	}, nil
}

func toDomain(dto EntryDTO) (*redelivery.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	decoded := lifecycle.Decode(lifecycle.Kind(dto.Kind), dto.Payload)
	msg, ok := decoded.Value()
	if !ok {
		return nil, fmt.Errorf("decode redelivery entry %s: %w", id, decoded.Err())
	}

	return redelivery.RestoreEntry(
		id,
		msg,
		routing.Destination{
			Exchange:   routing.ExchangeName(dto.Exchange),
			RoutingKey: routing.RoutingKey(dto.RoutingKey),
			Queue:      routing.QueueName(dto.Queue),
		},
		dto.Attempts,
		dto.LastError,
		dto.NextAttemptAt.UTC(),
		dto.CreatedAt.UTC(),
	)
}
