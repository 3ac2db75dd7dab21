package queries

import (
	"context"

	"orderlifecycle/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParkedEventsQueryHandler reads the redelivery table directly, skipping the
// payload decode the repository performs.
type ListParkedEventsQueryHandler struct {
	db *gorm.DB
}

func NewListParkedEventsQueryHandler(db *gorm.DB) ListParkedEventsQueryHandler {
	return ListParkedEventsQueryHandler{db: db}
}

// Handle returns at most query.Limit() entries ordered by next attempt.
func (h ListParkedEventsQueryHandler) Handle(
	ctx context.Context,
	query ListParkedEventsQuery,
) ([]ListParkedEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parked := make([]ListParkedEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			queue,
			attempts,
			last_error,
			next_attempt_at
		FROM redelivery_entries
		ORDER BY next_attempt_at, created_at
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListParkedEventsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.Kind,
			&resp.Queue,
			&resp.Attempts,
			&resp.LastError,
			&resp.NextAttemptAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID.String()
		resp.NextAttemptAt = resp.NextAttemptAt.UTC()

		parked = append(parked, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parked, nil
}
