package queries

import (
	"errors"
	"time"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrListParkedEventsQueryIsNotConstructed = errors.New(
	"ListParkedEventsQuery must be created via NewListParkedEventsQuery constructor",
)

const maxParkedEventsLimit = 500

// ListParkedEventsQuery lists messages waiting for redelivery, next attempt first.
//
// Example:
//
//	query, err := NewListParkedEventsQuery(100)
//	if err != nil {
//	    return err
//	}
//	parked, err := handler.Handle(ctx, query)
type ListParkedEventsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

func NewListParkedEventsQuery(limit int) (ListParkedEventsQuery, error) {
	q := ListParkedEventsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setLimit(limit); err != nil {
		return ListParkedEventsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParkedEventsQuery) Validate() error {
	return q.guard.Validate(ErrListParkedEventsQueryIsNotConstructed)
}

func (q ListParkedEventsQuery) Limit() int {
	return q.limit
}

func (q *ListParkedEventsQuery) setLimit(limit int) error {
	if limit < 1 || limit > maxParkedEventsLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxParkedEventsLimit)
	}
	q.limit = limit
	return nil
}

// ListParkedEventsQueryResponse is one parked message without its payload.
type ListParkedEventsQueryResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	Kind          string    `json:"kind"`
	Queue         string    `json:"queue"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"lastError"`
	NextAttemptAt time.Time `json:"nextAttemptAt"`
}
