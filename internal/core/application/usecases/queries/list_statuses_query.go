// Package queries contains read-only operations. Handlers never change state and
// return plain response structs suitable for the HTTP adapter.
package queries

import (
	"errors"

	"orderlifecycle/internal/pkg/guard"
)

var ErrListStatusesQueryIsNotConstructed = errors.New(
	"ListStatusesQuery must be created via NewListStatusesQuery constructor",
)

// ListStatusesQuery returns the order status catalogue.
//
// Example:
//
//	statuses, err := NewListStatusesQueryHandler().Handle(ctx, NewListStatusesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, s := range statuses {
//	    fmt.Printf("%s -> %v\n", s.Status, s.Next)
//	}
type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

// ListStatusesQueryResponse describes one status and where it may go next.
type ListStatusesQueryResponse struct {
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Terminal    bool     `json:"terminal"`
	Next        []string `json:"next"`
}
