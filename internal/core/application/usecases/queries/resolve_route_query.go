package queries

import (
	"errors"
	"strings"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrResolveRouteQueryIsNotConstructed = errors.New(
	"ResolveRouteQuery must be created via NewResolveRouteQuery constructor",
)

// ResolveRouteQuery asks where messages for key are published. key is a status name,
// created, completed, user.cancelled or dlq.
type ResolveRouteQuery struct { //nolint:recvcheck //using for validation
	key string

	guard guard.ConstructorGuard
}

func NewResolveRouteQuery(key string) (ResolveRouteQuery, error) {
	q := ResolveRouteQuery{guard: guard.NewConstructorGuard()}
	if err := q.setKey(key); err != nil {
		return ResolveRouteQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveRouteQuery) Validate() error {
	return q.guard.Validate(ErrResolveRouteQueryIsNotConstructed)
}

func (q ResolveRouteQuery) Key() string {
	return q.key
}

func (q *ResolveRouteQuery) setKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errs.NewValueIsRequiredError("key")
	}
	q.key = key
	return nil
}
