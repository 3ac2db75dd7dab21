package queries

import (
	"context"

	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/result"
)

// ResolveRouteQueryHandler looks a key up in the routing table.
type ResolveRouteQueryHandler struct{}

func NewResolveRouteQueryHandler() ResolveRouteQueryHandler {
	return ResolveRouteQueryHandler{}
}

// Handle fails with UNMAPPED_ROUTING_DESTINATION for unknown keys.
func (h ResolveRouteQueryHandler) Handle(
	_ context.Context,
	query ResolveRouteQuery,
) result.Result[routing.Destination] {
	if err := query.Validate(); err != nil {
		return result.Err[routing.Destination](err.Error(), result.CodeValidationError)
	}
	return routing.Resolve(query.Key())
}
