package queries

import (
	"context"

	"orderlifecycle/internal/core/domain/model/order"
)

// ListStatusesQueryHandler reads the catalogue from the order status table.
type ListStatusesQueryHandler struct{}

func NewListStatusesQueryHandler() ListStatusesQueryHandler {
	return ListStatusesQueryHandler{}
}

// Handle returns the statuses in lifecycle order.
func (h ListStatusesQueryHandler) Handle(
	_ context.Context,
	query ListStatusesQuery,
) ([]ListStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := order.Statuses()
	response := make([]ListStatusesQueryResponse, 0, len(statuses))
	for _, s := range statuses {
		next := make([]string, 0, len(s.NextStatuses()))
		for _, n := range s.NextStatuses() {
			next = append(next, n.String())
		}

		response = append(response, ListStatusesQueryResponse{
			Status:      s.String(),
			Description: s.Describe(),
			Terminal:    s.IsTerminal(),
			Next:        next,
		})
	}

	return response, nil
}
