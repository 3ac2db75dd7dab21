// Package ports defines the contracts between the application layer and its adapters.
// Adapters in internal/adapters implement them; command handlers depend only on these
// interfaces so they can be tested with mocks.
package ports

import (
	"context"

	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/routing"
)

// EventPublisher delivers lifecycle messages to the message bus.
type EventPublisher interface {
	// Publish sends message to destination. A returned error means the bus did not
	// acknowledge the message and the caller may retry.
	Publish(ctx context.Context, destination routing.Destination, message lifecycle.Message) error
}
