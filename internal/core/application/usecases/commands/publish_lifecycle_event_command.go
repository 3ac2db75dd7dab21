package commands

import (
	"errors"

	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/guard"
)

var ErrPublishLifecycleEventCommandIsNotConstructed = errors.New(
	"PublishLifecycleEventCommand must be created via NewPublishLifecycleEventCommand constructor",
)

// PublishLifecycleEventCommand asks for message to be published for an order whose
// status is currently current. current is only consulted for status variants other
// than pending and may be order.Unknown otherwise.
//
// Example:
//
//	cmd, err := NewPublishLifecycleEventCommand(order.Preparing, readyMessage)
//	if err != nil {
//	    return err
//	}
//	destination := handler.Handle(ctx, cmd)
type PublishLifecycleEventCommand struct { //nolint:recvcheck //using for validation
	current order.Status
	message lifecycle.Message

	guard guard.ConstructorGuard
}

// NewPublishLifecycleEventCommand requires a message built by lifecycle.New.
func NewPublishLifecycleEventCommand(
	current order.Status,
	message lifecycle.Message,
) (PublishLifecycleEventCommand, error) {
	cmd := PublishLifecycleEventCommand{
		current: current,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setMessage(message); err != nil {
		return PublishLifecycleEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishLifecycleEventCommand) Validate() error {
	return c.guard.Validate(ErrPublishLifecycleEventCommandIsNotConstructed)
}

func (c PublishLifecycleEventCommand) Current() order.Status {
	return c.current
}

func (c PublishLifecycleEventCommand) Message() lifecycle.Message {
	return c.message
}

func (c *PublishLifecycleEventCommand) setMessage(message lifecycle.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	c.message = message
	return nil
}
