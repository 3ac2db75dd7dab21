package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/redelivery"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/core/ports"
	"orderlifecycle/internal/pkg/result"
)

// PublishLifecycleEventCommandHandler checks the transition announced by a message,
// resolves its destination and publishes it. A message the bus refuses is parked in
// the redelivery store and the caller gets EXTERNAL_SERVICE_ERROR.
//
// Example:
//
//	handler := NewPublishLifecycleEventCommandHandler(publisher, uowFactory, logger)
//	r := handler.Handle(ctx, cmd)
//	r.OnFailure(func(message string, code result.Code) {
//	    logger.Warn("event rejected", "code", code, "error", message)
//	})
type PublishLifecycleEventCommandHandler struct {
	publisher  ports.EventPublisher
	uowFactory RedeliveryUoWFactory
	logger     *slog.Logger
}

func NewPublishLifecycleEventCommandHandler(
	publisher ports.EventPublisher,
	uowFactory RedeliveryUoWFactory,
	logger *slog.Logger,
) PublishLifecycleEventCommandHandler {
	return PublishLifecycleEventCommandHandler{
		publisher:  publisher,
		uowFactory: uowFactory,
		logger:     logger.With("component", "PublishLifecycleEventCommandHandler"),
	}
}

// Handle returns the destination the message was published to.
func (h PublishLifecycleEventCommandHandler) Handle(
	ctx context.Context,
	cmd PublishLifecycleEventCommand,
) result.Result[routing.Destination] {
	if err := cmd.Validate(); err != nil {
		return result.Err[routing.Destination](err.Error(), result.CodeValidationError)
	}

	msg := cmd.Message()
	return result.Bind(checkTransition(cmd.Current(), msg), func(lifecycle.Message) result.Result[routing.Destination] {
		return result.Bind(msg.Destination(), func(d routing.Destination) result.Result[routing.Destination] {
			return h.publish(ctx, d, msg)
		})
	})
}

// checkTransition skips kinds that do not move an order between statuses. Pending is
// the initial status and is never reached by a transition.
func checkTransition(current order.Status, msg lifecycle.Message) result.Result[lifecycle.Message] {
	target, isStatus := msg.Kind().Status()
	if !isStatus || target == order.Pending {
		return result.Ok(msg)
	}

	return result.Map(current.TransitionTo(target), func(order.Status) lifecycle.Message {
		return msg
	})
}

func (h PublishLifecycleEventCommandHandler) publish(
	ctx context.Context,
	d routing.Destination,
	msg lifecycle.Message,
) result.Result[routing.Destination] {
	publishErr := h.publisher.Publish(ctx, d, msg)
	if publishErr == nil {
		return result.Ok(d)
	}

	h.logger.Warn("publish failed, parking message for redelivery",
		"orderId", msg.OrderID(), "kind", msg.Kind(), "queue", d.Queue, "error", publishErr)

	if err := h.park(ctx, d, msg, publishErr); err != nil {
		h.logger.Error("failed to park message for redelivery",
			"orderId", msg.OrderID(), "kind", msg.Kind(), "error", err)
	}

	return result.Err[routing.Destination](
		fmt.Sprintf("publishing %s event for order %s failed: %v", msg.Kind(), msg.OrderID(), publishErr),
		result.CodeExternalServiceError,
	)
}

func (h PublishLifecycleEventCommandHandler) park(
	ctx context.Context,
	d routing.Destination,
	msg lifecycle.Message,
	cause error,
) error {
	entry, err := redelivery.NewEntry(kernel.NewUUID(), msg, d, cause, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RedeliveryRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
