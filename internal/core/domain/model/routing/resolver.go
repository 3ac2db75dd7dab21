package routing

import (
	"fmt"
	"strings"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/result"
)

// Destination is where a message is published and consumed.
// RoutingKey is empty for queues that are not reached by a routing key.
type Destination struct {
	Exchange   ExchangeName `json:"exchange"`
	RoutingKey RoutingKey   `json:"routingKey,omitempty"`
	Queue      QueueName    `json:"queue"`
}

// Binding ties a queue to an exchange for topology declaration.
type Binding struct {
	Exchange   ExchangeName
	Queue      QueueName
	BindingKey RoutingKey
}

// routes is keyed by lowercase event name. It is never modified after init.
var routes = map[string]Destination{
	KeyCreated:               {ExchangeOrderEvents, RoutingKeyOrderCreated, QueueOrderCreated},
	order.Pending.String():   {ExchangeOrderEvents, RoutingKeyOrderPending, QueueOrderPending},
	order.Accepted.String():  {ExchangeOrderEvents, RoutingKeyOrderAccepted, QueueOrderAccepted},
	order.Preparing.String(): {ExchangeOrderEvents, RoutingKeyOrderPreparing, QueueOrderPreparing},
	order.Ready.String():     {ExchangeOrderEvents, RoutingKeyOrderReady, QueueOrderReady},
	order.Delivered.String(): {ExchangeOrderEvents, RoutingKeyOrderDelivered, QueueOrderDelivered},
	KeyCompleted:             {ExchangeOrderEvents, RoutingKeyOrderCompleted, QueueOrderCompleted},
	order.Cancelled.String(): {ExchangeOrderEvents, RoutingKeyOrderCancelled, QueueOrderCancelled},
	KeyUserCancelled:         {ExchangeOrderEvents, "", QueueOrderUserCancelled},
	KeyDeadLetter:            {ExchangeDeadLetter, "", QueueOrderDeadLetter},
}

// Keys returns every key Resolve accepts, in lifecycle order.
func Keys() []string {
	return []string{
		KeyCreated,
		order.Pending.String(),
		order.Accepted.String(),
		order.Preparing.String(),
		order.Ready.String(),
		order.Delivered.String(),
		KeyCompleted,
		order.Cancelled.String(),
		KeyUserCancelled,
		KeyDeadLetter,
	}
}

// Resolve returns the destination for an event key, matched case-insensitively.
// Unknown keys fail with result.CodeUnmappedRoutingDestination.
//
// Example:
//
//	dest := routing.Resolve("accepted")
//	// dest.ValueOrDefault(...).RoutingKey == "order.accepted"
//	// dest.ValueOrDefault(...).Queue == "order.accepted.queue"
func Resolve(key string) result.Result[Destination] {
	dest, ok := routes[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return result.Err[Destination](
			fmt.Sprintf("status '%s' has no mapped routing destination", key),
			result.CodeUnmappedRoutingDestination,
		)
	}
	return result.Ok(dest)
}

// ResolveStatus returns the lifecycle destination for an order status.
func ResolveStatus(s order.Status) result.Result[Destination] {
	if err := s.Validate(); err != nil {
		return result.Err[Destination](
			fmt.Sprintf("status %d has no mapped routing destination", int(s)),
			result.CodeUnmappedRoutingDestination,
		)
	}
	return Resolve(s.String())
}

// RoutingKeyFor returns only the routing key for key. Keys without a routing key
// (user.cancelled, dlq) are reported as unmapped.
func RoutingKeyFor(key string) result.Result[RoutingKey] {
	return result.Bind(Resolve(key), func(d Destination) result.Result[RoutingKey] {
		if d.RoutingKey == "" {
			return result.Err[RoutingKey](
				fmt.Sprintf("status '%s' has no routing key", key),
				result.CodeUnmappedRoutingDestination,
			)
		}
		return result.Ok(d.RoutingKey)
	})
}

// QueueFor returns only the queue name for key.
func QueueFor(key string) result.Result[QueueName] {
	return result.Map(Resolve(key), func(d Destination) QueueName { return d.Queue })
}

// StatusNotification returns the destination of the status-only notification
// for s: the same routing key and queue on the status exchange.
func StatusNotification(s order.Status) result.Result[Destination] {
	return result.Map(ResolveStatus(s), func(d Destination) Destination {
		d.Exchange = ExchangeOrderStatus
		return d
	})
}

// DeadLetter returns the dead-letter destination. It is used by redelivery once
// attempts are exhausted, never by the normal publishing path.
func DeadLetter() Destination {
	return routes[KeyDeadLetter]
}

// AllQueues returns every queue of the lifecycle topology.
func AllQueues() []QueueName {
	keys := Keys()
	queues := make([]QueueName, 0, len(keys))
	for _, k := range keys {
		queues = append(queues, routes[k].Queue)
	}
	return queues
}

// Bindings returns the queue bindings a service declares for the lifecycle topology.
// Queues reached by routing key are bound with it; the user-cancelled queue is bound
// with its queue name and the dead-letter queue with an empty key.
func Bindings() []Binding {
	keys := Keys()
	bindings := make([]Binding, 0, len(keys))
	for _, k := range keys {
		d := routes[k]
		key := d.RoutingKey
		if key == "" && d.Exchange != ExchangeDeadLetter {
			key = RoutingKey(d.Queue)
		}
		bindings = append(bindings, Binding{Exchange: d.Exchange, Queue: d.Queue, BindingKey: key})
	}
	return bindings
}
