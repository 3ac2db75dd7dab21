package routing_test

import (
	"sync"
	"testing"

	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("should map every recognized key to its wire identifiers", func(t *testing.T) {
		testCases := []struct {
			key        string
			exchange   routing.ExchangeName
			routingKey routing.RoutingKey
			queue      routing.QueueName
		}{
			{"created", "order.events.exchange", "order.created", "order.created.queue"},
			{"pending", "order.events.exchange", "order.pending", "order.pending.queue"},
			{"accepted", "order.events.exchange", "order.accepted", "order.accepted.queue"},
			{"preparing", "order.events.exchange", "order.preparing", "order.preparing.queue"},
			{"ready", "order.events.exchange", "order.ready", "order.ready.queue"},
			{"delivered", "order.events.exchange", "order.delivered", "order.delivered.queue"},
			{"completed", "order.events.exchange", "order.completed", "order.completed.queue"},
			{"cancelled", "order.events.exchange", "order.cancelled", "order.cancelled.queue"},
			{"user.cancelled", "order.events.exchange", "", "order.user.cancelled.queue"},
			{"dlq", "order.deadletter.exchange", "", "order.dlq.queue"},
		}

		for _, tc := range testCases {
			t.Run("should resolve "+tc.key, func(t *testing.T) {
				r := routing.Resolve(tc.key)

				require.True(t, r.IsSuccess(), r.Message())
				d := r.ValueOrDefault(routing.Destination{})
				assert.Equal(t, tc.exchange, d.Exchange)
				assert.Equal(t, tc.routingKey, d.RoutingKey)
				assert.Equal(t, tc.queue, d.Queue)
			})
		}
	})

	t.Run("should match keys case-insensitively", func(t *testing.T) {
		upper := routing.Resolve("ACCEPTED")
		lower := routing.Resolve("accepted")

		require.True(t, upper.IsSuccess())
		assert.Equal(t, lower, upper)
	})

	t.Run("should report unknown keys as unmapped destination", func(t *testing.T) {
		for _, key := range []string{"shipped", "", "received", "order.accepted", "unknown"} {
			r := routing.Resolve(key)

			assert.True(t, r.IsFailure(), "key %q", key)
			assert.Equal(t, result.CodeUnmappedRoutingDestination, r.Code())
		}
	})

	t.Run("should name the unmapped key in the failure", func(t *testing.T) {
		r := routing.Resolve("shipped")

		assert.Equal(t, "status 'shipped' has no mapped routing destination", r.Message())
	})

	t.Run("should be safe for concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for _, key := range routing.Keys() {
			key := key
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.True(t, routing.Resolve(key).IsSuccess())
			}()
		}
		wg.Wait()
	})
}

func TestResolveStatus(t *testing.T) {
	t.Run("should resolve every order status", func(t *testing.T) {
		for _, s := range order.Statuses() {
			r := routing.ResolveStatus(s)

			require.True(t, r.IsSuccess(), s.String())
			assert.Equal(t, routing.QueueName("order."+s.String()+".queue"), r.ValueOrDefault(routing.Destination{}).Queue)
		}
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		r := routing.ResolveStatus(order.Unknown)

		assert.Equal(t, result.CodeUnmappedRoutingDestination, r.Code())
	})
}

func TestRoutingKeyFor(t *testing.T) {
	t.Run("should return routing key", func(t *testing.T) {
		r := routing.RoutingKeyFor("Ready")

		assert.Equal(t, routing.RoutingKeyOrderReady, r.ValueOrDefault(""))
	})

	t.Run("should fail for queues without routing key", func(t *testing.T) {
		for _, key := range []string{routing.KeyDeadLetter, routing.KeyUserCancelled, "shipped"} {
			r := routing.RoutingKeyFor(key)

			assert.Equal(t, result.CodeUnmappedRoutingDestination, r.Code(), key)
		}
	})
}

func TestQueueFor(t *testing.T) {
	assert.Equal(t, routing.QueueOrderDeadLetter, routing.QueueFor("dlq").ValueOrDefault(""))
	assert.Equal(t, result.CodeUnmappedRoutingDestination, routing.QueueFor("shipped").Code())
}

func TestStatusNotification(t *testing.T) {
	r := routing.StatusNotification(order.Ready)

	require.True(t, r.IsSuccess())
	d := r.ValueOrDefault(routing.Destination{})
	assert.Equal(t, routing.ExchangeOrderStatus, d.Exchange)
	assert.Equal(t, routing.RoutingKeyOrderReady, d.RoutingKey)

	// the lifecycle table itself is untouched
	assert.Equal(t, routing.ExchangeOrderEvents, routing.Resolve("ready").ValueOrDefault(routing.Destination{}).Exchange)
}

func TestDeadLetter(t *testing.T) {
	d := routing.DeadLetter()

	assert.Equal(t, routing.ExchangeDeadLetter, d.Exchange)
	assert.Equal(t, routing.QueueOrderDeadLetter, d.Queue)
	assert.Empty(t, d.RoutingKey)
}

func TestAllQueues(t *testing.T) {
	queues := routing.AllQueues()

	assert.Len(t, queues, 10)
	assert.Contains(t, queues, routing.QueueOrderUserCancelled)
	assert.Contains(t, queues, routing.QueueOrderDeadLetter)
}

func TestBindings(t *testing.T) {
	bindings := routing.Bindings()

	require.Len(t, bindings, len(routing.Keys()))
	assert.Contains(t, bindings, routing.Binding{
		Exchange:   routing.ExchangeOrderEvents,
		Queue:      routing.QueueOrderAccepted,
		BindingKey: routing.RoutingKeyOrderAccepted,
	})
	assert.Contains(t, bindings, routing.Binding{
		Exchange:   routing.ExchangeOrderEvents,
		Queue:      routing.QueueOrderUserCancelled,
		BindingKey: "order.user.cancelled.queue",
	})
	assert.Contains(t, bindings, routing.Binding{
		Exchange: routing.ExchangeDeadLetter,
		Queue:    routing.QueueOrderDeadLetter,
	})
}

// The full path a consuming service takes for a legacy "received" order.
func TestLegacyOrderScenario(t *testing.T) {
	current, ok := order.ParseStatus("received")
	require.True(t, ok)
	assert.Equal(t, order.Pending, current)

	assert.True(t, order.IsValidTransition(current, order.Accepted))

	dest := routing.Resolve("accepted")
	require.True(t, dest.IsSuccess())
	assert.Equal(t, routing.RoutingKey("order.accepted"), dest.ValueOrDefault(routing.Destination{}).RoutingKey)
	assert.Equal(t, routing.QueueName("order.accepted.queue"), dest.ValueOrDefault(routing.Destination{}).Queue)

	assert.False(t, order.IsValidTransition(order.Accepted, order.Delivered))

	unknown := routing.Resolve("shipped")
	assert.Equal(t, result.CodeUnmappedRoutingDestination, unknown.Code())
}
