package routing

// ExchangeName identifies an exchange on the bus.
type ExchangeName string

// RoutingKey is the key a message is published with.
type RoutingKey string

// QueueName identifies a queue consumers read from.
type QueueName string

const (
	// ExchangeOrderEvents carries every lifecycle event.
	ExchangeOrderEvents ExchangeName = "order.events.exchange"
	// ExchangeOrderStatus carries status-only notifications.
	ExchangeOrderStatus ExchangeName = "order.status.exchange"
	// ExchangeDeadLetter receives messages whose redelivery attempts are exhausted.
	ExchangeDeadLetter ExchangeName = "order.deadletter.exchange"
)

const (
	RoutingKeyOrderCreated   RoutingKey = "order.created"
	RoutingKeyOrderPending   RoutingKey = "order.pending"
	RoutingKeyOrderAccepted  RoutingKey = "order.accepted"
	RoutingKeyOrderPreparing RoutingKey = "order.preparing"
	RoutingKeyOrderReady     RoutingKey = "order.ready"
	RoutingKeyOrderDelivered RoutingKey = "order.delivered"
	RoutingKeyOrderCompleted RoutingKey = "order.completed"
	RoutingKeyOrderCancelled RoutingKey = "order.cancelled"
)

const (
	QueueOrderCreated       QueueName = "order.created.queue"
	QueueOrderPending       QueueName = "order.pending.queue"
	QueueOrderAccepted      QueueName = "order.accepted.queue"
	QueueOrderPreparing     QueueName = "order.preparing.queue"
	QueueOrderReady         QueueName = "order.ready.queue"
	QueueOrderDelivered     QueueName = "order.delivered.queue"
	QueueOrderCompleted     QueueName = "order.completed.queue"
	QueueOrderCancelled     QueueName = "order.cancelled.queue"
	QueueOrderUserCancelled QueueName = "order.user.cancelled.queue"
	QueueOrderDeadLetter    QueueName = "order.dlq.queue"
)

// Keys accepted by Resolve that are not order statuses.
const (
	KeyCreated       = "created"
	KeyCompleted     = "completed"
	KeyUserCancelled = "user.cancelled"
	KeyDeadLetter    = "dlq"
)
