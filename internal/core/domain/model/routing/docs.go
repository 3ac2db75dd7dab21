// Package routing maps order lifecycle events to their wire-level identifiers on
// the message bus: exchange, routing key and queue.
//
// The mapping is a fixed table keyed by event name (the six order statuses plus
// "created", "completed", "user.cancelled" and "dlq"). Resolve is a pure lookup;
// an unknown key is reported as an UNMAPPED_ROUTING_DESTINATION failure so a
// malformed status never aborts a consumer loop or reaches an undefined queue.
//
// The package does not talk to a broker. Calling services use AllQueues and
// Bindings to declare their own topology.
package routing
