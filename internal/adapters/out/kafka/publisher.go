// Package kafka publishes lifecycle messages with segmentio/kafka-go.
//
// Each destination queue maps to a topic of the same name. The exchange and
// routing key travel as headers so consumers that bridge to an exchange-based
// broker can restore them. The order id is the message key, which keeps the
// events of one order in a single partition and therefore in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/routing"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderExchange   = "exchange"
	HeaderRoutingKey = "routing-key"
	HeaderKind       = "kind"
	HeaderEventType  = "event-type"
)

// MessageWriter is the subset of *kafka.Writer the publisher uses. The writer must
// be created without a Topic so that each message can carry its own.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

// Publish writes message to the topic named after destination.Queue.
func (p *Publisher) Publish(ctx context.Context, destination routing.Destination, message lifecycle.Message) error {
	if destination.Queue == "" {
		return fmt.Errorf("destination on exchange %s has no queue", destination.Exchange)
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", message.Kind(), err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: string(destination.Queue),
		Key:   []byte(message.OrderID()),
		Value: value,
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: HeaderExchange, Value: []byte(destination.Exchange)},
			{Key: HeaderRoutingKey, Value: []byte(destination.RoutingKey)},
			{Key: HeaderKind, Value: []byte(message.Kind())},
			{Key: HeaderEventType, Value: []byte(message.Base().EventType())},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write to topic %s: %w", destination.Queue, err)
	}

	return nil
}

// NewWriter returns a writer for brokers suited to Publisher: no default topic,
// hash balancing on the key and acknowledgement from all in-sync replicas.
func NewWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}
