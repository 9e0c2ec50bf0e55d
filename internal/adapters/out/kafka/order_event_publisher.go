// Package kafka publishes order lifecycle events for downstream consumers.
// Publishing is best-effort from the fulfilment pipeline's point of view: a
// broker outage never fails an order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fulfilment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of a Kafka
// topic. Messages are keyed by order identifier so all events for one order
// land on the same partition.
type OrderEventPublisher struct {
	writer kafkaMessageWriter
}

// NewOrderEventPublisher creates a publisher for the given topic.
// bootstrap can be a comma-separated list of host:port.
func NewOrderEventPublisher(bootstrap string, topic string) *OrderEventPublisher {
	addrs := strings.Split(bootstrap, ",")
	var brokers []string
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a != "" {
			brokers = append(brokers, a)
		}
	}
	return &OrderEventPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

// NewOrderEventPublisherWith is only for tests to inject a fake writer.
func NewOrderEventPublisherWith(w kafkaMessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w}
}

// PublishOrderFinalized emits one message describing a finalized order.
func (p *OrderEventPublisher) PublishOrderFinalized(ctx context.Context, event ports.OrderFinalizedEvent) error {
	b, err := json.Marshal(&event)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: b,
	})
}

// Close releases the underlying writer's resources.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
