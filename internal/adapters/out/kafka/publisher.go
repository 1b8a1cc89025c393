// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// ErrNoBrokers is returned when the broker list is empty.
var ErrNoBrokers = errors.New("kafka: no brokers configured")

// HeaderEventType carries the event type on every message.
const HeaderEventType = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher writes each event as a JSON message keyed by order id, so every event of
// an order lands on the same partition.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher for the comma separated brokers list.
func NewPublisher(brokersCSV, topic string) (*Publisher, error) {
	brokers := splitBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}), nil
}

func NewPublisherWithWriter(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not marshal event %s: %w", e.ID.String(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.AggregateID()),
		Value: data,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.Type.String())},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func splitBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
