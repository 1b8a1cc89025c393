package ports

import (
	"context"

	"orders/internal/core/domain/model/event"
)

// EventLog is the append-only domain event sequence.
type EventLog interface {
	// Emit appends an event and offers it for publishing. It never blocks on consumers.
	Emit(ctx context.Context, t event.Type, payload event.Payload) event.Event

	// Events returns a snapshot of every emitted event in emission order.
	Events() []event.Event
}

// EventPublisher delivers domain events outside the process.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
	Close() error
}
