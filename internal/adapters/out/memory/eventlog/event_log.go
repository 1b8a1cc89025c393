// Package eventlog is the in-process, append-only domain event log.
package eventlog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/ports"
)

// DefaultQueueSize bounds the outbound queue when no size is configured.
const DefaultQueueSize = 1024

// Recorder receives counts about emitted events. It may be nil.
type Recorder interface {
	EventEmitted(eventType string)
	EventDropped()
	OrderCreated()
	StatusChanged(from, to string)
}

var _ ports.EventLog = (*EventLog)(nil)

// EventLog appends events under its own mutex and offers each one to a bounded
// outbound queue. A full queue never blocks Emit: the event stays in the log and
// only its outbound copy is dropped.
type EventLog struct {
	mu       sync.Mutex
	events   []event.Event
	outbound chan event.Event

	clock    ports.Clock
	recorder Recorder
	logger   *slog.Logger
}

func New(queueSize int, clock ports.Clock, recorder Recorder, logger *slog.Logger) *EventLog {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &EventLog{
		outbound: make(chan event.Event, queueSize),
		clock:    clock,
		recorder: recorder,
		logger:   logger.With("component", "EventLog"),
	}
}

// Emit stamps payload with a fresh id and the current time and appends it.
func (l *EventLog) Emit(ctx context.Context, t event.Type, payload event.Payload) event.Event {
	e := event.New(t, payload, l.clock.Now())

	l.mu.Lock()
	l.events = append(l.events, e)
	dropped := false
	select {
	case l.outbound <- e:
	default:
		dropped = true
	}
	l.mu.Unlock()

	l.record(e, dropped)
	if dropped {
		l.logger.WarnContext(ctx, "Outbound event queue is full, event not relayed",
			"eventId", e.ID.String(), "type", e.Type.String())
	}
	return e
}

// Events returns a snapshot of the log in emission order.
func (l *EventLog) Events() []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

// Outbound is the queue drained by the event relay.
func (l *EventLog) Outbound() <-chan event.Event {
	return l.outbound
}

func (l *EventLog) record(e event.Event, dropped bool) {
	if l.recorder == nil {
		return
	}

	l.recorder.EventEmitted(e.Type.String())
	if dropped {
		l.recorder.EventDropped()
	}

	switch p := e.Payload.(type) {
	case event.OrderCreated:
		l.recorder.OrderCreated()
	case event.OrderStatusUpdated:
		l.recorder.StatusChanged(p.OldStatus, p.NewStatus)
	}
}
