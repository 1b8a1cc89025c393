package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/ports"
	"orders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every second.
const DefaultRelaySchedule = "*/1 * * * * *"

const publishTimeout = 5 * time.Second

// EventSource exposes the queue of events waiting to be relayed.
type EventSource interface {
	Outbound() <-chan event.Event
}

// PublishRecorder counts publish outcomes. It may be nil.
type PublishRecorder interface {
	EventPublished(result string)
}

// EventRelayJob periodically drains the event queue into a publisher.
// Failed events are logged and counted, never retried.
type EventRelayJob struct {
	source    EventSource
	publisher ports.EventPublisher
	recorder  PublishRecorder
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger

	drainMu sync.Mutex
}

func NewEventRelayJob(
	source EventSource,
	publisher ports.EventPublisher,
	recorder PublishRecorder,
	schedule string,
	logger *slog.Logger,
) *EventRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &EventRelayJob{
		source:    source,
		publisher: publisher,
		recorder:  recorder,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "event_relay_job"),
	}
}

// Start schedules the relay.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Drain(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running drain, then drains what is left once more.
func (j *EventRelayJob) Stop() {
	<-j.cron.Stop().Done()
	relayed := j.Drain(context.Background())
	j.logger.InfoContext(context.Background(), "Event relay job stopped", "relayedOnStop", relayed)
}

// Drain publishes every queued event without waiting for new ones and returns how
// many were handed to the publisher successfully. Concurrent drains run one at a time.
func (j *EventRelayJob) Drain(ctx context.Context) int {
	j.drainMu.Lock()
	defer j.drainMu.Unlock()

	published := 0
	for {
		select {
		case e := <-j.source.Outbound():
			if j.publish(ctx, e) {
				published++
			}
		default:
			return published
		}
	}
}

func (j *EventRelayJob) publish(ctx context.Context, e event.Event) bool {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := j.publisher.Publish(ctx, e); err != nil {
		j.logger.ErrorContext(ctx, "Failed to publish domain event",
			"eventId", e.ID.String(),
			"type", e.Type.String(),
			"error", err,
		)
		j.record(metrics.ResultError)
		return false
	}

	j.record(metrics.ResultOK)
	return true
}

func (j *EventRelayJob) record(result string) {
	if j.recorder != nil {
		j.recorder.EventPublished(result)
	}
}
