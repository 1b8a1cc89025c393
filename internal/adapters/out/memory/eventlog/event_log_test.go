package eventlog_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/memory/eventlog"
	"orders/internal/core/domain/model/event"
	"orders/internal/core/ports"
	"orders/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	clock  = ports.ClockFunc(func() time.Time { return now })
	logger = slog.New(slog.DiscardHandler)
)

func statusUpdated(orderID, from, to string) event.OrderStatusUpdated {
	return event.OrderStatusUpdated{OrderID: orderID, UserID: "u-1", OldStatus: from, NewStatus: to}
}

func TestEventLog_EmitAppendsInOrder(t *testing.T) {
	log := eventlog.New(10, clock, nil, logger)

	first := log.Emit(t.Context(), event.TypeOrderCreated, event.OrderCreated{OrderID: "o-1", UserID: "u-1"})
	second := log.Emit(t.Context(), event.TypeOrderStatusUpdated, statusUpdated("o-1", "created", "in_work"))

	events := log.Events()
	require.Len(t, events, 2)
	assert.Equal(t, first, events[0])
	assert.Equal(t, second, events[1])
	assert.False(t, first.ID.IsEqual(second.ID))
	assert.Equal(t, now, first.Timestamp)
	assert.Equal(t, "o-1", second.AggregateID())
}

func TestEventLog_EventsIsSnapshot(t *testing.T) {
	log := eventlog.New(10, clock, nil, logger)
	log.Emit(t.Context(), event.TypeOrderCreated, event.OrderCreated{OrderID: "o-1"})

	snapshot := log.Events()
	log.Emit(t.Context(), event.TypeOrderCreated, event.OrderCreated{OrderID: "o-2"})

	assert.Len(t, snapshot, 1)
	assert.Len(t, log.Events(), 2)
}

func TestEventLog_FullQueueDropsOutboundOnly(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	log := eventlog.New(1, clock, m, logger)

	log.Emit(t.Context(), event.TypeOrderCreated, event.OrderCreated{OrderID: "o-1"})
	log.Emit(t.Context(), event.TypeOrderStatusUpdated, statusUpdated("o-1", "created", "cancelled"))

	assert.Len(t, log.Events(), 2)
	require.Len(t, log.Outbound(), 1)
	queued := <-log.Outbound()
	assert.Equal(t, event.TypeOrderCreated, queued.Type)

	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsDropped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StatusTransitions.WithLabelValues("created", "cancelled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsEmitted.WithLabelValues("order.status_updated")), 0)
}

func TestEventLog_ConcurrentEmit(t *testing.T) {
	log := eventlog.New(1000, clock, nil, logger)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Emit(t.Context(), event.TypeOrderCreated, event.OrderCreated{OrderID: "o"})
		}()
	}
	wg.Wait()

	events := log.Events()
	assert.Len(t, events, 50)
	assert.Len(t, log.Outbound(), 50)

	seen := map[string]bool{}
	for _, e := range events {
		seen[e.ID.String()] = true
	}
	assert.Len(t, seen, 50)
}

func TestEventLog_DefaultQueueSize(t *testing.T) {
	log := eventlog.New(0, clock, nil, logger)

	assert.Equal(t, eventlog.DefaultQueueSize, cap(log.Outbound()))
}
