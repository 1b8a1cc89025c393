package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	orderskafka "orders/internal/adapters/out/kafka"
	"orders/internal/core/domain/model/event"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	e := event.New(event.TypeOrderStatusUpdated, event.OrderStatusUpdated{
		OrderID: "o-1", UserID: "u-1", OldStatus: "created", NewStatus: "cancelled",
	}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	w := new(MockWriter)
	w.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 {
			return false
		}
		var decoded map[string]any
		if err := json.Unmarshal(msgs[0].Value, &decoded); err != nil {
			return false
		}
		return string(msgs[0].Key) == "o-1" &&
			decoded["type"] == "order.status_updated" &&
			string(msgs[0].Headers[0].Value) == "order.status_updated"
	})).Return(nil).Once()

	err := orderskafka.NewPublisherWithWriter(w).Publish(ctx, e)

	require.NoError(t, err)
	w.AssertExpectations(t)
}

func TestPublisher_PublishError(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := orderskafka.NewPublisherWithWriter(w).Publish(t.Context(), event.New(event.TypeOrderCreated, event.OrderCreated{OrderID: "o-1"}, time.Now()))

	require.EqualError(t, err, "leader not available")
}

func TestNewPublisher(t *testing.T) {
	_, err := orderskafka.NewPublisher(" , ", "orders.events")
	require.ErrorIs(t, err, orderskafka.ErrNoBrokers)

	p, err := orderskafka.NewPublisher("kafka-1:9092, kafka-2:9092", "orders.events")
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
