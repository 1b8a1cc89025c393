package commands_test

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

var fixedClock = ports.ClockFunc(func() time.Time { return now })

var discardLogger = slog.New(slog.DiscardHandler)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

// Replace runs mutate against a clone of the order configured for id.
func (m *MockOrderRepository) Replace(ctx context.Context, id kernel.UUID, mutate ports.OrderMutator) (*order.Order, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	stored, _ := args.Get(0).(*order.Order)
	working := stored.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	return working, nil
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) Verify(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Emit(ctx context.Context, t event.Type, payload event.Payload) event.Event {
	m.Called(ctx, t, payload)
	return event.New(t, payload, now)
}

func (m *MockEventLog) Events() []event.Event {
	args := m.Called()
	events, _ := args.Get(0).([]event.Event)
	return events
}
