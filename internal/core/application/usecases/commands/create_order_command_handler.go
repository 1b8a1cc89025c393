package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler places orders for existing users.
//
// Checks run in this order: the caller exists in the identity service, the items
// are valid. The stored order is announced with an order.created event.
type CreateOrderCommandHandler struct {
	repo   ports.OrderRepository
	users  ports.UserDirectory
	events ports.EventLog
	clock  ports.Clock
	logger *slog.Logger
}

func NewCreateOrderCommandHandler(
	repo ports.OrderRepository,
	users ports.UserDirectory,
	events ports.EventLog,
	clock ports.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:   repo,
		users:  users,
		events: events,
		clock:  clock,
		logger: logger.With("component", "CreateOrderCommandHandler"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	userID := cmd.Caller().UserID()
	if err := h.users.Verify(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "User verification failed", "userId", userID, "error", err)
		return nil, err
	}

	items, err := cmd.orderItems()
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(kernel.NewUUID(), userID, items, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Put(ctx, created); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order created", "orderId", created.ID().String(), "userId", userID)
	h.events.Emit(ctx, event.TypeOrderCreated, event.NewOrderCreated(created))

	return created, nil
}
