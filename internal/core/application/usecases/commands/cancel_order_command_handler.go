package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// CancelOrderCommandHandler cancels created and in_work orders.
type CancelOrderCommandHandler struct {
	repo   ports.OrderRepository
	policy AccessPolicy
	events ports.EventLog
	clock  ports.Clock
	logger *slog.Logger
}

func NewCancelOrderCommandHandler(
	repo ports.OrderRepository,
	policy AccessPolicy,
	events ports.EventLog,
	clock ports.Clock,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		repo:   repo,
		policy: policy,
		events: events,
		clock:  clock,
		logger: logger.With("component", "CancelOrderCommandHandler"),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := parseOrderID(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	var previous order.Status
	cancelled, err := h.repo.Replace(ctx, id, func(o *order.Order) error {
		if err := h.policy.Authorize(cmd.Caller(), o, services.ActionCancel); err != nil {
			return err
		}

		var err error
		previous, err = o.Cancel(h.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order cancelled", "orderId", cancelled.ID().String(), "oldStatus", previous.String())
	h.events.Emit(ctx, event.TypeOrderStatusUpdated, event.NewOrderStatusUpdated(cancelled, previous))

	return cancelled, nil
}
