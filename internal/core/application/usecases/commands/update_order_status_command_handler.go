package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies status updates.
//
// Checks run inside the repository's critical section in this order: the order
// exists, the caller may read it, the target is a valid status, the caller may
// request that target, the current status accepts it.
type UpdateOrderStatusCommandHandler struct {
	repo   ports.OrderRepository
	policy AccessPolicy
	events ports.EventLog
	clock  ports.Clock
	logger *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	repo ports.OrderRepository,
	policy AccessPolicy,
	events ports.EventLog,
	clock ports.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		repo:   repo,
		policy: policy,
		events: events,
		clock:  clock,
		logger: logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := parseOrderID(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	caller := cmd.Caller()
	var previous order.Status

	updated, err := h.repo.Replace(ctx, id, func(o *order.Order) error {
		if err := h.policy.Authorize(caller, o, services.ActionRead); err != nil {
			return err
		}

		target, err := order.ParseTargetStatus(cmd.Status())
		if err != nil {
			return err
		}

		if err = h.policy.AuthorizeTransition(caller, o, target); err != nil {
			return err
		}

		previous, err = o.ChangeStatus(target, h.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status updated",
		"orderId", updated.ID().String(),
		"oldStatus", previous.String(),
		"newStatus", updated.Status().String(),
	)
	h.events.Emit(ctx, event.TypeOrderStatusUpdated, event.NewOrderStatusUpdated(updated, previous))

	return updated, nil
}

// parseOrderID maps a malformed id to the same not found error as an unknown one.
func parseOrderID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("order", raw, err)
	}
	return id, nil
}
