package queries

import (
	"context"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// AccessPolicy decides whether a caller may act on an order.
type AccessPolicy interface {
	Authorize(ic identity.Context, o *order.Order, action services.Action) error
}

// GetOrderQueryHandler returns an order to its owner or to an admin.
type GetOrderQueryHandler struct {
	repo   ports.OrderRepository
	policy AccessPolicy
}

func NewGetOrderQueryHandler(repo ports.OrderRepository, policy AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		repo:   repo,
		policy: policy,
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(query.OrderID())
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", query.OrderID(), err)
	}

	o, err := h.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(query.Caller(), o, services.ActionRead); err != nil {
		return nil, err
	}

	return o, nil
}
