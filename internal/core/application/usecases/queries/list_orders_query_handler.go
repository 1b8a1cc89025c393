package queries

import (
	"context"

	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// ListOrdersQueryHandler returns one page of the orders visible to the caller.
type ListOrdersQueryHandler struct {
	repo     ports.OrderRepository
	selector services.OrderSelector
}

func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		repo:     repo,
		selector: services.NewOrderSelector(),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (services.Selection, error) {
	if err := query.Validate(); err != nil {
		return services.Selection{}, err
	}

	all, err := h.repo.ListAll(ctx)
	if err != nil {
		return services.Selection{}, err
	}

	return h.selector.Select(all, query.Filter(), query.Sort(), query.PageRequest())
}
