package queries

import (
	"errors"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersParams carries the caller-supplied listing options. Absent values select
// defaults: page 1, limit 10, sorted by createdAt descending.
type ListOrdersParams struct {
	UserID    string
	Status    string
	Page      *int
	Limit     *int
	SortBy    string
	SortOrder string
}

// ListOrdersQuery lists the orders visible to the caller.
type ListOrdersQuery struct {
	caller identity.Context
	params ListOrdersParams

	guard guard.ConstructorGuard
}

// NewListOrdersQuery fails with an UnauthorizedError when ic is anonymous.
func NewListOrdersQuery(ic identity.Context, params ListOrdersParams) (ListOrdersQuery, error) {
	if err := requireCaller(ic); err != nil {
		return ListOrdersQuery{}, err
	}

	params.Page = valueOr(params.Page, services.DefaultPage)
	params.Limit = valueOr(params.Limit, services.DefaultLimit)
	if params.SortBy == "" {
		params.SortBy = string(services.SortByCreatedAt)
	}
	if params.SortOrder == "" {
		params.SortOrder = string(services.SortDesc)
	}

	return ListOrdersQuery{
		caller: ic,
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Caller() identity.Context {
	return q.caller
}

func (q ListOrdersQuery) Params() ListOrdersParams {
	return q.params
}

// Filter applies the caller's visibility to the requested owner filter.
func (q ListOrdersQuery) Filter() services.OrderFilter {
	return services.OrderFilter{
		UserID: services.ScopeUserFilter(q.caller, q.params.UserID),
		Status: order.Status(q.params.Status),
	}
}

func (q ListOrdersQuery) Sort() services.Sort {
	return services.Sort{
		Field:     services.SortField(q.params.SortBy),
		Direction: services.SortDirection(q.params.SortOrder),
	}
}

func (q ListOrdersQuery) PageRequest() services.PageRequest {
	return services.PageRequest{
		Page:  *q.params.Page,
		Limit: *q.params.Limit,
	}
}

// valueOr returns a fresh pointer to *v, or to def when v is nil.
func valueOr(v *int, def int) *int {
	if v != nil {
		def = *v
	}
	return &def
}
