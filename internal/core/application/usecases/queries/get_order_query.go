// Package queries contains read-only operations over orders.
package queries

import (
	"errors"

	"orders/internal/core/domain/model/identity"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ReasonUserIDNotFound is reported when a query is issued without a caller.
const ReasonUserIDNotFound = "User ID not found"

// GetOrderQuery fetches a single order visible to the caller.
//
// Example:
//
//	query, err := NewGetOrderQuery(ic, "2f1c...")
//	if err != nil {
//	    return err // caller is anonymous
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	caller  identity.Context
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery fails with an UnauthorizedError when ic is anonymous.
func NewGetOrderQuery(ic identity.Context, orderID string) (GetOrderQuery, error) {
	if err := requireCaller(ic); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		caller:  ic,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Caller() identity.Context {
	return q.caller
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

func requireCaller(ic identity.Context) error {
	if !ic.IsAuthenticated() {
		return errs.NewUnauthorizedError(ReasonUserIDNotFound)
	}
	return nil
}
