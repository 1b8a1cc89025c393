package commands

import (
	"errors"

	"orders/internal/core/domain/model/identity"
	"orders/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand asks to cancel an order. Owners and admins may cancel.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	caller  identity.Context
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand fails with an UnauthorizedError when ic is anonymous.
func NewCancelOrderCommand(ic identity.Context, orderID string) (CancelOrderCommand, error) {
	if err := requireCaller(ic); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		caller:  ic,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Caller() identity.Context {
	return c.caller
}

func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}
