package commands

import (
	"errors"

	"orders/internal/core/domain/model/identity"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks to move an order to a new status.
// The order id and target status are kept as submitted; the handler resolves
// them after the order is found and the caller's access is confirmed.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	caller  identity.Context
	orderID string
	status  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand fails with an UnauthorizedError when ic is anonymous.
func NewUpdateOrderStatusCommand(ic identity.Context, orderID, status string) (UpdateOrderStatusCommand, error) {
	if err := requireCaller(ic); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		caller:  ic,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Caller() identity.Context {
	return c.caller
}

func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() string {
	return c.status
}
