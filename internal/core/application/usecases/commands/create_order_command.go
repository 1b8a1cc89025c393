package commands

import (
	"errors"
	"fmt"
	"math"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is an order line as submitted by the caller, before validation.
type ItemInput struct {
	Product  string
	Quantity float64
	Price    float64
}

// CreateOrderCommand represents a request to place a new order on behalf of the caller.
// Items are validated by the handler, after the caller's existence is confirmed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(ic, []ItemInput{{Product: "book", Quantity: 2, Price: 9.99}})
//	if err != nil {
//	    return err // caller is anonymous
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller identity.Context
	items  []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand fails with an UnauthorizedError when ic is anonymous.
func NewCreateOrderCommand(ic identity.Context, items []ItemInput) (CreateOrderCommand, error) {
	if err := requireCaller(ic); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		caller: ic,
		items:  append([]ItemInput(nil), items...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Caller() identity.Context {
	return c.caller
}

func (c CreateOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

// orderItems validates every submitted line and reports the first offending one.
func (c CreateOrderCommand) orderItems() ([]order.Item, error) {
	if len(c.items) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))
	}

	items := make([]order.Item, 0, len(c.items))
	for i, in := range c.items {
		item, err := in.toItem()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (in ItemInput) toItem() (order.Item, error) {
	if in.Quantity != math.Trunc(in.Quantity) || in.Quantity > math.MaxInt32 {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v is not a positive integer", in.Quantity),
		)
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a number", in.Price))
	}

	return order.NewItem(in.Product, int(in.Quantity), decimal.NewFromFloat(in.Price))
}
