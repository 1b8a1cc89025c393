package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is an immutable order line.
type Item struct {
	product  string
	quantity int
	price    decimal.Decimal
}

// NewItem validates and builds an order line: product must be non-empty, quantity a
// positive integer and price strictly positive.
func NewItem(product string, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setProduct(product),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Product() string {
	return i.product
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredErrorWithCause("product", errors.New("product name is required"))
	}
	i.product = product
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not a positive integer", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not positive", price.String()),
		)
	}
	i.price = price
	return nil
}
