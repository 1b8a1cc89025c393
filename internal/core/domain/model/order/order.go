package order

import (
	"errors"
	"slices"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the orders domain.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty owner
//   - Must have at least one item
//   - Total equals the sum of price × quantity over its items and never changes
//   - Items and owner are immutable after creation
//   - Status changes only through ChangeStatus and Cancel
//   - UpdatedAt is never before CreatedAt
type Order struct {
	id     kernel.UUID
	userID string
	items  []Item
	total  decimal.Decimal
	status Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Created status owned by userID. Total is computed
// from items and both timestamps are set to now.
//
// Example:
//
//	item, _ := order.NewItem("book", 2, decimal.RequireFromString("9.99"))
//	o, err := order.NewOrder(kernel.NewUUID(), "user-1", []order.Item{item}, time.Now())
func NewOrder(id kernel.UUID, userID string, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owner of the order.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the order lines in creation order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target and refreshes UpdatedAt. It returns the
// status the order had before the change. completed -> completed is accepted.
func (o *Order) ChangeStatus(target Status, now time.Time) (Status, error) {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return "", err
	}

	return o.apply(next, now), nil
}

// Cancel moves the order to Cancelled and refreshes UpdatedAt. It returns the
// status the order had before cancellation.
func (o *Order) Cancel(now time.Time) (Status, error) {
	next, err := o.status.Cancel()
	if err != nil {
		return "", err
	}

	return o.apply(next, now), nil
}

// Clone returns a deep copy of the order. Mutating the copy never affects o.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) apply(next Status, now time.Time) Status {
	prev := o.status
	o.status = next

	now = now.UTC()
	if now.Before(o.createdAt) {
		now = o.createdAt
	}
	o.updatedAt = now

	return prev
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	o.items = slices.Clone(items)
	o.total = total
	return nil
}
