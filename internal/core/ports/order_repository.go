// Package ports defines the contracts between the order core and its adapters.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderMutator changes an order in place. Returning an error aborts the change.
type OrderMutator func(o *order.Order) error

// OrderRepository defines the storage contract for order aggregates.
// Every call is atomic and works on copies: callers never alias stored state.
type OrderRepository interface {
	// Put stores a new order. It fails if an order with the same id exists.
	Put(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListAll returns every order in insertion order.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// Replace runs mutate against a copy of the stored order inside the repository's
	// critical section and stores the copy only when mutate succeeds.
	//
	// Example:
	//   updated, err := repo.Replace(ctx, id, func(o *order.Order) error {
	//       _, err := o.Cancel(time.Now())
	//       return err
	//   })
	Replace(ctx context.Context, id kernel.UUID, mutate OrderMutator) (*order.Order, error)
}
