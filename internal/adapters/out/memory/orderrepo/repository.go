// Package orderrepo is the volatile in-process order store.
package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned by Put for an id that is already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

var _ ports.OrderRepository = (*MemoryOrderRepository)(nil)

// MemoryOrderRepository keeps orders in a map guarded by a single mutex. Orders are
// cloned on the way in and out; insertion order is kept for listings.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	ids    []kernel.UUID
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Put stores a copy of a new order.
func (r *MemoryOrderRepository) Put(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, ok := r.orders[id]; ok {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, id.String())
	}

	r.orders[id] = aggregate.Clone()
	r.ids = append(r.ids, id)
	return nil
}

// Get returns a copy of the order with the given id.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return stored.Clone(), nil
}

// ListAll returns copies of every order in insertion order.
func (r *MemoryOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.orders[id].Clone())
	}
	return out, nil
}

// Replace runs mutate on a copy under the write lock and keeps the copy only
// if mutate succeeds.
func (r *MemoryOrderRepository) Replace(
	ctx context.Context,
	id kernel.UUID,
	mutate ports.OrderMutator,
) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	working := stored.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	if !working.ID().IsEqual(id) {
		return nil, fmt.Errorf("order %s changed identity during replace", id.String())
	}

	r.orders[id] = working
	return working.Clone(), nil
}

// Len returns the number of stored orders.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}
