// Package event defines the domain events emitted by the order lifecycle.
package event

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// Type names a domain event. Values are part of the wire contract with brokers.
type Type string

const (
	TypeOrderCreated       Type = "order.created"
	TypeOrderStatusUpdated Type = "order.status_updated"
)

func (t Type) String() string {
	return string(t)
}

// Payload is the body of an event. Every payload belongs to a single order.
type Payload interface {
	AggregateID() string
}

// Event is an immutable entry of the domain event log.
type Event struct {
	ID        kernel.UUID `json:"id"`
	Type      Type        `json:"type"`
	Payload   Payload     `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// New stamps payload with a fresh id and the given timestamp.
func New(t Type, payload Payload, now time.Time) Event {
	return Event{
		ID:        kernel.NewUUID(),
		Type:      t,
		Payload:   payload,
		Timestamp: now.UTC(),
	}
}

// AggregateID returns the id of the order the event belongs to.
func (e Event) AggregateID() string {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.AggregateID()
}

type Item struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderCreated is emitted once per successfully created order.
type OrderCreated struct {
	OrderID string  `json:"orderId"`
	UserID  string  `json:"userId"`
	Total   float64 `json:"total"`
	Items   []Item  `json:"items"`
}

func NewOrderCreated(o *order.Order) OrderCreated {
	items := make([]Item, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, Item{
			Product:  it.Product(),
			Quantity: it.Quantity(),
			Price:    it.Price().InexactFloat64(),
		})
	}

	return OrderCreated{
		OrderID: o.ID().String(),
		UserID:  o.UserID(),
		Total:   o.Total().InexactFloat64(),
		Items:   items,
	}
}

func (p OrderCreated) AggregateID() string {
	return p.OrderID
}

// OrderStatusUpdated is emitted for every applied status change, cancellations included.
type OrderStatusUpdated struct {
	OrderID   string `json:"orderId"`
	UserID    string `json:"userId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

func NewOrderStatusUpdated(o *order.Order, oldStatus order.Status) OrderStatusUpdated {
	return OrderStatusUpdated{
		OrderID:   o.ID().String(),
		UserID:    o.UserID(),
		OldStatus: oldStatus.String(),
		NewStatus: o.Status().String(),
	}
}

func (p OrderStatusUpdated) AggregateID() string {
	return p.OrderID
}
