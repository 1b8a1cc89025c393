// Package order implements the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding owner, immutable items, fixed total and status
//   - Item: a validated order line priced with decimal arithmetic
//   - Status: the lifecycle state with its transition guards
//
// Key business rules:
//   - An order has at least one item, and its total is computed once at creation
//   - created and in_work orders may be moved forward or cancelled
//   - completed orders only accept completed again; cancelled orders accept nothing
//
// Authorization (who may request which transition) lives in the services package.
package order
