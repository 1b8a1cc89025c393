// Package commands contains the operations that change order state.
// Every command is built through its constructor, which rejects anonymous callers,
// and is executed by a handler that validates it first.
package commands

import (
	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"
)

// AccessPolicy decides whether a caller may act on an order.
type AccessPolicy interface {
	Authorize(ic identity.Context, o *order.Order, action services.Action) error
	AuthorizeTransition(ic identity.Context, o *order.Order, target order.Status) error
}

// ReasonUserIDNotFound is reported when a command is issued without a caller.
const ReasonUserIDNotFound = "User ID not found"

func requireCaller(ic identity.Context) error {
	if !ic.IsAuthenticated() {
		return errs.NewUnauthorizedError(ReasonUserIDNotFound)
	}
	return nil
}
