package services

import (
	"fmt"
	"slices"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Action is an operation a caller may perform on an order.
type Action string

const (
	// ActionRead covers viewing a single order and updating its status to cancelled.
	ActionRead Action = "read"

	// ActionCancel covers the dedicated cancel operation.
	ActionCancel Action = "cancel"

	// ActionAdvance covers moving an order to in_work or completed.
	ActionAdvance Action = "advance"
)

// SubjectOwner is granted to a caller for the orders they own.
const SubjectOwner = "owner"

const orderObject = "order"

const (
	ReasonAccessDenied = "Access denied"
	ReasonAdminOnly    = "Only admin can update status to in_work or completed"
)

const accessModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var defaultPolicies = [][]string{
	{SubjectOwner, orderObject, string(ActionRead)},
	{SubjectOwner, orderObject, string(ActionCancel)},
	{identity.RoleAdmin, orderObject, string(ActionRead)},
	{identity.RoleAdmin, orderObject, string(ActionCancel)},
	{identity.RoleAdmin, orderObject, string(ActionAdvance)},
}

// AccessPolicy decides whether a caller may act on an order.
//
// A caller's subjects are their roles plus "owner" when they own the order; access is
// granted when any subject holds a policy for the action.
type AccessPolicy struct {
	enforcer *casbin.SyncedEnforcer
}

// NewAccessPolicy builds the policy with the built-in rules:
// owners and admins may read and cancel, only admins may advance.
func NewAccessPolicy() (*AccessPolicy, error) {
	m, err := model.NewModelFromString(accessModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load access model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize access enforcer: %w", err)
	}

	if _, err = enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("failed to load access policies: %w", err)
	}

	return &AccessPolicy{enforcer: enforcer}, nil
}

// Allowed reports whether ic may perform action on o.
func (p *AccessPolicy) Allowed(ic identity.Context, o *order.Order, action Action) (bool, error) {
	for _, sub := range subjects(ic, o) {
		ok, err := p.enforcer.Enforce(sub, orderObject, string(action))
		if err != nil {
			return false, fmt.Errorf("access check failed: %w", err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Authorize returns a ForbiddenError when ic may not perform action on o.
func (p *AccessPolicy) Authorize(ic identity.Context, o *order.Order, action Action) error {
	ok, err := p.Allowed(ic, o, action)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	reason := ReasonAccessDenied
	if action == ActionAdvance {
		reason = ReasonAdminOnly
	}
	return errs.NewForbiddenError(string(action), reason)
}

// AuthorizeTransition checks that ic may move o to target. Cancelling requires read
// access; any other target additionally requires the advance permission.
func (p *AccessPolicy) AuthorizeTransition(ic identity.Context, o *order.Order, target order.Status) error {
	if !target.RequiresAdmin() {
		return nil
	}
	return p.Authorize(ic, o, ActionAdvance)
}

// ScopeUserFilter returns the owner filter a listing by ic must use. Admins may
// narrow to any requested user or see every order; everyone else sees only their own.
func ScopeUserFilter(ic identity.Context, requested string) string {
	if ic.IsAdmin() {
		return requested
	}
	return ic.UserID()
}

// subjects never lets a caller claim "owner" through their role list.
func subjects(ic identity.Context, o *order.Order) []string {
	subs := slices.DeleteFunc(ic.Roles(), func(r string) bool { return r == SubjectOwner })
	if o != nil && ic.Owns(o.UserID()) {
		subs = append(subs, SubjectOwner)
	}
	return subs
}
