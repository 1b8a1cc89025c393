package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	created ──┬──> in_work ──┬──> completed ──> completed (no-op re-assertion)
//	          │              │
//	          ├──────────────┼──> completed
//	          │              │
//	          └──────────────┴──> cancelled
//
// cancelled is terminal for every operation. completed is terminal except for the
// completed -> completed re-assertion, which is accepted and still counts as a change.
// Who may request a transition is decided by the access policy, not by Status.
type Status string

const (
	// Created is the initial status of every order.
	Created Status = "created"

	// InWork means the order is being fulfilled.
	InWork Status = "in_work"

	// Completed means the order was fulfilled.
	Completed Status = "completed"

	// Cancelled means the order was withdrawn by its owner or an admin.
	Cancelled Status = "cancelled"
)

// ParseStatus converts a raw value into one of the four known statuses.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// ParseTargetStatus converts a raw value into a status that may be requested through
// a status update: in_work, completed or cancelled. created is never a valid target.
func ParseTargetStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case InWork, Completed, Cancelled:
		return s, nil
	case Created:
	}
	return "", errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("invalid status %q, expected one of %s, %s, %s", raw, InWork, Completed, Cancelled),
	)
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	switch s {
	case Created, InWork, Completed, Cancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// RequiresAdmin reports whether moving an order into s is reserved to admins.
func (s Status) RequiresAdmin() bool {
	return s != Cancelled
}

// TransitionTo validates a status update from s to target and returns target.
//
// Rules:
//   - cancelled orders cannot be updated at all
//   - completed orders can only be re-asserted as completed
func (s Status) TransitionTo(target Status) (Status, error) {
	if _, err := ParseTargetStatus(string(target)); err != nil {
		return "", err
	}

	if s == Cancelled {
		return "", errs.NewInvalidStatusError(s.String(), target.String(), "Cannot update cancelled order")
	}

	if s == Completed && target != Completed {
		return "", errs.NewInvalidStatusError(s.String(), target.String(), "Cannot change status of completed order")
	}

	return target, nil
}

// Cancel validates a cancellation from s and returns Cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Cancelled:
		return "", errs.NewInvalidStatusError(s.String(), Cancelled.String(), "Order is already cancelled")
	case Completed:
		return "", errs.NewInvalidStatusError(s.String(), Cancelled.String(), "Cannot cancel completed order")
	case Created, InWork:
	}
	return Cancelled, nil
}
