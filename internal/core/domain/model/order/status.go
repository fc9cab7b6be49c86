package order

import (
	"fmt"

	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──> paid ──> shipped ──┬──> delivered
//	   │          │                └──> undelivered
//	   └──────────┴──> cancelled
//
// delivered, undelivered and cancelled are terminal: no transition
// leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout: the order exists
	// but payment has not been confirmed.
	StatusPending

	// StatusPaid indicates the customer completed payment.
	StatusPaid

	// StatusShipped indicates an admin handed the order to a rider.
	// The rider assignment happens atomically with this transition.
	StatusShipped

	// StatusDelivered indicates the assigned rider delivered the order.
	// Terminal.
	StatusDelivered

	// StatusUndelivered indicates the assigned rider could not deliver
	// the order. Terminal.
	StatusUndelivered

	// StatusCancelled indicates the customer cancelled before shipping.
	// Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusPending:     "pending",
		StatusPaid:        "paid",
		StatusShipped:     "shipped",
		StatusDelivered:   "delivered",
		StatusUndelivered: "undelivered",
		StatusCancelled:   "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:     "pending",
		StatusPaid:        "paid",
		StatusShipped:     "shipped",
		StatusDelivered:   "delivered",
		StatusUndelivered: "undelivered",
		StatusCancelled:   "cancelled",
	}
}

// transition is a (from, to) pair used as the key of the transition table.
type transition struct {
	from Status
	to   Status
}

// allowedTransitions is the single source of truth for which role may move an
// order between which statuses. Customer actions additionally require
// ownership and rider actions require the assigned-rider identity; those
// checks live on the aggregate because they need more than the status.
func allowedTransitions() map[transition][]user.Role {
	return map[transition][]user.Role{
		{StatusPending, StatusPaid}:        {user.RoleCustomer},
		{StatusPending, StatusCancelled}:   {user.RoleCustomer},
		{StatusPaid, StatusCancelled}:      {user.RoleCustomer},
		{StatusPaid, StatusShipped}:        {user.RoleAdmin},
		{StatusShipped, StatusDelivered}:   {user.RoleRider},
		{StatusShipped, StatusUndelivered}: {user.RoleRider},
	}
}

// StatusFromString parses a status from its persisted/API string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, paid, shipped, delivered, undelivered,
// cancelled. StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusUndelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// TransitionTo decides whether the given role may move an order from the
// current status to the target status. This is the pure state machine guard:
// it consults only the transition table and performs no I/O.
//
// Any (from, to, role) combination not present in the table is rejected with
// *InvalidTransitionError, including requests that target the current status
// itself. Rejecting same-state requests keeps the operation safe to retry:
// a duplicate of an already-applied transition can never re-fire
// notifications.
func (s Status) TransitionTo(to Status, role user.Role) error {
	if err := to.Validate(); err != nil {
		return err
	}

	roles, ok := allowedTransitions()[transition{from: s, to: to}]
	if !ok {
		return NewInvalidTransitionError(s, to)
	}

	for _, allowed := range roles {
		if allowed == role {
			return nil
		}
	}

	return NewInvalidTransitionError(s, to)
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment. A rider is set at the shipped transition and never
// cleared, so an order has a rider exactly when its status is shipped,
// delivered or undelivered.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	riderStatuses := s == StatusShipped || s == StatusDelivered || s == StatusUndelivered

	if hasRider && !riderStatuses {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	if !hasRider && riderStatuses {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	return nil
}
