package order

import (
	"errors"
	"fmt"

	"fanstore/internal/core/domain/model/kernel"
)

// Sentinel errors for the transition preconditions that go beyond the pure
// status table. The HTTP adapter dispatches on these with errors.Is/As.
var (
	// ErrInvalidTransition classifies every rejection made by the transition
	// table, including same-state requests and anything leaving a terminal
	// status.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrInvalidRider classifies a ship request whose rider id does not
	// resolve to a user holding the rider role.
	ErrInvalidRider = errors.New("assigned user is not a rider")

	// ErrRiderRequired is returned when an admin ships an order without
	// supplying a rider id.
	ErrRiderRequired = errors.New("a rider must be assigned when shipping an order")

	// ErrNotAssignedRider is returned when a rider reports a delivery outcome
	// for an order assigned to someone else (or to no one).
	ErrNotAssignedRider = errors.New("order is not assigned to the requesting rider")

	// ErrNotOrderOwner is returned when a customer acts on an order owned by
	// another customer.
	ErrNotOrderOwner = errors.New("order does not belong to the requesting customer")
)

// InvalidTransitionError carries the current and requested status of a
// rejected transition for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// status pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidRiderError names the user id that failed rider validation during a
// ship transition.
type InvalidRiderError struct {
	RiderID kernel.UUID
}

// NewInvalidRiderError creates an InvalidRiderError for the given user id.
func NewInvalidRiderError(riderID kernel.UUID) *InvalidRiderError {
	return &InvalidRiderError{RiderID: riderID}
}

func (e *InvalidRiderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRider, e.RiderID)
}

func (e *InvalidRiderError) Unwrap() error {
	return ErrInvalidRider
}
