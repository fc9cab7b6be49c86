package queries

import (
	"errors"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/guard"
)

var ErrGetRiderOrdersQueryIsNotConstructed = errors.New(
	"GetRiderOrdersQuery must be created via NewGetRiderOrdersQuery constructor",
)

// GetRiderOrdersQuery lists the orders assigned to a rider, newest first.
// Riders may only list their own assignments; admins may list anyone's.
type GetRiderOrdersQuery struct {
	riderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewGetRiderOrdersQuery creates a query for a rider's assignment list.
func NewGetRiderOrdersQuery(riderID kernel.UUID, actor order.Actor) (GetRiderOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderOrdersQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetRiderOrdersQuery{}, err
	}

	allowed := actor.Role() == user.RoleAdmin ||
		(actor.Role() == user.RoleRider && actor.ID().IsEqual(riderID))
	if !allowed {
		return GetRiderOrdersQuery{}, order.ErrNotAssignedRider
	}

	return GetRiderOrdersQuery{
		riderID: riderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRiderOrdersQueryIsNotConstructed if validation fails.
func (q GetRiderOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrdersQueryIsNotConstructed)
}

// RiderID returns the rider whose assignments are requested.
func (q GetRiderOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}
