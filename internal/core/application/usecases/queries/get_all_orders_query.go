package queries

import (
	"errors"

	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
	"fanstore/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists every order in the store, newest first, for the
// admin worksheet. Admin only.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order listing on behalf
// of an actor.
func NewGetAllOrdersQuery(actor order.Actor) (GetAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}
	if actor.Role() != user.RoleAdmin {
		return GetAllOrdersQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
