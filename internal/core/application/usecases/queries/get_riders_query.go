package queries

import (
	"errors"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
	"fanstore/internal/core/domain/model/user"
	"fanstore/internal/pkg/errs"
	"fanstore/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery lists every user holding the rider role, for the admin
// shipping screen. Admin only.
type GetRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a query for the rider roster on behalf of an
// actor.
func NewGetRidersQuery(actor order.Actor) (GetRidersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetRidersQuery{}, err
	}
	if actor.Role() != user.RoleAdmin {
		return GetRidersQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetRidersQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRidersQueryIsNotConstructed if validation fails.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

// GetRidersQueryResponse is one rider of the roster.
type GetRidersQueryResponse struct {
	ID    kernel.UUID `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}
