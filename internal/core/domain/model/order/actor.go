package order

import (
	"errors"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies who is requesting a transition: a user id together with
// the role it acts under. The aggregate uses the role against the transition
// table and the id for ownership and rider-assignment checks.
//
// Actor is a value object; it carries no authentication state. The API layer
// is responsible for having established the identity before constructing one.
type Actor struct {
	id   kernel.UUID
	role user.Role

	isConstructed bool
}

// NewActor creates an Actor with a validated id and role.
func NewActor(id kernel.UUID, role user.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor acts under.
func (a Actor) Role() user.Role {
	return a.role
}
