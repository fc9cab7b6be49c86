// Package user contains the User entity and the Role enumeration.
//
// Account registration, authentication, and profile management live outside
// this subsystem; the order lifecycle only needs to know who an actor is,
// which role they hold, and where to email them.
package user

import (
	"errors"
	"strings"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents an account known to the order subsystem: the customer who
// owns an order, the admin who ships it, or the rider who delivers it.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and an email containing "@"
//   - Must hold one of the valid roles
//   - Can only be created through the NewUser constructor
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID

	// name is the display name used in notifications
	name string

	// email receives order status notifications
	email string

	// role determines which order transitions the user may request
	role Role

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a new User instance with validation. This is the only way
// to create a valid User.
func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
// Call it when reconstructing users from persistence.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsRider reports whether the user holds the rider role.
func (u *User) IsRider() bool {
	return u.role == RoleRider
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// RestoreUser reconstructs a User from persisted state without re-running
// creation-time business rules. Field validity is still enforced.
func RestoreUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	return NewUser(id, name, email, role)
}
