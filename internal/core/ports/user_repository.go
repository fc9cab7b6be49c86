package ports

import (
	"context"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
)

// UserRepository defines the read contract for user entities. Users are
// provisioned outside the order flow; the order side only resolves them.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAllRiders retrieves every user holding the rider role, for the
	// admin shipping screen.
	GetAllRiders(ctx context.Context) ([]*user.User, error)
}
