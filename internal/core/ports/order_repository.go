package ports

import (
	"context"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists a status transition with a conditional write:
	// the row is updated only while its stored status still equals
	// expectedPrior. If another request moved the order first, no row
	// matches and *errs.ConcurrentModificationError is returned without
	// touching storage.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expectedPrior order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
