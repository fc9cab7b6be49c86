// Package kernel contains the shared value objects of the domain model.
//
// The kernel holds types that are meaningful across aggregates and carry no
// aggregate-specific behavior:
//
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: monetary amount in cents, used for all order totals
//
// Kernel types are immutable, validated on construction, and safe to share
// between goroutines.
package kernel
