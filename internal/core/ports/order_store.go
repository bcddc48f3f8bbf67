// Package ports defines the contracts between the application core and its
// adapters. The interfaces here establish how the dispatch operations reach
// the order store, the pending-order queue, and the driver pool, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderStore is the single source of truth for every order ever created.
// Orders are registered once and retained for the lifetime of the process;
// there is no delete operation by design.
type OrderStore interface {
	// NextID allocates the next sequential order identifier.
	// Identifiers are never reused.
	NextID(ctx context.Context) (kernel.OrderID, error)

	// Add registers a new order aggregate.
	// The order must be valid and not already exist in the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update records a state change of an existing order, keeping the
	// store's status partitions in sync with the aggregate. The order must
	// already exist in the store.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the id is unknown.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllActive retrieves all orders currently assigned to drivers,
	// in order placement order for determinism.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllCompleted retrieves all completed orders in completion order.
	GetAllCompleted(ctx context.Context) ([]*order.Order, error)

	// CountByStatus returns the number of orders currently in the given status.
	CountByStatus(ctx context.Context, status order.Status) (int, error)
}
