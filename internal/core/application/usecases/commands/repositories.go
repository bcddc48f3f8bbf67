// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// critical-section management, and store updates.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide the atomicity boundary for command
// handlers. Each handler depends only on the composite its operation needs.
type (
	// TxManager handles the critical-section lifecycle of one operation.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderStoreFactory provides access to the order store within an operation.
	OrderStoreFactory interface {
		OrderStore() ports.OrderStore
	}

	// OrderQueueFactory provides access to the pending-order queue within an operation.
	OrderQueueFactory interface {
		OrderQueue() ports.OrderQueue
	}

	// DriverPoolFactory provides access to the driver pool within an operation.
	DriverPoolFactory interface {
		DriverPool() ports.DriverPool
	}

	// PlacementUoW manages the stores touched by order placement:
	// the order store and the pending-order queue.
	PlacementUoW interface {
		TxManager
		OrderStoreFactory
		OrderQueueFactory
	}

	// PlacementUoWFactory creates placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// CompletionUoW manages the stores touched by delivery completion:
	// the order store and the driver pool.
	CompletionUoW interface {
		TxManager
		OrderStoreFactory
		DriverPoolFactory
	}

	// CompletionUoWFactory creates completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}

	// UoW manages all three stores. Used by driver assignment, which couples
	// the queue, the pool, and the store in one critical section.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   queue := uow.OrderQueue()
	//   pool := uow.DriverPool()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderStoreFactory
		OrderQueueFactory
		DriverPoolFactory
	}

	// UoWFactory creates unit of work instances spanning all three stores.
	UoWFactory interface {
		Create() UoW
	}
)
