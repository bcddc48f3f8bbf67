// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Unlike classic CQRS read paths that bypass the domain, these handlers read
// the same in-process stores the commands write, inside the same critical
// section, so every query observes a consistent snapshot.
package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide the consistency boundary for query
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

	// TrackingUoW spans the stores read by order tracking:
	// the order store and the driver pool.
	TrackingUoW interface {
		TxManager
		OrderStoreFactory
		DriverPoolFactory
	}

	// TrackingUoWFactory creates tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// QueueUoW spans the single store read by queue inspection.
	QueueUoW interface {
		TxManager
		OrderQueueFactory
	}

	// QueueUoWFactory creates queue inspection unit of work instances.
	QueueUoWFactory interface {
		Create() QueueUoW
	}

	// UoW spans all three stores. Used by the summary, which reads the
	// queue, the store, and the pool as one consistent snapshot.
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
