package ports

import (
	"context"
	"time"
)

// Clock supplies the current time to operations that stamp state changes.
// Injecting it keeps handlers deterministic under test.
type Clock func() time.Time

// UnitOfWorkFactory creates a new UnitOfWork for each operation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the atomicity boundary of a single dispatch operation.
// Every operation — including reads — runs between Begin and Commit (or
// Rollback), so the queue, pool, and store mutations of one logical
// operation are applied as a unit: no driver can be observed absent from
// both the ordered structure and an in-flight assignment, and no order can
// be double-assigned. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin enters the critical section of an operation.
	Begin(ctx context.Context) error

	// Commit leaves the critical section, making the operation's state
	// changes visible to the next operation.
	// Returns an error if no operation is active.
	Commit(ctx context.Context) error

	// Rollback leaves the critical section without marking the operation
	// successful. Safe to call after Commit, where it is a no-op, which
	// allows the deferred-rollback idiom.
	Rollback(ctx context.Context) error

	// OrderStore returns the order store bound to this unit of work.
	OrderStore() OrderStore

	// OrderQueue returns the pending-order queue bound to this unit of work.
	OrderQueue() OrderQueue

	// DriverPool returns the driver pool bound to this unit of work.
	DriverPool() DriverPool
}
