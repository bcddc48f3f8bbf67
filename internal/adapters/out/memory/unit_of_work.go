// Package memory provides the in-memory implementation of the Unit of Work
// pattern. There is no database here: the service does not persist state
// across restarts, so the transaction boundary becomes a process-wide
// critical section instead.
//
// Usage pattern:
//
//	factory := memory.NewUnitOfWorkFactory(store, queue, pool)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// Perform store/queue/pool operations
//
//	return uow.Commit(ctx)
//
// Concurrency: all unit of work instances created by one factory share a
// single mutex, so dequeue+extract+mutate+reinsert inside one operation is
// one critical section. This is what preserves the invariants that no driver
// is lost between the roster's ordered structure and an in-flight
// assignment, and that no order is double-assigned.
//
// Rollback does not undo mutations. Handlers uphold the no-partial-failure
// contract by checking every failure condition before the first mutation.
package memory

import (
	"context"
	"errors"
	"sync"

	"dispatch/internal/adapters/out/memory/driverpool"
	"dispatch/internal/adapters/out/memory/orderqueue"
	"dispatch/internal/adapters/out/memory/orderstore"
	"dispatch/internal/core/ports"
)

// ErrNoActiveOperation is returned when Commit is called outside a
// Begin/Commit cycle.
var ErrNoActiveOperation = errors.New("no active operation")

// UnitOfWorkFactory creates UnitOfWork instances over one shared set of
// in-memory stores. Every business operation gets a fresh instance; all
// instances serialize on the same mutex.
type UnitOfWorkFactory struct {
	mu     *sync.Mutex
	orders *orderstore.Store
	queue  *orderqueue.Queue
	pool   *driverpool.Pool
}

// NewUnitOfWorkFactory creates a factory over the given stores.
func NewUnitOfWorkFactory(
	orders *orderstore.Store,
	queue *orderqueue.Queue,
	pool *driverpool.Pool,
) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		mu:     &sync.Mutex{},
		orders: orders,
		queue:  queue,
		pool:   pool,
	}
}

// Create returns a fresh unit of work bound to the factory's stores.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		mu:     f.mu,
		orders: f.orders,
		queue:  f.queue,
		pool:   f.pool,
	}
}

// UnitOfWork is the mutex-backed ports.UnitOfWork. It is intended for a
// single operation: Begin, use the stores, then Commit or Rollback exactly
// once.
type UnitOfWork struct {
	mu     *sync.Mutex
	active bool

	orders *orderstore.Store
	queue  *orderqueue.Queue
	pool   *driverpool.Pool
}

// Begin enters the critical section shared by all operations.
func (u *UnitOfWork) Begin(_ context.Context) error {
	u.mu.Lock()
	u.active = true
	return nil
}

// Commit leaves the critical section. Returns ErrNoActiveOperation when
// called without a matching Begin.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveOperation
	}

	u.active = false
	u.mu.Unlock()
	return nil
}

// Rollback leaves the critical section if it is still held. Calling it
// after Commit is a no-op, allowing the deferred-rollback idiom.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.active = false
	u.mu.Unlock()
	return nil
}

// OrderStore returns the order store bound to this unit of work.
func (u *UnitOfWork) OrderStore() ports.OrderStore {
	return u.orders
}

// OrderQueue returns the pending-order queue bound to this unit of work.
func (u *UnitOfWork) OrderQueue() ports.OrderQueue {
	return u.queue
}

// DriverPool returns the driver pool bound to this unit of work.
func (u *UnitOfWork) DriverPool() ports.DriverPool {
	return u.pool
}
