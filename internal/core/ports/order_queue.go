package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrQueueEmpty is returned by OrderQueue.Dequeue when there are no pending
// orders. The application layer maps it to its NoPendingOrders business error.
var ErrQueueEmpty = errors.New("order queue is empty")

// OrderQueue is the FIFO sequence of order identifiers awaiting assignment.
// Membership in the queue means the order is Pending; removal means it has
// been dequeued for assignment consideration. The queue holds identifiers
// only, never order records.
type OrderQueue interface {
	// Enqueue appends an order identifier to the back of the queue.
	Enqueue(ctx context.Context, id kernel.OrderID) error

	// Dequeue removes and returns the identifier at the front of the queue.
	// Returns ErrQueueEmpty when the queue has no elements.
	Dequeue(ctx context.Context) (kernel.OrderID, error)

	// PeekAll returns a non-destructive snapshot of the queue, front to back.
	PeekAll(ctx context.Context) ([]kernel.OrderID, error)

	// Size returns the number of queued identifiers.
	Size(ctx context.Context) (int, error)
}
