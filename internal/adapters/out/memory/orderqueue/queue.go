// Package orderqueue provides the in-memory FIFO queue of pending order
// identifiers. The queue stores identifiers only; the order records
// themselves live in the order store.
package orderqueue

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Queue is an in-memory ports.OrderQueue.
//
// Queue is not internally synchronized; all access must go through a unit
// of work, which serializes operations.
type Queue struct {
	ids []kernel.OrderID
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an order identifier to the back of the queue.
func (q *Queue) Enqueue(_ context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.ids = append(q.ids, id)
	return nil
}

// Dequeue removes and returns the identifier at the front of the queue.
// Returns ports.ErrQueueEmpty when the queue has no elements.
func (q *Queue) Dequeue(_ context.Context) (kernel.OrderID, error) {
	if len(q.ids) == 0 {
		return kernel.OrderID{}, ports.ErrQueueEmpty
	}

	front := q.ids[0]
	q.ids = q.ids[1:]
	return front, nil
}

// PeekAll returns a non-destructive snapshot of the queue, front to back.
func (q *Queue) PeekAll(_ context.Context) ([]kernel.OrderID, error) {
	out := make([]kernel.OrderID, len(q.ids))
	copy(out, q.ids)
	return out, nil
}

// Size returns the number of queued identifiers.
func (q *Queue) Size(_ context.Context) (int, error) {
	return len(q.ids), nil
}
