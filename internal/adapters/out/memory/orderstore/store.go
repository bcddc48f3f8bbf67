// Package orderstore provides the in-memory implementation of the order
// store. It is the sole owner of every order record ever created: all other
// components hold identifiers, never direct references into the store's
// bookkeeping, and records are retained for the lifetime of the process.
package orderstore

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Store is an in-memory ports.OrderStore backed by a hash map with
// insertion-order and completion-order indexes.
//
// Store is not internally synchronized; all access must go through a unit
// of work, which serializes operations.
type Store struct {
	// orders holds every order ever created, keyed by identifier.
	orders map[string]*order.Order
	// placed records identifiers in placement order for deterministic reads.
	placed []kernel.OrderID
	// completed records identifiers in the order their deliveries finished.
	completed []kernel.OrderID
	// nextSeq is the sequence number of the next order identifier.
	nextSeq int
}

// NewStore creates an empty order store. Identifier allocation starts at ORD1.
func NewStore() *Store {
	return &Store{
		orders:  make(map[string]*order.Order),
		nextSeq: 1,
	}
}

// NextID allocates the next sequential order identifier.
func (s *Store) NextID(_ context.Context) (kernel.OrderID, error) {
	id, err := kernel.NewOrderID(s.nextSeq)
	if err != nil {
		return kernel.OrderID{}, err
	}

	s.nextSeq++
	return id, nil
}

// Add registers a new order. The order must be valid and its identifier must
// not already be registered.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := s.orders[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%s is already registered", key))
	}

	s.orders[key] = aggregate
	s.placed = append(s.placed, aggregate.ID())
	return nil
}

// Update records a state change of an existing order. When the order has
// reached Completed status, it is appended to the completion-order partition
// exactly once.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := s.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	if aggregate.Status() == order.Completed && !s.isRecordedCompleted(aggregate.ID()) {
		s.completed = append(s.completed, aggregate.ID())
	}
	return nil
}

// Get retrieves an order by its identifier.
func (s *Store) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	aggregate, exists := s.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return aggregate, nil
}

// GetAllActive returns all orders in Active status, in placement order.
func (s *Store) GetAllActive(_ context.Context) ([]*order.Order, error) {
	active := make([]*order.Order, 0)
	for _, id := range s.placed {
		if o := s.orders[id.String()]; o.Status() == order.Active {
			active = append(active, o)
		}
	}
	return active, nil
}

// GetAllCompleted returns all completed orders in completion order.
func (s *Store) GetAllCompleted(_ context.Context) ([]*order.Order, error) {
	completed := make([]*order.Order, 0, len(s.completed))
	for _, id := range s.completed {
		completed = append(completed, s.orders[id.String()])
	}
	return completed, nil
}

// CountByStatus returns the number of orders currently in the given status.
func (s *Store) CountByStatus(_ context.Context, status order.Status) (int, error) {
	count := 0
	for _, id := range s.placed {
		if s.orders[id.String()].Status() == status {
			count++
		}
	}
	return count, nil
}

// isRecordedCompleted reports whether the identifier is already in the
// completion partition.
func (s *Store) isRecordedCompleted(id kernel.OrderID) bool {
	for _, recorded := range s.completed {
		if recorded.IsEqual(id) {
			return true
		}
	}
	return false
}
