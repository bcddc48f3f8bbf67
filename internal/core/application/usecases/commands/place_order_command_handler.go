package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Allocates the next sequential order identifier, creates the order in
// Pending status, and enqueues it for assignment.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, time.Now)
//	cmd := NewPlaceOrderCommand("2 Oak Ave", []string{"Pizza"})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed is Pending and its id sits at the back of the FIFO queue
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	clock      ports.Clock
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory and a clock for the creation timestamp.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory, clock ports.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order placement command and returns the created
// order. Registration and enqueueing happen in one critical section so the
// queue invariant (every queued id exists in the store as Pending) holds at
// every observable point.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderStore := uow.OrderStore()
	orderQueue := uow.OrderQueue()

	orderID, err := orderStore.NextID(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(orderID, cmd.DeliveryAddress(), cmd.Items(), h.clock())
	if err != nil {
		return nil, err
	}

	if err = orderStore.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = orderQueue.Enqueue(ctx, placed.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
