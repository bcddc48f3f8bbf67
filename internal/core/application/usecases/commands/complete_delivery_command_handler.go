package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles delivery completion. Marks the
// order Completed and makes the assigned driver available immediately by
// resetting its nextAvailableAt to now.
//
// The order lookup can fail with errs.ErrObjectNotFound, and the status
// transition surfaces order.ErrOrderAlreadyCompleted (informational; nothing
// changes, including driver availability) and order.ErrOrderNotYetAssigned.
// Both checks happen before any mutation.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory, time.Now)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown order")
//	case errors.Is(err, order.ErrOrderAlreadyCompleted):
//	    log.Println("Order was already completed")
//	case errors.Is(err, order.ErrOrderNotYetAssigned):
//	    log.Println("Order has no driver yet")
//	case err != nil:
//	    log.Printf("Completion failed: %v", err)
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory CompletionUoWFactory
	clock      ports.Clock
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion. Requires a CompletionUoWFactory and a clock for the driver's
// new availability time.
func NewCompleteDeliveryCommandHandler(uowFactory CompletionUoWFactory, clock ports.Clock) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the completion command. The order's transition and the
// driver's availability reset are applied in one critical section; the
// completed order joins the status-filtered completed partition of the
// store, the record itself is never moved or destroyed.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderStore := uow.OrderStore()
	driverPool := uow.DriverPool()

	completed, err := orderStore.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = completed.Complete(); err != nil {
		return err
	}

	driverID := completed.AssignedDriver()
	if driverID == nil {
		return fmt.Errorf("completed order %s has no assigned driver", completed.ID())
	}

	if err = driverPool.UpdateAvailability(ctx, *driverID, h.clock()); err != nil {
		return err
	}

	if err = orderStore.Update(ctx, completed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
