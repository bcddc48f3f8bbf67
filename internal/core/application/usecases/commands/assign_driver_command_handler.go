package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

var (
	// ErrNoPendingOrders is returned when the FIFO queue holds no orders.
	ErrNoPendingOrders = errors.New("no pending orders")
	// ErrNoDriversAvailable is returned when the driver pool's ordered
	// structure holds no drivers.
	ErrNoDriversAvailable = errors.New("no drivers available")
)

// AssignDriverResult is the outcome of a successful assignment.
type AssignDriverResult struct {
	// Order is the assigned order, now in Active status.
	Order *order.Order
	// Driver is the chosen driver, now busy until DeliveryTime.
	Driver *driver.Driver
	// DeliveryTime is the computed delivery deadline.
	DeliveryTime time.Time
}

// AssignDriverCommandHandler orchestrates the assignment process: the oldest
// pending order is matched with the driver whose nextAvailableAt is
// smallest. The queue, pool, and store updates happen in one critical
// section so no driver is lost and no order is double-assigned.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, dispatcher, time.Now)
//	result, err := handler.Handle(ctx, NewAssignDriverCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("Queue is empty")
//	case errors.Is(err, ErrNoDriversAvailable):
//	    log.Println("Pool is empty")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Order %s assigned to %s", result.Order.ID(), result.Driver.Name())
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	clock      ports.Clock
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// Requires a UoWFactory spanning all three stores, the dispatcher domain
// service carrying the delivery duration, and a clock.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.Dispatcher,
	clock ports.Clock,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Handle processes the assignment command.
//
// The two emptiness conditions are checked independently so the caller can
// distinguish the reason: an empty queue yields ErrNoPendingOrders and an
// empty pool yields ErrNoDriversAvailable, in that order, before anything
// is mutated. On any later failure the extracted driver is reinserted
// before returning, so a failed assignment never loses a driver.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (AssignDriverResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderStore := uow.OrderStore()
	orderQueue := uow.OrderQueue()
	driverPool := uow.DriverPool()

	queued, err := orderQueue.Size(ctx)
	if err != nil {
		return AssignDriverResult{}, err
	}
	if queued == 0 {
		return AssignDriverResult{}, ErrNoPendingOrders
	}

	chosen, err := driverPool.ExtractEarliest(ctx)
	if errors.Is(err, ports.ErrPoolEmpty) {
		return AssignDriverResult{}, ErrNoDriversAvailable
	}
	if err != nil {
		return AssignDriverResult{}, err
	}

	orderID, err := orderQueue.Dequeue(ctx)
	if err != nil {
		_ = driverPool.Reinsert(ctx, chosen)
		return AssignDriverResult{}, err
	}

	assigned, err := orderStore.Get(ctx, orderID)
	if err != nil {
		_ = driverPool.Reinsert(ctx, chosen)
		return AssignDriverResult{}, fmt.Errorf("queued order %s is not in the store: %w", orderID, err)
	}

	deliveryTime, err := h.dispatcher.Dispatch(assigned, chosen, h.clock())
	if err != nil {
		_ = driverPool.Reinsert(ctx, chosen)
		return AssignDriverResult{}, err
	}

	if err = orderStore.Update(ctx, assigned); err != nil {
		return AssignDriverResult{}, err
	}

	if err = driverPool.Reinsert(ctx, chosen); err != nil {
		return AssignDriverResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDriverResult{}, err
	}

	return AssignDriverResult{
		Order:        assigned,
		Driver:       chosen,
		DeliveryTime: deliveryTime,
	}, nil
}
