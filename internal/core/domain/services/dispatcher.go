package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// DefaultDeliveryDuration is the delivery window used when no duration is
// configured: a driver assigned at time T is busy until T + 30 minutes.
const DefaultDeliveryDuration = 30 * time.Minute

// Dispatcher is a domain service responsible for coupling a pending order
// with the driver chosen for it.
//
// Key responsibilities:
//   - Validating both aggregates before any mutation
//   - Computing the delivery deadline from the configured duration
//   - Applying the order and driver state changes as a unit
//
// Business rules:
//   - The order must be Pending (an order is assigned exactly once)
//   - The driver's busy window always equals the delivery duration
//   - Nothing is mutated when validation fails
//
// Example usage:
//
//	dispatcher, _ := NewDispatcher(30 * time.Minute)
//	deliveryTime, err := dispatcher.Dispatch(order, driver, time.Now())
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order is Active and driver is busy until deliveryTime
type Dispatcher struct {
	deliveryDuration time.Duration
}

// NewDispatcher creates a Dispatcher with the given fixed delivery duration.
// The duration must be positive.
func NewDispatcher(deliveryDuration time.Duration) (Dispatcher, error) {
	if deliveryDuration <= 0 {
		return Dispatcher{}, errs.NewValueIsInvalidErrorWithCause("delivery duration",
			fmt.Errorf("%s is not greater than 0", deliveryDuration))
	}

	return Dispatcher{deliveryDuration: deliveryDuration}, nil
}

// DeliveryDuration returns the fixed delivery duration used for every
// assignment.
func (d Dispatcher) DeliveryDuration() time.Duration {
	return d.deliveryDuration
}

// Dispatch assigns the order to the driver and marks the driver busy until
// now + the delivery duration.
//
// Parameters:
//   - o: the order to assign (must be valid and Pending)
//   - drv: the driver extracted from the pool (must be valid)
//   - now: the moment of the assignment
//
// Returns the computed delivery time. When an error is returned, neither
// aggregate has been mutated.
func (d Dispatcher) Dispatch(o *order.Order, drv *driver.Driver, now time.Time) (time.Time, error) {
	if err := o.Validate(); err != nil {
		return time.Time{}, err
	}

	if err := drv.Validate(); err != nil {
		return time.Time{}, err
	}

	deliveryTime := now.Add(d.deliveryDuration)

	if err := o.Assign(drv.ID()); err != nil {
		return time.Time{}, err
	}

	if err := drv.SetNextAvailableAt(deliveryTime); err != nil {
		return time.Time{}, err
	}

	return deliveryTime, nil
}
