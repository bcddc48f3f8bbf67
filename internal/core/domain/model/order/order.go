package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCreatedAtIsRequired is returned when attempting to create an order
	// without a creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order represents a customer's delivery request. It is the aggregate root
// that manages the order lifecycle from placement through assignment to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Delivery address and item list are opaque and immutable after creation
//   - A driver reference is set exactly once, on the Pending -> Active
//     transition, and is never cleared (historical record after completion)
//   - Status transitions follow the Status state machine
//   - Can only be created through the NewOrder constructor
//
// The delivery address and items are deliberately not validated: the place
// operation accepts any input and has no failure path.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// deliveryAddress is the opaque destination address
	deliveryAddress string

	// items is the ordered list of items, immutable after creation
	items []string

	// status represents the current state in the order lifecycle
	status Status

	// assignedDriverID references the assigned driver (nil while Pending)
	assignedDriverID *kernel.DriverID

	// createdAt is the timestamp captured when the order was placed
	createdAt time.Time

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with no driver assigned.
// This is the only way to create a valid Order.
//
// Parameters:
//   - id: unique identifier for the order (must be valid)
//   - deliveryAddress: destination address (any value accepted)
//   - items: item list (any value accepted, copied defensively)
//   - createdAt: placement timestamp (must not be the zero time)
//
// Returns the created order, or a validation error if the identifier or
// timestamp is invalid.
func NewOrder(id kernel.OrderID, deliveryAddress string, items []string, createdAt time.Time) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		status:          Pending,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// DeliveryAddress returns the destination address of the order.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order's item list.
func (o *Order) Items() []string {
	out := make([]string, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedDriver returns the identifier of the assigned driver.
// Returns nil while the order is Pending; once set it is never cleared,
// even after completion.
func (o *Order) AssignedDriver() *kernel.DriverID {
	if o.assignedDriverID == nil {
		return nil
	}
	id := *o.assignedDriverID
	return &id
}

// CreatedAt returns the timestamp captured when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign assigns the order to a driver and moves it to Active status.
//
// Business rules:
//   - The driver identifier must be valid
//   - The order must be Pending; an order keeps its first driver and
//     cannot be reassigned
//
// On success the order's status becomes Active and AssignedDriver returns
// the driver's identifier. On failure the order is left unchanged.
func (o *Order) Assign(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedDriverID = &driverID
	return nil
}

// Complete marks the order as delivered.
//
// Business rules:
//   - The order must be Active
//   - Completed is a final state with no further transitions
//
// Returns ErrOrderAlreadyCompleted or ErrOrderNotYetAssigned when the order
// is in the wrong state; the order is left unchanged in either case.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems stores a defensive copy of the item list.
// This is a private method used only during construction.
func (o *Order) setItems(items []string) error {
	o.items = make([]string, len(items))
	copy(o.items, items)
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
