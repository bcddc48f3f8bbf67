package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the current state of a single order: its status,
// destination, items, and the assigned driver once one exists.
//
// Example:
//
//	orderID, _ := kernel.OrderIDFromString("ORD3")
//	query, err := NewTrackOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("No such order")
//	}
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track the given order.
// The identifier must be valid.
func NewTrackOrderQuery(orderID kernel.OrderID) (TrackOrderQuery, error) {
	q := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return TrackOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to track.
func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *TrackOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// TrackOrderQueryResponse is the read model for a single tracked order.
// Driver fields are empty strings while the order is still Pending; once an
// order has been assigned they stay populated forever, including after
// completion.
type TrackOrderQueryResponse struct {
	ID              string
	Status          string
	DeliveryAddress string
	Items           []string
	DriverID        string
	DriverName      string
	// DriverNextAvailableAt is the assigned driver's current availability
	// time; for an active order this is the expected delivery time. Zero
	// while the order is Pending.
	DriverNextAvailableAt time.Time
	CreatedAt             time.Time
}
