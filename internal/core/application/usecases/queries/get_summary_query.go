package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetSummaryQueryIsNotConstructed = errors.New(
	"GetSummaryQuery must be created via NewGetSummaryQuery constructor",
)

// recentCompletedLimit caps how many completed deliveries the summary lists
// individually; older ones are folded into OlderCompletedCount.
const recentCompletedLimit = 5

// GetSummaryQuery retrieves an operational snapshot of the whole dispatch
// system: queued orders, deliveries in progress, recently completed
// deliveries, and every driver's availability.
//
// Example:
//
//	query := NewGetSummaryQuery()
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build summary: %w", err)
//	}
//	fmt.Printf("%d orders waiting for a driver\n", summary.PendingCount)
type GetSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryQuery creates a query for the system summary.
// This is a parameterless query that always covers the whole system.
func NewGetSummaryQuery() GetSummaryQuery {
	return GetSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSummaryQueryIsNotConstructed if validation fails.
func (q GetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryQueryIsNotConstructed)
}

// PendingOrderSummary describes one queued order awaiting assignment.
type PendingOrderSummary struct {
	ID              string
	DeliveryAddress string
	ItemCount       int
}

// ActiveOrderSummary describes one delivery in progress.
type ActiveOrderSummary struct {
	ID              string
	DeliveryAddress string
	DriverID        string
	DriverName      string
}

// CompletedOrderSummary describes one finished delivery.
type CompletedOrderSummary struct {
	ID              string
	DeliveryAddress string
	DriverID        string
}

// DriverSummary describes one roster entry and its availability.
type DriverSummary struct {
	ID              string
	Name            string
	Available       bool
	NextAvailableAt time.Time
}

// GetSummaryQueryResponse is the read model for the system summary.
//
// PendingOrders lists queued orders front to back, so the first entry is the
// next order to be assigned. RecentCompleted lists the most recently
// completed deliveries, newest first, capped at recentCompletedLimit;
// OlderCompletedCount says how many more completed deliveries exist beyond
// the cap. Drivers lists the full roster in roster order.
type GetSummaryQueryResponse struct {
	PendingOrders   []PendingOrderSummary
	ActiveOrders    []ActiveOrderSummary
	RecentCompleted []CompletedOrderSummary

	OlderCompletedCount int

	Drivers []DriverSummary

	PendingCount   int
	ActiveCount    int
	CompletedCount int
}
