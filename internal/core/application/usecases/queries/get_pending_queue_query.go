package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetPendingQueueQueryIsNotConstructed = errors.New(
	"GetPendingQueueQuery must be created via NewGetPendingQueueQuery constructor",
)

// GetPendingQueueQuery retrieves the identifiers of all orders awaiting
// assignment, in the exact order they will be assigned.
//
// Example:
//
//	query := NewGetPendingQueueQuery()
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if response.Count > 0 {
//	    fmt.Printf("Next order up: %s\n", response.OrderIDs[0])
//	}
type GetPendingQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingQueueQuery creates a query for the pending-order queue.
func NewGetPendingQueueQuery() GetPendingQueueQuery {
	return GetPendingQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingQueueQueryIsNotConstructed if validation fails.
func (q GetPendingQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingQueueQueryIsNotConstructed)
}

// GetPendingQueueQueryResponse is the read model for the pending queue.
// OrderIDs runs front to back: the first element is the next order to be
// assigned. Count always equals len(OrderIDs).
type GetPendingQueueQueryResponse struct {
	OrderIDs []string
	Count    int
}
