package queries

import (
	"context"
)

// GetPendingQueueQueryHandler exposes a non-destructive view of the FIFO
// queue. The snapshot and the count are taken in the same critical section,
// so they always agree.
type GetPendingQueueQueryHandler struct {
	uowFactory QueueUoWFactory
}

// NewGetPendingQueueQueryHandler creates a handler for queue inspection
// queries.
func NewGetPendingQueueQueryHandler(uowFactory QueueUoWFactory) GetPendingQueueQueryHandler {
	return GetPendingQueueQueryHandler{uowFactory: uowFactory}
}

// Handle executes the queue inspection query.
func (h GetPendingQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPendingQueueQuery,
) (GetPendingQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingQueueQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetPendingQueueQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	queued, err := uow.OrderQueue().PeekAll(ctx)
	if err != nil {
		return GetPendingQueueQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GetPendingQueueQueryResponse{}, err
	}

	response := GetPendingQueueQueryResponse{
		OrderIDs: make([]string, 0, len(queued)),
		Count:    len(queued),
	}
	for _, id := range queued {
		response.OrderIDs = append(response.OrderIDs, id.String())
	}

	return response, nil
}
