package queries

import (
	"context"
	"fmt"

	"dispatch/internal/core/ports"
)

// GetSummaryQueryHandler assembles the operational snapshot from the three
// stores inside one critical section, so the queue, the order partitions,
// and the roster are mutually consistent.
//
// Example:
//
//	handler := NewGetSummaryQueryHandler(uowFactory, time.Now)
//	summary, err := handler.Handle(ctx, NewGetSummaryQuery())
//	if err != nil {
//	    log.Printf("Failed to build summary: %v", err)
//	    return err
//	}
//	fmt.Printf("%d active deliveries\n", summary.ActiveCount)
type GetSummaryQueryHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewGetSummaryQueryHandler creates a handler for summary queries.
// The clock drives each driver's Available flag.
func NewGetSummaryQueryHandler(uowFactory UoWFactory, clock ports.Clock) GetSummaryQueryHandler {
	return GetSummaryQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle executes the summary query.
func (h GetSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSummaryQuery,
) (GetSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var response GetSummaryQueryResponse

	if err := h.collectPending(ctx, uow, &response); err != nil {
		return GetSummaryQueryResponse{}, err
	}
	if err := h.collectActive(ctx, uow, &response); err != nil {
		return GetSummaryQueryResponse{}, err
	}
	if err := h.collectCompleted(ctx, uow, &response); err != nil {
		return GetSummaryQueryResponse{}, err
	}
	if err := h.collectDrivers(ctx, uow, &response); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	return response, nil
}

// collectPending walks the queue front to back and resolves each queued
// identifier against the store.
func (h GetSummaryQueryHandler) collectPending(ctx context.Context, uow UoW, response *GetSummaryQueryResponse) error {
	queued, err := uow.OrderQueue().PeekAll(ctx)
	if err != nil {
		return err
	}

	response.PendingOrders = make([]PendingOrderSummary, 0, len(queued))
	for _, id := range queued {
		pending, getErr := uow.OrderStore().Get(ctx, id)
		if getErr != nil {
			return fmt.Errorf("queued order %s is not in the store: %w", id, getErr)
		}
		response.PendingOrders = append(response.PendingOrders, PendingOrderSummary{
			ID:              pending.ID().String(),
			DeliveryAddress: pending.DeliveryAddress(),
			ItemCount:       len(pending.Items()),
		})
	}

	response.PendingCount = len(response.PendingOrders)
	return nil
}

func (h GetSummaryQueryHandler) collectActive(ctx context.Context, uow UoW, response *GetSummaryQueryResponse) error {
	active, err := uow.OrderStore().GetAllActive(ctx)
	if err != nil {
		return err
	}

	response.ActiveOrders = make([]ActiveOrderSummary, 0, len(active))
	for _, o := range active {
		driverID := o.AssignedDriver()
		if driverID == nil {
			return fmt.Errorf("active order %s has no assigned driver", o.ID())
		}

		assigned, getErr := uow.DriverPool().Get(ctx, *driverID)
		if getErr != nil {
			return getErr
		}

		response.ActiveOrders = append(response.ActiveOrders, ActiveOrderSummary{
			ID:              o.ID().String(),
			DeliveryAddress: o.DeliveryAddress(),
			DriverID:        assigned.ID().String(),
			DriverName:      assigned.Name(),
		})
	}

	response.ActiveCount = len(response.ActiveOrders)
	return nil
}

// collectCompleted lists the newest completions first and folds everything
// beyond recentCompletedLimit into a single count.
func (h GetSummaryQueryHandler) collectCompleted(ctx context.Context, uow UoW, response *GetSummaryQueryResponse) error {
	completed, err := uow.OrderStore().GetAllCompleted(ctx)
	if err != nil {
		return err
	}

	recent := len(completed)
	if recent > recentCompletedLimit {
		recent = recentCompletedLimit
	}

	response.RecentCompleted = make([]CompletedOrderSummary, 0, recent)
	for i := len(completed) - 1; i >= len(completed)-recent; i-- {
		o := completed[i]

		summary := CompletedOrderSummary{
			ID:              o.ID().String(),
			DeliveryAddress: o.DeliveryAddress(),
		}
		if driverID := o.AssignedDriver(); driverID != nil {
			summary.DriverID = driverID.String()
		}

		response.RecentCompleted = append(response.RecentCompleted, summary)
	}

	response.CompletedCount = len(completed)
	response.OlderCompletedCount = len(completed) - recent
	return nil
}

func (h GetSummaryQueryHandler) collectDrivers(ctx context.Context, uow UoW, response *GetSummaryQueryResponse) error {
	roster, err := uow.DriverPool().Snapshot(ctx)
	if err != nil {
		return err
	}

	now := h.clock()
	response.Drivers = make([]DriverSummary, 0, len(roster))
	for _, d := range roster {
		response.Drivers = append(response.Drivers, DriverSummary{
			ID:              d.ID().String(),
			Name:            d.Name(),
			Available:       d.IsAvailableAt(now),
			NextAvailableAt: d.NextAvailableAt(),
		})
	}

	return nil
}
