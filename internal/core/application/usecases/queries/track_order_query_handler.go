package queries

import (
	"context"
)

// TrackOrderQueryHandler resolves a tracking request against the order store,
// joining in the driver's name from the roster when the order has been
// assigned.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(uowFactory)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s is %s\n", response.ID, response.Status)
type TrackOrderQueryHandler struct {
	uowFactory TrackingUoWFactory
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(uowFactory TrackingUoWFactory) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{uowFactory: uowFactory}
}

// Handle executes the tracking query. Returns errs.ErrObjectNotFound
// (wrapped) when the order identifier is unknown.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tracked, err := uow.OrderStore().Get(ctx, query.OrderID())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		ID:              tracked.ID().String(),
		Status:          tracked.Status().String(),
		DeliveryAddress: tracked.DeliveryAddress(),
		Items:           tracked.Items(),
		CreatedAt:       tracked.CreatedAt(),
	}

	if driverID := tracked.AssignedDriver(); driverID != nil {
		assigned, getErr := uow.DriverPool().Get(ctx, *driverID)
		if getErr != nil {
			return TrackOrderQueryResponse{}, getErr
		}
		response.DriverID = assigned.ID().String()
		response.DriverName = assigned.Name()
		response.DriverNextAvailableAt = assigned.NextAvailableAt()
	}

	if err = uow.Commit(ctx); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return response, nil
}
