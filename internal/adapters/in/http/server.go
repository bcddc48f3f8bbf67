package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dispatch operations over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	trackOrderHandler      queries.TrackOrderQueryHandler
	getSummaryHandler      queries.GetSummaryQueryHandler
	getPendingQueueHandler queries.GetPendingQueueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getSummaryHandler queries.GetSummaryQueryHandler,
	getPendingQueueHandler queries.GetPendingQueueQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		assignDriverHandler:     assignDriverHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		trackOrderHandler:       trackOrderHandler,
		getSummaryHandler:       getSummaryHandler,
		getPendingQueueHandler:  getPendingQueueHandler,
	}
}

// RegisterRoutes binds every dispatch endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.TrackOrder)
	api.POST("/orders/:orderId/complete", s.CompleteDelivery)
	api.POST("/assignments", s.AssignDriver)
	api.GET("/summary", s.GetSummary)
	api.GET("/queue", s.GetPendingQueue)
}

// PlaceOrder handles POST /api/v1/orders - places a new delivery order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewPlaceOrderCommand(request.DeliveryAddress, request.Items)

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:              placed.ID().String(),
		Status:          placed.Status().String(),
		DeliveryAddress: placed.DeliveryAddress(),
		Items:           placed.Items(),
		CreatedAt:       placed.CreatedAt(),
	})
}

// AssignDriver handles POST /api/v1/assignments - assigns the
// earliest-available driver to the oldest pending order.
func (s *Server) AssignDriver(ctx echo.Context) error {
	cmd := commands.NewAssignDriverCommand()

	result, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNoPendingOrders):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "No pending orders to assign",
		})
	case errors.Is(err, commands.ErrNoDriversAvailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "No drivers available",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign driver",
		})
	}

	return ctx.JSON(http.StatusOK, AssignmentResponse{
		OrderID:      result.Order.ID().String(),
		DriverID:     result.Driver.ID().String(),
		DriverName:   result.Driver.Name(),
		DeliveryTime: result.DeliveryTime,
	})
}

// TrackOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	tracked, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:                    tracked.ID,
		Status:                tracked.Status,
		DeliveryAddress:       tracked.DeliveryAddress,
		Items:                 tracked.Items,
		DriverID:              tracked.DriverID,
		DriverName:            tracked.DriverName,
		DriverNextAvailableAt: tracked.DriverNextAvailableAt,
		CreatedAt:             tracked.CreatedAt,
	})
}

// CompleteDelivery handles POST /api/v1/orders/:orderId/complete - marks an
// order as delivered and frees its driver.
//
// Completing an already-completed order is not an error: the response simply
// carries alreadyCompleted=true and nothing changes.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrOrderAlreadyCompleted):
		return ctx.JSON(http.StatusOK, CompletionResponse{
			OrderID:          orderID.String(),
			Status:           order.Completed.String(),
			AlreadyCompleted: true,
		})
	case errors.Is(err, order.ErrOrderNotYetAssigned):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order is not yet assigned to a driver",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to complete delivery",
		})
	}

	return ctx.JSON(http.StatusOK, CompletionResponse{
		OrderID: orderID.String(),
		Status:  order.Completed.String(),
	})
}

// GetSummary handles GET /api/v1/summary - retrieves the system snapshot.
func (s *Server) GetSummary(ctx echo.Context) error {
	query := queries.NewGetSummaryQuery()

	summary, err := s.getSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build summary",
		})
	}

	response := SummaryResponse{
		PendingOrders:       make([]PendingOrderSummary, len(summary.PendingOrders)),
		ActiveOrders:        make([]ActiveOrderSummary, len(summary.ActiveOrders)),
		RecentCompleted:     make([]CompletedOrderSummary, len(summary.RecentCompleted)),
		OlderCompletedCount: summary.OlderCompletedCount,
		Drivers:             make([]DriverSummary, len(summary.Drivers)),
		PendingCount:        summary.PendingCount,
		ActiveCount:         summary.ActiveCount,
		CompletedCount:      summary.CompletedCount,
	}

	for i, pending := range summary.PendingOrders {
		response.PendingOrders[i] = PendingOrderSummary(pending)
	}
	for i, active := range summary.ActiveOrders {
		response.ActiveOrders[i] = ActiveOrderSummary(active)
	}
	for i, completed := range summary.RecentCompleted {
		response.RecentCompleted[i] = CompletedOrderSummary(completed)
	}
	for i, d := range summary.Drivers {
		response.Drivers[i] = DriverSummary(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingQueue handles GET /api/v1/queue - retrieves the FIFO queue.
func (s *Server) GetPendingQueue(ctx echo.Context) error {
	query := queries.NewGetPendingQueueQuery()

	queue, err := s.getPendingQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to inspect queue",
		})
	}

	return ctx.JSON(http.StatusOK, PendingQueueResponse{
		OrderIDs: queue.OrderIDs,
		Count:    queue.Count,
	})
}
