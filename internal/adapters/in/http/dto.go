package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
// Both fields are accepted as-is; placement never rejects an order.
type PlaceOrderRequest struct {
	DeliveryAddress string   `json:"deliveryAddress"`
	Items           []string `json:"items"`
}

// OrderResponse describes one order. The driver fields are omitted while the
// order is Pending. For an active order driverNextAvailableAt is the expected
// delivery time.
type OrderResponse struct {
	ID                    string    `json:"id"`
	Status                string    `json:"status"`
	DeliveryAddress       string    `json:"deliveryAddress"`
	Items                 []string  `json:"items"`
	DriverID              string    `json:"driverId,omitempty"`
	DriverName            string    `json:"driverName,omitempty"`
	DriverNextAvailableAt time.Time `json:"driverNextAvailableAt,omitzero"`
	CreatedAt             time.Time `json:"createdAt"`
}

// AssignmentResponse is the body returned by POST /api/v1/assignments.
type AssignmentResponse struct {
	OrderID      string    `json:"orderId"`
	DriverID     string    `json:"driverId"`
	DriverName   string    `json:"driverName"`
	DeliveryTime time.Time `json:"deliveryTime"`
}

// CompletionResponse is the body returned by POST
// /api/v1/orders/{orderId}/complete. AlreadyCompleted reports the idempotent
// case: the order had been completed before this request and nothing changed.
type CompletionResponse struct {
	OrderID          string `json:"orderId"`
	Status           string `json:"status"`
	AlreadyCompleted bool   `json:"alreadyCompleted"`
}

// PendingQueueResponse is the body returned by GET /api/v1/queue.
// OrderIds runs front to back in assignment order.
type PendingQueueResponse struct {
	OrderIDs []string `json:"orderIds"`
	Count    int      `json:"count"`
}

// Summary DTOs mirror the summary read model section by section.
type (
	PendingOrderSummary struct {
		ID              string `json:"id"`
		DeliveryAddress string `json:"deliveryAddress"`
		ItemCount       int    `json:"itemCount"`
	}

	ActiveOrderSummary struct {
		ID              string `json:"id"`
		DeliveryAddress string `json:"deliveryAddress"`
		DriverID        string `json:"driverId"`
		DriverName      string `json:"driverName"`
	}

	CompletedOrderSummary struct {
		ID              string `json:"id"`
		DeliveryAddress string `json:"deliveryAddress"`
		DriverID        string `json:"driverId,omitempty"`
	}

	DriverSummary struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Available       bool      `json:"available"`
		NextAvailableAt time.Time `json:"nextAvailableAt"`
	}

	SummaryResponse struct {
		PendingOrders       []PendingOrderSummary   `json:"pendingOrders"`
		ActiveOrders        []ActiveOrderSummary    `json:"activeOrders"`
		RecentCompleted     []CompletedOrderSummary `json:"recentCompleted"`
		OlderCompletedCount int                     `json:"olderCompletedCount"`
		Drivers             []DriverSummary         `json:"drivers"`
		PendingCount        int                     `json:"pendingCount"`
		ActiveCount         int                     `json:"activeCount"`
		CompletedCount      int                     `json:"completedCount"`
	}
)
