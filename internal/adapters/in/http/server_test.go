package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapterhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/memory/driverpool"
	"dispatch/internal/adapters/out/memory/orderqueue"
	"dispatch/internal/adapters/out/memory/orderstore"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placementFactory struct{ inner *memory.UnitOfWorkFactory }

func (f placementFactory) Create() commands.PlacementUoW { return f.inner.Create() }

type completionFactory struct{ inner *memory.UnitOfWorkFactory }

func (f completionFactory) Create() commands.CompletionUoW { return f.inner.Create() }

type commandFactory struct{ inner *memory.UnitOfWorkFactory }

func (f commandFactory) Create() commands.UoW { return f.inner.Create() }

type trackingFactory struct{ inner *memory.UnitOfWorkFactory }

func (f trackingFactory) Create() queries.TrackingUoW { return f.inner.Create() }

type queueFactory struct{ inner *memory.UnitOfWorkFactory }

func (f queueFactory) Create() queries.QueueUoW { return f.inner.Create() }

type queryFactory struct{ inner *memory.UnitOfWorkFactory }

func (f queryFactory) Create() queries.UoW { return f.inner.Create() }

// newTestRouter wires the full HTTP surface over fresh in-memory stores with
// a fixed clock.
func newTestRouter(t *testing.T, driverNames ...string) *echo.Echo {
	t.Helper()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	pool := driverpool.NewPool()
	for i, name := range driverNames {
		id, err := kernel.NewDriverID(i + 1)
		require.NoError(t, err)
		d, err := driver.NewDriver(id, name, now)
		require.NoError(t, err)
		require.NoError(t, pool.Add(t.Context(), d))
	}

	factory := memory.NewUnitOfWorkFactory(orderstore.NewStore(), orderqueue.NewQueue(), pool)
	dispatcher, err := services.NewDispatcher(services.DefaultDeliveryDuration)
	require.NoError(t, err)

	server := adapterhttp.NewServer(
		commands.NewPlaceOrderCommandHandler(placementFactory{factory}, clock),
		commands.NewAssignDriverCommandHandler(commandFactory{factory}, dispatcher, clock),
		commands.NewCompleteDeliveryCommandHandler(completionFactory{factory}, clock),
		queries.NewTrackOrderQueryHandler(trackingFactory{factory}),
		queries.NewGetSummaryQueryHandler(queryFactory{factory}, clock),
		queries.NewGetPendingQueueQueryHandler(queueFactory{factory}),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestServer_PlaceOrder(t *testing.T) {
	e := newTestRouter(t, "John")

	rec := do(e, http.MethodPost, "/api/v1/orders",
		`{"deliveryAddress":"1 Main St","items":["Burger","Fries"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	response := decode[adapterhttp.OrderResponse](t, rec)
	assert.Equal(t, "ORD1", response.ID)
	assert.Equal(t, "Pending", response.Status)
	assert.Equal(t, "1 Main St", response.DeliveryAddress)
	assert.Equal(t, []string{"Burger", "Fries"}, response.Items)
	assert.Empty(t, response.DriverID)
}

func TestServer_PlaceOrder_SequentialIDs(t *testing.T) {
	e := newTestRouter(t, "John")

	first := decode[adapterhttp.OrderResponse](t,
		do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`))
	second := decode[adapterhttp.OrderResponse](t,
		do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"2 Oak Ave"}`))

	assert.Equal(t, "ORD1", first.ID)
	assert.Equal(t, "ORD2", second.ID)
}

func TestServer_AssignDriver(t *testing.T) {
	e := newTestRouter(t, "John", "Sarah")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)

	rec := do(e, http.MethodPost, "/api/v1/assignments", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.AssignmentResponse](t, rec)
	assert.Equal(t, "ORD1", response.OrderID)
	assert.Equal(t, "DRV1", response.DriverID)
	assert.Equal(t, "John", response.DriverName)
}

func TestServer_AssignDriver_NoPendingOrders(t *testing.T) {
	e := newTestRouter(t, "John")

	rec := do(e, http.MethodPost, "/api/v1/assignments", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	response := decode[adapterhttp.Error](t, rec)
	assert.Equal(t, http.StatusConflict, response.Code)
	assert.Contains(t, response.Message, "No pending orders")
}

func TestServer_AssignDriver_NoDrivers(t *testing.T) {
	e := newTestRouter(t) // empty roster
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)

	rec := do(e, http.MethodPost, "/api/v1/assignments", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	response := decode[adapterhttp.Error](t, rec)
	assert.Contains(t, response.Message, "No drivers available")
}

func TestServer_TrackOrder(t *testing.T) {
	e := newTestRouter(t, "John")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St","items":["Burger"]}`)
	do(e, http.MethodPost, "/api/v1/assignments", "")

	rec := do(e, http.MethodGet, "/api/v1/orders/ORD1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.OrderResponse](t, rec)
	assert.Equal(t, "Active", response.Status)
	assert.Equal(t, "DRV1", response.DriverID)
	assert.Equal(t, "John", response.DriverName)
}

func TestServer_TrackOrder_NotFound(t *testing.T) {
	e := newTestRouter(t, "John")

	rec := do(e, http.MethodGet, "/api/v1/orders/ORD42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TrackOrder_InvalidID(t *testing.T) {
	e := newTestRouter(t, "John")

	rec := do(e, http.MethodGet, "/api/v1/orders/bogus", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CompleteDelivery(t *testing.T) {
	e := newTestRouter(t, "John")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)
	do(e, http.MethodPost, "/api/v1/assignments", "")

	rec := do(e, http.MethodPost, "/api/v1/orders/ORD1/complete", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.CompletionResponse](t, rec)
	assert.Equal(t, "ORD1", response.OrderID)
	assert.Equal(t, "Completed", response.Status)
	assert.False(t, response.AlreadyCompleted)
}

func TestServer_CompleteDelivery_Idempotent(t *testing.T) {
	e := newTestRouter(t, "John")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)
	do(e, http.MethodPost, "/api/v1/assignments", "")
	do(e, http.MethodPost, "/api/v1/orders/ORD1/complete", "")

	rec := do(e, http.MethodPost, "/api/v1/orders/ORD1/complete", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.CompletionResponse](t, rec)
	assert.True(t, response.AlreadyCompleted)
}

func TestServer_CompleteDelivery_NotYetAssigned(t *testing.T) {
	e := newTestRouter(t, "John")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)

	rec := do(e, http.MethodPost, "/api/v1/orders/ORD1/complete", "")

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CompleteDelivery_NotFound(t *testing.T) {
	e := newTestRouter(t, "John")

	rec := do(e, http.MethodPost, "/api/v1/orders/ORD9/complete", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetPendingQueue(t *testing.T) {
	e := newTestRouter(t, "John")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"2 Oak Ave"}`)

	rec := do(e, http.MethodGet, "/api/v1/queue", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.PendingQueueResponse](t, rec)
	assert.Equal(t, []string{"ORD1", "ORD2"}, response.OrderIDs)
	assert.Equal(t, 2, response.Count)
}

func TestServer_GetSummary(t *testing.T) {
	e := newTestRouter(t, "John", "Sarah")
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"1 Main St"}`)
	do(e, http.MethodPost, "/api/v1/orders", `{"deliveryAddress":"2 Oak Ave"}`)
	do(e, http.MethodPost, "/api/v1/assignments", "")
	do(e, http.MethodPost, "/api/v1/orders/ORD1/complete", "")

	rec := do(e, http.MethodGet, "/api/v1/summary", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := decode[adapterhttp.SummaryResponse](t, rec)

	require.Len(t, response.PendingOrders, 1)
	assert.Equal(t, "ORD2", response.PendingOrders[0].ID)
	assert.Empty(t, response.ActiveOrders)
	require.Len(t, response.RecentCompleted, 1)
	assert.Equal(t, "ORD1", response.RecentCompleted[0].ID)
	assert.Equal(t, 1, response.CompletedCount)
	require.Len(t, response.Drivers, 2)
	assert.True(t, response.Drivers[0].Available)
}
