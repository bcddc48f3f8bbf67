package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/memory/driverpool"
	"dispatch/internal/adapters/out/memory/orderqueue"
	"dispatch/internal/adapters/out/memory/orderstore"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

// Factory adapters narrowing the memory unit of work to the composite each
// handler depends on.

type fullQueryUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f fullQueryUoWFactory) Create() queries.UoW { return f.inner.Create() }

type trackingUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f trackingUoWFactory) Create() queries.TrackingUoW { return f.inner.Create() }

type queueUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f queueUoWFactory) Create() queries.QueueUoW { return f.inner.Create() }

type fullCommandUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f fullCommandUoWFactory) Create() commands.UoW { return f.inner.Create() }

type placementUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f placementUoWFactory) Create() commands.PlacementUoW { return f.inner.Create() }

type completionUoWFactory struct{ inner *memory.UnitOfWorkFactory }

func (f completionUoWFactory) Create() commands.CompletionUoW { return f.inner.Create() }

// testEnv wires real in-memory stores and command handlers so query tests
// observe states produced by the genuine write path. The clock is manual:
// tests move e.now to simulate the passage of time.
type testEnv struct {
	t *testing.T

	now     time.Time
	factory *memory.UnitOfWorkFactory

	place    commands.PlaceOrderCommandHandler
	assign   commands.AssignDriverCommandHandler
	complete commands.CompleteDeliveryCommandHandler
}

func newTestEnv(t *testing.T, driverNames ...string) *testEnv {
	t.Helper()

	e := &testEnv{
		t:   t,
		now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return e.now }

	pool := driverpool.NewPool()
	for i, name := range driverNames {
		id, err := kernel.NewDriverID(i + 1)
		require.NoError(t, err)
		d, err := driver.NewDriver(id, name, e.now)
		require.NoError(t, err)
		require.NoError(t, pool.Add(t.Context(), d))
	}

	e.factory = memory.NewUnitOfWorkFactory(orderstore.NewStore(), orderqueue.NewQueue(), pool)

	dispatcher, err := services.NewDispatcher(services.DefaultDeliveryDuration)
	require.NoError(t, err)

	e.place = commands.NewPlaceOrderCommandHandler(placementUoWFactory{e.factory}, clock)
	e.assign = commands.NewAssignDriverCommandHandler(fullCommandUoWFactory{e.factory}, dispatcher, clock)
	e.complete = commands.NewCompleteDeliveryCommandHandler(completionUoWFactory{e.factory}, clock)

	return e
}

func (e *testEnv) placeOrder(address string, items ...string) *order.Order {
	e.t.Helper()
	placed, err := e.place.Handle(e.t.Context(), commands.NewPlaceOrderCommand(address, items))
	require.NoError(e.t, err)
	return placed
}

func (e *testEnv) assignNext() commands.AssignDriverResult {
	e.t.Helper()
	result, err := e.assign.Handle(e.t.Context(), commands.NewAssignDriverCommand())
	require.NoError(e.t, err)
	return result
}

func (e *testEnv) completeOrder(id kernel.OrderID) {
	e.t.Helper()
	cmd, err := commands.NewCompleteDeliveryCommand(id)
	require.NoError(e.t, err)
	require.NoError(e.t, e.complete.Handle(e.t.Context(), cmd))
}
