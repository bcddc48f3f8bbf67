package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
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
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

type CompositionRoot struct {
	uowFactory *memory.UnitOfWorkFactory
	dispatcher services.Dispatcher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCompositionRoot builds the shared stores, registers the fixed driver
// roster, and wires the dispatcher. Everything lives in process memory: state
// starts empty on every run except for the roster.
func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	clock := ports.Clock(time.Now)

	pool := driverpool.NewPool()
	if err := registerRoster(pool, configs.DriverNames, clock()); err != nil {
		return CompositionRoot{}, err
	}

	dispatcher, err := services.NewDispatcher(configs.DeliveryDuration)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		uowFactory: memory.NewUnitOfWorkFactory(orderstore.NewStore(), orderqueue.NewQueue(), pool),
		dispatcher: dispatcher,
		clock:      clock,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// registerRoster creates drivers DRV1..DRVn from the configured names.
// The roster is fixed for the lifetime of the process.
func registerRoster(pool *driverpool.Pool, names []string, availableAt time.Time) error {
	for i, name := range names {
		id, err := kernel.NewDriverID(i + 1)
		if err != nil {
			return fmt.Errorf("failed to create driver id for %q: %w", name, err)
		}

		d, err := driver.NewDriver(id, name, availableAt)
		if err != nil {
			return fmt.Errorf("failed to create driver %q: %w", name, err)
		}

		if err = pool.Add(context.Background(), d); err != nil {
			return fmt.Errorf("failed to register driver %q: %w", name, err)
		}
	}

	return nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	var f queries.TrackingUoWFactory = FuncTrackingUoWFactory(func() queries.TrackingUoW {
		return c.uowFactory.Create()
	})
	return queries.NewTrackOrderQueryHandler(f)
}

func (c *CompositionRoot) CreateGetSummaryQueryHandler() queries.GetSummaryQueryHandler {
	var f queries.UoWFactory = FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetSummaryQueryHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetPendingQueueQueryHandler() queries.GetPendingQueueQueryHandler {
	var f queries.QueueUoWFactory = FuncQueueUoWFactory(func() queries.QueueUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetPendingQueueQueryHandler(f)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetSummaryQueryHandler(),
		c.CreateGetPendingQueueQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignDriverCommandHandler(), c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTrackingUoWFactory func() queries.TrackingUoW

func (f FuncTrackingUoWFactory) Create() queries.TrackingUoW {
	return f()
}

type FuncQueueUoWFactory func() queries.QueueUoW

func (f FuncQueueUoWFactory) Create() queries.QueueUoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
