package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob manages the scheduled assignment of drivers to orders.
// Runs every second to match the front of the pending queue with the
// earliest-available driver.
type DriverAssignmentJob struct {
	handler commands.AssignDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates a new job for assigning drivers.
// Uses AssignDriverCommandHandler to process assignments every second.
func NewDriverAssignmentJob(handler commands.AssignDriverCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the driver assignment job to run every second.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDriverCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoDriversAvailable) {
				j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Order assigned",
			"orderId", result.Order.ID().String(),
			"driverId", result.Driver.ID().String(),
			"deliveryTime", result.DeliveryTime)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every second)")
	return nil
}

// Stop stops the driver assignment job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
