package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand triggers the assignment of the earliest-available
// driver to the oldest pending order. This command represents the business
// operation of matching delivery capacity with queued demand.
//
// Example:
//
//	cmd := NewAssignDriverCommand()
//	handler := NewAssignDriverCommandHandler(uowFactory, dispatcher, time.Now)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no drivers in pool: %v", err)
//	}
type AssignDriverCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a new command to trigger driver assignment.
// This is a parameterless command: the order is always the front of the
// FIFO queue and the driver is always the earliest-available one.
func NewAssignDriverCommand() AssignDriverCommand {
	return AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}
