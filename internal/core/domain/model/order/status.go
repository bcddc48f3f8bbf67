package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Business errors surfaced by status transitions. Both are checked with
// errors.Is by the application layer and by external callers.
var (
	// ErrOrderAlreadyCompleted is returned when completing an order that has
	// already reached the terminal Completed status. The condition is
	// informational: the order is idempotently reported as completed and no
	// state changes.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")

	// ErrOrderNotYetAssigned is returned when completing an order that is
	// still Pending, i.e. was never assigned to a driver.
	ErrOrderNotYetAssigned = errors.New("order is not yet assigned to a driver")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Active ──> Completed
//
// Progression is strictly monotonic: there is no way back from Active to
// Pending, and Completed is a final state with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status sit in the FIFO queue awaiting assignment.
	Pending

	// Active indicates the order has been assigned to a driver and the
	// delivery is in progress.
	Active

	// Completed indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Active:    "Active",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Active and Completed; Unknown (0) and any
// other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Active.
//
// Valid transitions:
//   - Pending -> Active (driver assigned)
//
// Every other source status is rejected, including Active itself: an order
// keeps its first driver and is never reassigned.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s.String()))
	}

	return Active, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed (delivery confirmed)
//
// Returns ErrOrderAlreadyCompleted when the order is already Completed and
// ErrOrderNotYetAssigned when it is still Pending, so callers can
// distinguish the two conditions.
func (s Status) Complete() (Status, error) {
	switch s {
	case Completed:
		return 0, ErrOrderAlreadyCompleted
	case Pending:
		return 0, ErrOrderNotYetAssigned
	case Active:
		return Completed, nil
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
}
