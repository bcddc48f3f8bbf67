package driver

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAvailabilityTimeIsRequired is returned when setting a zero availability time.
	ErrAvailabilityTimeIsRequired = errs.NewValueIsRequiredError("nextAvailableAt")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the system.
//
// Key responsibilities:
//   - Managing driver identity (ID, display name)
//   - Tracking the single availability timestamp that the dispatch process
//     orders drivers by
//
// Business rules:
//   - Driver must have a valid identifier and a non-empty name
//   - Identity is immutable; nextAvailableAt is the only mutable field
//   - The driver is considered free when now >= nextAvailableAt
//
// Example usage:
//
//	id, _ := kernel.NewDriverID(1)
//	drv, err := NewDriver(id, "John", time.Now())
//	if err != nil {
//	    // Handle construction error
//	}
//	// Driver is ready to take assignments
type Driver struct {
	// id uniquely identifies the driver
	id kernel.DriverID
	// name is the human-readable name of the driver
	name string
	// nextAvailableAt is the time at which the driver next becomes free
	nextAvailableAt time.Time
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified identity and initial
// availability time. This is the only way to create a valid Driver instance.
//
// Parameters:
//   - id: unique identifier for the driver (must be valid)
//   - name: human-readable name (must be non-empty)
//   - availableAt: initial availability timestamp (must not be the zero time)
//
// Returns the created driver, or an aggregated validation error.
func NewDriver(id kernel.DriverID, name string, availableAt time.Time) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.SetNextAvailableAt(availableAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two drivers for equality based on their identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed using NewDriver.
// The zero value of Driver is invalid and fails this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.DriverID {
	return d.id
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// NextAvailableAt returns the time at which the driver next becomes free.
func (d *Driver) NextAvailableAt() time.Time {
	return d.nextAvailableAt
}

// IsAvailableAt reports whether the driver is free at the given moment,
// i.e. nextAvailableAt <= now. Note that the dispatch process extracts the
// earliest driver unconditionally; this predicate only drives the status
// shown in summaries.
func (d *Driver) IsAvailableAt(now time.Time) bool {
	return !d.nextAvailableAt.After(now)
}

// SetNextAvailableAt updates the driver's availability timestamp.
// Used on assignment (now + delivery duration) and on delivery completion
// (now). Rejects the zero time, which always indicates a programming error.
func (d *Driver) SetNextAvailableAt(t time.Time) error {
	if t.IsZero() {
		return ErrAvailabilityTimeIsRequired
	}

	d.nextAvailableAt = t
	return nil
}

// setID sets the driver's unique identifier with validation.
// This is an internal setter used during construction.
func (d *Driver) setID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setName sets the driver's name with validation.
// This is an internal setter used during construction.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}
