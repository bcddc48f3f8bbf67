package ports

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrPoolEmpty is returned by DriverPool.ExtractEarliest when the
// availability-ordered structure holds no drivers. The application layer
// maps it to its NoDriversAvailable business error.
var ErrPoolEmpty = errors.New("no drivers in pool")

// DriverPool maintains the fixed driver roster together with an
// availability-ordered structure over it.
//
// The roster is authoritative: a driver is never removed from it. A driver
// is only temporarily absent from the ordered structure between
// ExtractEarliest and Reinsert, while an assignment is being applied. After
// any mutation the ordered structure and the roster must agree on every
// driver's availability time.
type DriverPool interface {
	// Add registers a driver in the roster and the ordered structure.
	// Called only while building the roster at startup.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// ExtractEarliest removes and returns the driver with the smallest
	// nextAvailableAt from the ordered structure, ties broken by roster
	// order. Extraction is unconditional: the minimum is returned even when
	// its availability time lies in the future. Returns ErrPoolEmpty when
	// the ordered structure is empty. The caller must Reinsert the driver
	// immediately after mutating it.
	ExtractEarliest(ctx context.Context) (*driver.Driver, error)

	// Reinsert returns a previously extracted driver to the ordered
	// structure with its current nextAvailableAt.
	Reinsert(ctx context.Context, aggregate *driver.Driver) error

	// UpdateAvailability sets the roster entry's nextAvailableAt and
	// repositions the ordered structure so it stays consistent with the
	// roster. Required for availability changes that happen outside the
	// extract/reinsert cycle, such as delivery completion.
	UpdateAvailability(ctx context.Context, id kernel.DriverID, availableAt time.Time) error

	// Get retrieves a driver from the roster by its identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when the id is unknown.
	Get(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)

	// Snapshot returns all drivers in roster order.
	Snapshot(ctx context.Context) ([]*driver.Driver, error)
}
