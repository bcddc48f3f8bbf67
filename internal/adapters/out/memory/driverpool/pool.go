// Package driverpool provides the in-memory driver pool: the fixed roster
// plus a min-heap ordered by each driver's next-available time.
//
// The heap cannot reposition an arbitrary element whose key changed while it
// is not at the root, so out-of-band availability changes (delivery
// completion) refresh every heap entry's key from the roster and re-heapify.
// That costs O(n) per update, acceptable at roster scale; an indexed
// priority structure would remove it at production scale.
package driverpool

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrDriverAlreadyQueued is returned by Reinsert when the driver is already
// present in the ordered structure. A driver extracted for assignment must
// be reinserted exactly once.
var ErrDriverAlreadyQueued = errors.New("driver is already in the ordered structure")

// entry is one element of the availability heap. The availability key is
// captured at insertion time; keys are refreshed from the roster whenever an
// out-of-band update invalidates them.
type entry struct {
	id          kernel.DriverID
	availableAt time.Time
	rosterIndex int
}

// availabilityHeap implements heap.Interface ordered by (availableAt,
// rosterIndex). The roster-index tiebreak keeps extraction deterministic for
// drivers sharing the same availability time.
type availabilityHeap []entry

func (h availabilityHeap) Len() int { return len(h) }

func (h availabilityHeap) Less(i, j int) bool {
	if !h[i].availableAt.Equal(h[j].availableAt) {
		return h[i].availableAt.Before(h[j].availableAt)
	}
	return h[i].rosterIndex < h[j].rosterIndex
}

func (h availabilityHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *availabilityHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *availabilityHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Pool is an in-memory ports.DriverPool.
//
// Pool is not internally synchronized; all access must go through a unit of
// work, which serializes operations.
type Pool struct {
	// roster holds every driver in registration order; authoritative.
	roster []*driver.Driver
	// byID indexes the roster by driver identifier.
	byID map[string]*driver.Driver
	// rosterIndex maps driver identifier to roster position for tiebreaks.
	rosterIndex map[string]int
	// ordered is the availability min-heap over the roster.
	ordered availabilityHeap
}

// NewPool creates an empty pool. Drivers are registered with Add while the
// roster is built at startup.
func NewPool() *Pool {
	return &Pool{
		byID:        make(map[string]*driver.Driver),
		rosterIndex: make(map[string]int),
	}
}

// Add registers a driver in the roster and the ordered structure.
func (p *Pool) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := p.byID[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause("driver id",
			fmt.Errorf("%s is already registered", key))
	}

	index := len(p.roster)
	p.roster = append(p.roster, aggregate)
	p.byID[key] = aggregate
	p.rosterIndex[key] = index

	heap.Push(&p.ordered, entry{
		id:          aggregate.ID(),
		availableAt: aggregate.NextAvailableAt(),
		rosterIndex: index,
	})
	return nil
}

// ExtractEarliest removes and returns the driver with the smallest
// nextAvailableAt, ties broken by roster order. Extraction is unconditional:
// the minimum is returned even when its availability time lies in the future.
func (p *Pool) ExtractEarliest(_ context.Context) (*driver.Driver, error) {
	if p.ordered.Len() == 0 {
		return nil, ports.ErrPoolEmpty
	}

	top := heap.Pop(&p.ordered).(entry)
	return p.byID[top.id.String()], nil
}

// Reinsert returns a previously extracted driver to the ordered structure
// with its current nextAvailableAt.
func (p *Pool) Reinsert(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	index, exists := p.rosterIndex[key]
	if !exists {
		return errs.NewObjectNotFoundError("driverId", key)
	}

	for _, e := range p.ordered {
		if e.id.IsEqual(aggregate.ID()) {
			return ErrDriverAlreadyQueued
		}
	}

	heap.Push(&p.ordered, entry{
		id:          aggregate.ID(),
		availableAt: aggregate.NextAvailableAt(),
		rosterIndex: index,
	})
	return nil
}

// UpdateAvailability sets the roster entry's nextAvailableAt and rebuilds
// the ordered structure so it stays consistent with the roster.
func (p *Pool) UpdateAvailability(_ context.Context, id kernel.DriverID, availableAt time.Time) error {
	aggregate, exists := p.byID[id.String()]
	if !exists {
		return errs.NewObjectNotFoundError("driverId", id.String())
	}

	if err := aggregate.SetNextAvailableAt(availableAt); err != nil {
		return err
	}

	// Refresh every captured key from the roster and re-heapify. Drivers
	// currently extracted stay absent from the structure.
	for i := range p.ordered {
		p.ordered[i].availableAt = p.byID[p.ordered[i].id.String()].NextAvailableAt()
	}
	heap.Init(&p.ordered)
	return nil
}

// Get retrieves a driver from the roster by its identifier.
func (p *Pool) Get(_ context.Context, id kernel.DriverID) (*driver.Driver, error) {
	aggregate, exists := p.byID[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("driverId", id.String())
	}
	return aggregate, nil
}

// Snapshot returns all drivers in roster order.
func (p *Pool) Snapshot(_ context.Context) ([]*driver.Driver, error) {
	out := make([]*driver.Driver, len(p.roster))
	copy(out, p.roster)
	return out, nil
}
