package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SliceClass is the traffic class a network slice is dedicated to.
type SliceClass string

const (
	ClassEMBB  SliceClass = "eMBB"
	ClassURLLC SliceClass = "URLLC"
	ClassMMTC  SliceClass = "mMTC"
)

// SliceClasses lists all traffic classes in canonical order.
var SliceClasses = []SliceClass{ClassEMBB, ClassURLLC, ClassMMTC}

// ParseSliceClass converts a scenario string into a SliceClass.
// Matching is exact; valid names are "eMBB", "URLLC", "mMTC".
func ParseSliceClass(s string) (SliceClass, error) {
	switch SliceClass(s) {
	case ClassEMBB, ClassURLLC, ClassMMTC:
		return SliceClass(s), nil
	}
	return "", fmt.Errorf("unknown slice class %q", s)
}

// minAllocatable is the request floor below which an allocation is treated
// as noise and rejected with zero, leaving the pool untouched.
const minAllocatable = 0.1

// NetworkSlice is a network-wide bandwidth pool for one traffic class.
// Every station that serves the class shares the same pool; it is not a
// per-station budget. Invariant: 0 <= remaining <= capacity whenever
// callers release exactly what they allocated.
//
// Identity, class, and priority are immutable after construction; the
// remaining-bandwidth counter is mutated only through Allocate and Release.
type NetworkSlice struct {
	id        int
	class     SliceClass
	priority  float64 // weight in (0,1] applied to visible headroom
	capacity  float64 // nominal bandwidth budget in MHz
	remaining float64
}

// NewNetworkSlice creates a slice pool with its full capacity available.
func NewNetworkSlice(id int, class SliceClass, priority, capacity float64) *NetworkSlice {
	return &NetworkSlice{
		id:        id,
		class:     class,
		priority:  priority,
		capacity:  capacity,
		remaining: capacity,
	}
}

// ID returns the slice identity.
func (s *NetworkSlice) ID() int { return s.id }

// Class returns the slice's traffic class.
func (s *NetworkSlice) Class() SliceClass { return s.class }

// Priority returns the slice's priority weight.
func (s *NetworkSlice) Priority() float64 { return s.priority }

// Capacity returns the nominal bandwidth budget.
func (s *NetworkSlice) Capacity() float64 { return s.capacity }

// Remaining returns the raw unallocated bandwidth.
func (s *NetworkSlice) Remaining() float64 { return s.remaining }

// Available returns the priority-weighted headroom visible to admission
// decisions: remaining * priority.
func (s *NetworkSlice) Available() float64 {
	return s.remaining * s.priority
}

// Allocate grants min(requested, remaining*priority) and decrements the
// pool by the granted amount. Requests below minAllocatable return 0 and
// leave the pool unchanged. The return value is the caller's ledger: it
// must be passed back verbatim to Release on disconnect.
func (s *NetworkSlice) Allocate(requested float64) float64 {
	if requested < minAllocatable {
		return 0
	}
	allocated := min(requested, s.remaining*s.priority)
	s.remaining -= allocated
	return allocated
}

// Release returns previously allocated bandwidth to the pool. The pool
// keeps no per-holder ledger; callers are trusted to release exactly what
// Allocate returned. An overshoot past nominal capacity indicates a caller
// bug and is logged, not corrected.
func (s *NetworkSlice) Release(amount float64) {
	s.remaining += amount
	if s.remaining > s.capacity {
		logrus.Warnf("slice %d (%s): release of %.2f MHz pushed remaining to %.2f, above capacity %.2f",
			s.id, s.class, amount, s.remaining, s.capacity)
	}
}

// === SliceRegistry ===

// SliceRegistry is the authoritative owner of all slice pools, keyed by
// identity. Stations reference slices by ID only, so the shared network-wide
// pool has exactly one owner.
type SliceRegistry struct {
	byID  map[int]*NetworkSlice
	order []int // insertion order, for stable iteration
}

// NewSliceRegistry creates an empty registry.
func NewSliceRegistry() *SliceRegistry {
	return &SliceRegistry{byID: make(map[int]*NetworkSlice)}
}

// Add registers a slice. Duplicate IDs are rejected.
func (r *SliceRegistry) Add(s *NetworkSlice) error {
	if _, ok := r.byID[s.ID()]; ok {
		return fmt.Errorf("duplicate slice id %d", s.ID())
	}
	r.byID[s.ID()] = s
	r.order = append(r.order, s.ID())
	return nil
}

// Get returns the slice with the given ID, or nil if absent.
func (r *SliceRegistry) Get(id int) *NetworkSlice {
	return r.byID[id]
}

// Len returns the number of registered slices.
func (r *SliceRegistry) Len() int {
	return len(r.byID)
}

// All returns every slice in insertion order.
func (r *SliceRegistry) All() []*NetworkSlice {
	out := make([]*NetworkSlice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// OfClass returns the slices of one traffic class in insertion order.
func (r *SliceRegistry) OfClass(class SliceClass) []*NetworkSlice {
	var out []*NetworkSlice
	for _, id := range r.order {
		if s := r.byID[id]; s.Class() == class {
			out = append(out, s)
		}
	}
	return out
}
