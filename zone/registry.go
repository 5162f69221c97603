package zone

import (
	"math"
	"sync/atomic"
)

// Slot identifies the aggregate entry of one call site.
type Slot uint32

// RootSlot is the implicit parent of top-level zones. It is never reported.
const RootSlot Slot = 0

// DefaultCapacity is the number of slots, including the root, a registry holds.
const DefaultCapacity = 1024

// Registry hands out slots in strictly increasing order, starting at 1.
//
// Allocation is atomic so call sites that lazily initialize concurrently do not
// receive the same slot. Nothing else in the engine is safe for concurrent use.
type Registry struct {
	capacity uint32
	next     atomic.Uint32
}

// NewRegistry creates a registry holding capacity slots. Non-positive capacities
// select DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if uint64(capacity) > math.MaxUint32 {
		return &Registry{capacity: math.MaxUint32}
	}
	return &Registry{capacity: uint32(capacity)}
}

// Capacity returns the configured capacity.
func (r *Registry) Capacity() int {
	return int(r.capacity)
}

// Allocated returns the highest slot handed out so far, or RootSlot if none.
func (r *Registry) Allocated() Slot {
	return Slot(r.next.Load())
}

// AllocateSlot returns the next slot. It panics with a *CapacityError when the
// capacity would be reached.
func (r *Registry) AllocateSlot() Slot {
	slot, err := r.TryAllocateSlot()
	if err != nil {
		panic(err)
	}
	return slot
}

// TryAllocateSlot is AllocateSlot returning the capacity failure as an error.
// A failed attempt does not consume a slot.
func (r *Registry) TryAllocateSlot() (Slot, error) {
	for {
		cur := r.next.Load()
		n := cur + 1
		if n == 0 || n >= r.capacity {
			return RootSlot, &CapacityError{Capacity: int(r.capacity)}
		}
		if r.next.CompareAndSwap(cur, n) {
			return Slot(n), nil
		}
	}
}
