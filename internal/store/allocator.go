// ABOUTME: Id allocation strategies for entity collections
// ABOUTME: MaxPlusOne derives ids from current contents; HighWater never reissues an id

package store

import (
	"fmt"
	"sync"
)

// Allocator picks the id for a newly created entity. It is always called
// with the owning collection's write lock held, so ids is a consistent view.
type Allocator interface {
	NextID(ids []int64) int64
}

// Observer is implemented by allocators that must learn about ids assigned
// without calling NextID, such as seeded entities that carry their own id.
type Observer interface {
	Observe(id int64)
}

// Allocation strategy names accepted by NewAllocator.
const (
	StrategyMaxPlusOne = "max_plus_one"
	StrategyHighWater  = "high_water"
)

// NewAllocator returns a fresh allocator for the named strategy.
// An empty name selects MaxPlusOne.
func NewAllocator(strategy string) (Allocator, error) {
	switch strategy {
	case "", StrategyMaxPlusOne:
		return MaxPlusOne{}, nil
	case StrategyHighWater:
		return &HighWater{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// MaxPlusOne assigns 1 + the largest existing id, or 1 for an empty collection.
//
// Deleting the entity with the largest id and then creating a new one hands
// out the deleted id again.
type MaxPlusOne struct{}

// NextID implements Allocator.
func (MaxPlusOne) NextID(ids []int64) int64 {
	return maxID(ids) + 1
}

// HighWater assigns ids above the largest id it has ever observed, so ids are
// not reused for the lifetime of the process. One HighWater must not be
// shared between collections.
type HighWater struct {
	mu   sync.Mutex
	high int64
}

// NextID implements Allocator.
func (h *HighWater) NextID(ids []int64) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.high = max(h.high, maxID(ids)) + 1
	return h.high
}

// Observe implements Observer.
func (h *HighWater) Observe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.high = max(h.high, id)
}

func maxID(ids []int64) int64 {
	var m int64
	for _, id := range ids {
		m = max(m, id)
	}
	return m
}
