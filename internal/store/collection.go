// ABOUTME: Generic ordered, id-keyed, mutex-guarded entity collection
// ABOUTME: Implements list/get/create/replace/delete with all-or-nothing effects per call

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Record is implemented by the value types a Collection can hold.
// Clone must return a copy that shares no mutable memory with the receiver.
type Record[T any] interface {
	Key() int64
	WithKey(id int64) T
	Clone() T
}

// Collection is an ordered set of entities keyed by id. The slice never
// leaves the collection: every value going in or out is cloned.
//
// A context that is already done when an operation starts makes the
// operation return ctx.Err() without touching the collection. Once the lock
// is held the operation runs to completion regardless of the context.
type Collection[T Record[T]] struct {
	name  string
	alloc Allocator

	mu    sync.RWMutex
	items []T
}

// NewCollection creates an empty collection. name is used in error messages.
// A nil allocator selects MaxPlusOne.
func NewCollection[T Record[T]](name string, alloc Allocator) *Collection[T] {
	if alloc == nil {
		alloc = MaxPlusOne{}
	}
	return &Collection[T]{name: name, alloc: alloc}
}

// Name returns the collection's name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load appends initial entities in order. Entities with a zero id are given
// one by the allocator; explicit ids must be positive and unused and are
// reported to the allocator when it is an Observer.
func (c *Collection[T]) Load(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	observer, _ := c.alloc.(Observer)
	for _, item := range items {
		id := item.Key()
		switch {
		case id < 0:
			return fmt.Errorf("%s: invalid id %d", c.name, id)
		case id == 0:
			id = c.alloc.NextID(c.idsLocked())
		case c.indexLocked(id) >= 0:
			return fmt.Errorf("%s: duplicate id %d", c.name, id)
		case observer != nil:
			observer.Observe(id)
		}
		c.items = append(c.items, item.WithKey(id).Clone())
	}
	return nil
}

// Len returns the number of entities currently stored.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// List returns a copy of every entity in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.Filter(ctx, nil)
}

// Filter returns copies of the entities for which keep returns true, in
// insertion order, taken from a single consistent snapshot. A nil keep
// matches everything. keep runs under the read lock and must not modify
// its argument.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep == nil || keep(item) {
			result = append(result, item.Clone())
		}
	}
	return result, nil
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexLocked(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	return c.items[i].Clone(), nil
}

// Create stores a copy of tmpl under a freshly allocated id and returns it.
// Any id already set on tmpl is ignored.
func (c *Collection[T]) Create(ctx context.Context, tmpl T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := tmpl.WithKey(c.alloc.NextID(c.idsLocked())).Clone()
	c.items = append(c.items, item)
	return item.Clone(), nil
}

// Replace overwrites every field of the entity with the given id using v.
// The id itself is preserved.
func (c *Collection[T]) Replace(ctx context.Context, id int64, v T) (T, error) {
	return c.Update(ctx, id, func(T) (T, error) {
		return v, nil
	})
}

// Update runs a read-modify-write on the entity with the given id under the
// write lock. fn receives a copy of the current value; if it returns an
// error nothing is written. The id of the result is forced back to id.
func (c *Collection[T]) Update(ctx context.Context, id int64, fn func(current T) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return zero, c.notFound(id)
	}

	next, err := fn(c.items[i].Clone())
	if err != nil {
		return zero, err
	}

	c.items[i] = next.WithKey(id).Clone()
	return c.items[i].Clone(), nil
}

// Delete removes the entity with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return c.notFound(id)
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// indexLocked returns the slice position of id, or -1. Must be called with mu held.
func (c *Collection[T]) indexLocked(id int64) int {
	for i, item := range c.items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}

// idsLocked returns the ids currently stored. Must be called with mu held.
func (c *Collection[T]) idsLocked() []int64 {
	ids := make([]int64, len(c.items))
	for i, item := range c.items {
		ids[i] = item.Key()
	}
	return ids
}

func (c *Collection[T]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", c.name, id, ErrNotFound)
}
