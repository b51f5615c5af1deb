// ABOUTME: Store set owning one collection per entity type
// ABOUTME: Built once at startup from an allocation strategy and optional seed data

package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Options configures a new Store.
type Options struct {
	// IDStrategy names the allocator used by every collection
	// (StrategyMaxPlusOne or StrategyHighWater). Empty means max_plus_one.
	IDStrategy string

	// Seed is the initial population. Nil means DefaultSeed().
	Seed *Seed
}

// Store holds the news, post and user collections. Each collection has its
// own lock; no operation spans two of them.
type Store struct {
	News  *Collection[News]
	Posts *Collection[Post]
	Users *UserStore
}

// New creates the store set and loads the seed population.
func New(opts Options) (*Store, error) {
	// Each collection gets its own allocator; HighWater keeps per-collection state.
	var allocs [3]Allocator
	for i := range allocs {
		a, err := NewAllocator(opts.IDStrategy)
		if err != nil {
			return nil, err
		}
		allocs[i] = a
	}

	s := &Store{
		News:  NewCollection[News]("news", allocs[0]),
		Posts: NewCollection[Post]("post", allocs[1]),
		Users: NewUserStore(allocs[2]),
	}

	seed := opts.Seed
	if seed == nil {
		seed = DefaultSeed()
	}
	if err := s.load(seed); err != nil {
		return nil, fmt.Errorf("loading seed: %w", err)
	}
	return s, nil
}

// Counts returns the number of entities in each collection, keyed by name.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		s.News.Name():  s.News.Len(),
		s.Posts.Name(): s.Posts.Len(),
		s.Users.Name(): s.Users.Len(),
	}
}

func (s *Store) load(seed *Seed) error {
	if err := s.News.Load(seed.News); err != nil {
		return err
	}
	if err := s.Posts.Load(seed.Posts); err != nil {
		return err
	}
	return s.Users.Load(seed.Users)
}
