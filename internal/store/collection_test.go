// ABOUTME: Tests for the generic entity Collection
// ABOUTME: Covers id allocation, ordering, replace/delete semantics, cancellation and concurrent creates

package store

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsers(t *testing.T, users ...User) *UserStore {
	t.Helper()
	s := NewUserStore(nil)
	require.NoError(t, s.Load(users))
	return s
}

func TestCollection_CreateOnEmptyAssignsOne(t *testing.T) {
	c := NewCollection[Post]("post", nil)

	p, err := c.Create(context.Background(), Post{ID: 42, Title: "hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.ID, "client-supplied id must be ignored")
	assert.Equal(t, "hello", p.Title)
}

func TestCollection_CreateAssignsMaxPlusOne(t *testing.T) {
	c := NewCollection[News]("news", nil)
	require.NoError(t, c.Load([]News{{ID: 3}, {ID: 7}, {ID: 5}}))

	n, err := c.Create(context.Background(), News{Title: "next"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), n.ID)
}

func TestCollection_CreateThenListPreservesOrder(t *testing.T) {
	s := newTestUsers(t, User{ID: 1, Name: "A"})
	ctx := context.Background()

	created, err := s.Create(ctx, User{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, User{ID: 2, Name: "B"}, created)

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, User{ID: 1, Name: "A"}, users[0])
	assert.Equal(t, User{ID: 2, Name: "B"}, users[1])
}

func TestCollection_DeleteThenGetNotFound(t *testing.T) {
	c := NewCollection[News]("news", nil)
	require.NoError(t, c.Load(DefaultSeed().News))
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, 3))

	_, err := c.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 4, c.Len())
}

func TestCollection_DeleteMissingLeavesLength(t *testing.T) {
	c := NewCollection[News]("news", nil)
	require.NoError(t, c.Load(DefaultSeed().News))

	err := c.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "news 99")
	assert.Equal(t, 5, c.Len())
}

func TestCollection_DeleteMaxReissuesID(t *testing.T) {
	c := NewCollection[News]("news", nil)
	require.NoError(t, c.Load(DefaultSeed().News))
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, 5))
	n, err := c.Create(ctx, News{Title: "again"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), n.ID)
}

func TestCollection_ReplacePreservesID(t *testing.T) {
	s := newTestUsers(t, User{
		ID:      4,
		Name:    "Old",
		Email:   "old@example.com",
		Address: &Address{City: "Paris"},
	})

	replacement := User{ID: 999, Name: "New", Website: "new.example.com"}
	got, err := s.Replace(context.Background(), 4, replacement)
	require.NoError(t, err)

	want := User{ID: 4, Name: "New", Website: "new.example.com"}
	assert.Equal(t, want, got)

	stored, err := s.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, want, stored, "every non-id field is overwritten, including nested records")
}

func TestCollection_ReplaceMissing(t *testing.T) {
	c := NewCollection[Post]("post", nil)

	_, err := c.Replace(context.Background(), 1, Post{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_UpdateErrorWritesNothing(t *testing.T) {
	c := NewCollection[Post]("post", nil)
	require.NoError(t, c.Load([]Post{{ID: 1, Title: "keep"}}))

	boom := assert.AnError
	_, err := c.Update(context.Background(), 1, func(p Post) (Post, error) {
		p.Title = "changed"
		return p, boom
	})
	require.ErrorIs(t, err, boom)

	p, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "keep", p.Title)
}

func TestCollection_ReturnedValuesDoNotAlias(t *testing.T) {
	s := newTestUsers(t, User{ID: 1, Address: &Address{City: "Rome", Geo: &Geo{Lat: "1"}}})
	ctx := context.Background()

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	got.Address.City = "Mutated"
	got.Address.Geo.Lat = "Mutated"

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0].Address.City = "Mutated"

	again, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rome", again.Address.City)
	assert.Equal(t, "1", again.Address.Geo.Lat)
}

func TestCollection_CanceledContextHasNoEffect(t *testing.T) {
	c := NewCollection[News]("news", nil)
	require.NoError(t, c.Load(DefaultSeed().News))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Create(ctx, News{Title: "late"})
	assert.ErrorIs(t, err, context.Canceled)

	err = c.Delete(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.Replace(ctx, 2, News{Title: "late"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = c.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	news, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed().News, news)
}

func TestCollection_LoadRejectsDuplicates(t *testing.T) {
	c := NewCollection[Post]("post", nil)

	err := c.Load([]Post{{ID: 1}, {ID: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id 1")
}

func TestCollection_LoadAllocatesMissingIDs(t *testing.T) {
	c := NewCollection[Post]("post", nil)

	require.NoError(t, c.Load([]Post{{ID: 4}, {Title: "no id"}}))

	posts, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(5), posts[1].ID)
}

func TestCollection_ConcurrentCreatesAreDistinct(t *testing.T) {
	c := NewCollection[Post]("post", nil)
	require.NoError(t, c.Load([]Post{{ID: 10}}))

	const n = 200
	ids := make([]int64, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := c.Create(context.Background(), Post{UserID: 1})
			assert.NoError(t, err)
			ids[i] = p.ID
		}()
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(11+i), id, "ids must be unique and gap-free above the previous max")
	}
	assert.Equal(t, n+1, c.Len())
}
