// ABOUTME: Tests for id allocation strategies
// ABOUTME: MaxPlusOne reissues a deleted maximum, HighWater never does

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxPlusOne(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want int64
	}{
		{"empty", nil, 1},
		{"single", []int64{1}, 2},
		{"unordered", []int64{4, 9, 2}, 10},
		{"gap", []int64{1, 5}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxPlusOne{}.NextID(tt.ids))
		})
	}
}

func TestHighWater_NeverReissues(t *testing.T) {
	alloc, err := NewAllocator(StrategyHighWater)
	require.NoError(t, err)

	c := NewCollection[News]("news", alloc)
	require.NoError(t, c.Load(DefaultSeed().News))
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, 5))
	n, err := c.Create(ctx, News{Title: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), n.ID)

	require.NoError(t, c.Delete(ctx, 6))
	n, err = c.Create(ctx, News{Title: "fresher"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), n.ID)
}

func TestHighWater_ObserveRaisesMark(t *testing.T) {
	h := &HighWater{}
	h.Observe(7)
	h.Observe(3)

	assert.Equal(t, int64(8), h.NextID(nil), "observed ids count even when no longer present")
	assert.Equal(t, int64(9), h.NextID([]int64{2}))
}

func TestHighWater_LoadAllocatesAboveExplicitIDs(t *testing.T) {
	c := NewCollection[Post]("post", &HighWater{})
	require.NoError(t, c.Load([]Post{{ID: 9, Title: "explicit"}, {Title: "implicit"}}))

	p, err := c.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "implicit", p.Title)
}

func TestMaxPlusOne_IsNotObserver(t *testing.T) {
	var a Allocator = MaxPlusOne{}
	_, ok := a.(Observer)
	assert.False(t, ok)
}

func TestNewAllocator(t *testing.T) {
	a, err := NewAllocator("")
	require.NoError(t, err)
	assert.IsType(t, MaxPlusOne{}, a)

	a, err = NewAllocator(StrategyMaxPlusOne)
	require.NoError(t, err)
	assert.IsType(t, MaxPlusOne{}, a)

	a, err = NewAllocator(StrategyHighWater)
	require.NoError(t, err)
	assert.IsType(t, &HighWater{}, a)

	_, err = NewAllocator("random")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random")
}
