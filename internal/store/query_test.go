// ABOUTME: Tests for read-only store queries
// ABOUTME: Absent filters return the full list; id-set filters keep store order

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsByUser(t *testing.T) {
	posts := NewCollection[Post]("post", nil)
	require.NoError(t, posts.Load([]Post{
		{ID: 1, UserID: 1, Title: "a"},
		{ID: 2, UserID: 2, Title: "b"},
		{ID: 3, UserID: 1, Title: "c"},
	}))
	ctx := context.Background()

	got, err := PostsByUser(ctx, posts, 1)
	require.NoError(t, err)
	assert.Equal(t, []Post{{ID: 1, UserID: 1, Title: "a"}, {ID: 3, UserID: 1, Title: "c"}}, got)

	got, err = PostsByUser(ctx, posts, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3, "no user filter returns every post")

	got, err = PostsByUser(ctx, posts, 99)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewsByIDs(t *testing.T) {
	news := NewCollection[News]("news", nil)
	require.NoError(t, news.Load(DefaultSeed().News))
	ctx := context.Background()

	got, err := NewsByIDs(ctx, news, []int64{4, 2, 42})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID, "results follow store order, not request order")
	assert.Equal(t, int64(4), got[1].ID)

	got, err = NewsByIDs(ctx, news, nil)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestUsersByIDs(t *testing.T) {
	users := newTestUsers(t, User{ID: 1, Name: "A"}, User{ID: 2, Name: "B"}, User{ID: 3, Name: "C"})
	ctx := context.Background()

	got, err := UsersByIDs(ctx, users, []int64{3, 3})
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 3, Name: "C"}}, got)

	got, err = UsersByIDs(ctx, users, []int64{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
