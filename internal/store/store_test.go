// ABOUTME: Tests for the store set constructor, seeding and counts
// ABOUTME: Also covers news status parsing used by seeds and the admin CLI

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultSeedGet(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)

	n, err := s.News.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Note 3", n.Title)
	assert.Equal(t, "Content 3", n.Body)
	assert.Equal(t, "Post image 3", n.PostImage)
}

func TestNew_ExplicitSeed(t *testing.T) {
	s, err := New(Options{
		IDStrategy: StrategyHighWater,
		Seed: &Seed{
			Posts: []Post{{ID: 4, UserID: 1, Title: "seeded"}},
			Users: []User{{Name: "no id"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"news": 0, "post": 1, "user": 1}, s.Counts())

	u, err := s.Users.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "no id", u.Name)

	p, err := s.Posts.Create(context.Background(), Post{Title: "next"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
}

func TestNew_HighWaterDefaultSeedNeverReissues(t *testing.T) {
	s, err := New(Options{IDStrategy: StrategyHighWater})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.News.Delete(ctx, 5))
	n, err := s.News.Create(ctx, News{Title: "after delete"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), n.ID)

	_, err = s.News.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_AllocatorsArePerCollection(t *testing.T) {
	s, err := New(Options{
		IDStrategy: StrategyHighWater,
		Seed:       &Seed{News: []News{{ID: 40}}},
	})
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Posts.Create(ctx, Post{Title: "first post"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID, "news ids do not raise the post mark")

	u, err := s.Users.Create(ctx, User{Name: "first user"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
}

func TestNew_DuplicateSeedIDs(t *testing.T) {
	_, err := New(Options{Seed: &Seed{News: []News{{ID: 1}, {ID: 1}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading seed")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestCollectionsAreIndependent(t *testing.T) {
	s, err := New(Options{Seed: &Seed{}})
	require.NoError(t, err)
	ctx := context.Background()

	n, err := s.News.Create(ctx, News{Title: "n"})
	require.NoError(t, err)
	p, err := s.Posts.Create(ctx, Post{Title: "p"})
	require.NoError(t, err)
	u, err := s.Users.Create(ctx, User{Name: "u"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(1), u.ID)
}

func TestRecordKeys(t *testing.T) {
	n := News{ID: 1, Title: "n"}
	moved := n.WithKey(9)
	assert.Equal(t, int64(9), moved.Key())
	assert.Equal(t, int64(1), n.Key(), "WithKey leaves the receiver alone")
	assert.Equal(t, n, n.Clone())

	p := Post{ID: 2, UserID: 3}
	assert.Equal(t, int64(7), p.WithKey(7).Key())
	assert.Equal(t, int64(2), p.Key())
	assert.Equal(t, p, p.Clone())

	u := User{ID: 4, Company: &Company{Name: "Acme"}}
	c := u.Clone()
	c.Company.Name = "Other"
	assert.Equal(t, "Acme", u.Company.Name, "Clone does not share nested records")
	assert.Equal(t, int64(5), u.WithKey(5).Key())
}

func TestParseNewsStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    NewsStatus
		wantErr bool
	}{
		{"", NewsStatusUnspecified, false},
		{"draft", NewsStatusDraft, false},
		{"Published", NewsStatusPublished, false},
		{"3", NewsStatusArchived, false},
		{"retracted", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNewsStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseNewsStatus(got.String())))
		})
	}
}

func must(s NewsStatus, err error) NewsStatus {
	if err != nil {
		panic(err)
	}
	return s
}
