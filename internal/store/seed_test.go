// ABOUTME: Tests for store construction and seed file loading
// ABOUTME: Covers the default population and YAML/TOML seed formats

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_DefaultSeed(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)

	news, err := s.News.List(context.Background())
	require.NoError(t, err)
	require.Len(t, news, 5)
	assert.Equal(t, News{ID: 1, Title: "Note 1", Body: "Content 1", PostImage: "Post image 1"}, news[0])
	assert.Equal(t, "Note 5", news[4].Title)

	assert.Equal(t, map[string]int{"news": 5, "post": 0, "user": 0}, s.Counts())
}

func TestNew_EmptySeed(t *testing.T) {
	s, err := New(Options{Seed: &Seed{}})
	require.NoError(t, err)

	n, err := s.News.Create(context.Background(), News{Title: "first"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
}

func TestNew_UnknownStrategy(t *testing.T) {
	s, err := New(Options{IDStrategy: "uuid"})
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), `unknown id strategy "uuid"`)
}

func TestNew_InvalidSeed(t *testing.T) {
	_, err := New(Options{Seed: &Seed{Posts: []Post{{ID: -1}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading seed")
}

func TestLoadSeed_YAML(t *testing.T) {
	path := writeSeedFile(t, "seed.yaml", `
news:
  - id: 10
    title: "Launch"
    body: "We are live"
    post_image: "launch.png"
    status: 2
posts:
  - user_id: 1
    title: "hello"
users:
  - id: 1
    name: "Leanne Graham"
    address:
      street: "Kulas Light"
      geo:
        lat: "-37.3159"
        lng: "81.1496"
    company:
      name: "Romaguera-Crona"
      catch_phrase: "Multi-layered"
      bs: "harness"
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)

	require.Len(t, seed.News, 1)
	assert.Equal(t, News{ID: 10, Title: "Launch", Body: "We are live", PostImage: "launch.png", Status: NewsStatusPublished}, seed.News[0])
	require.Len(t, seed.Posts, 1)
	assert.Equal(t, int64(1), seed.Posts[0].UserID)
	require.Len(t, seed.Users, 1)
	require.NotNil(t, seed.Users[0].Address)
	require.NotNil(t, seed.Users[0].Address.Geo)
	assert.Equal(t, "81.1496", seed.Users[0].Address.Geo.Lng)
	require.NotNil(t, seed.Users[0].Company)
	assert.Equal(t, "harness", seed.Users[0].Company.BS)

	s, err := New(Options{Seed: seed})
	require.NoError(t, err)
	p, err := s.Posts.Get(context.Background(), 1)
	require.NoError(t, err, "seed entries without an id are allocated one")
	assert.Equal(t, "hello", p.Title)
}

func TestLoadSeed_TOML(t *testing.T) {
	path := writeSeedFile(t, "seed.toml", `
[[news]]
title = "From TOML"
status = 1

[[users]]
id = 3
name = "Clementine"

[users.company]
name = "Keebler LLC"
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)

	require.Len(t, seed.News, 1)
	assert.Equal(t, "From TOML", seed.News[0].Title)
	assert.Equal(t, NewsStatusDraft, seed.News[0].Status)
	require.Len(t, seed.Users, 1)
	assert.Nil(t, seed.Users[0].Address)
	require.NotNil(t, seed.Users[0].Company)
	assert.Equal(t, "Keebler LLC", seed.Users[0].Company.Name)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading seed file")

	_, err = LoadSeed(writeSeedFile(t, "seed.json", `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = LoadSeed(writeSeedFile(t, "bad.yaml", "news: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing seed file")
}
