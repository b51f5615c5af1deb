// ABOUTME: Golden-file tests for bulletin-admin text output
// ABOUTME: Table layouts are compared against testdata/golden with goldie

package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func assertGolden(t *testing.T, name, actual string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestGolden_NewsList(t *testing.T) {
	noColor(t)
	addr := startServer(t)

	out, err := run(t, addr, "news", "list")
	require.NoError(t, err)
	assertGolden(t, "news_list", out)
}

func TestGolden_EmptyPosts(t *testing.T) {
	noColor(t)
	addr := startServer(t)

	out, err := run(t, addr, "posts", "list")
	require.NoError(t, err)
	assertGolden(t, "posts_empty", out)
}

func TestGolden_DeleteConfirmation(t *testing.T) {
	noColor(t)
	addr := startServer(t)

	out, err := run(t, addr, "news", "delete", "2")
	require.NoError(t, err)
	assertGolden(t, "news_delete", out)
}
