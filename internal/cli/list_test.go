package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestListRendering pins the exact text layout of the listing with golden
// files. Regenerate with: go test ./internal/cli -update
func TestListRendering(t *testing.T) {
	db := testDB(t)

	seed := [][]string{
		{"Dune", "Frank Herbert", "1965"},
		{"Dune Messiah", "Frank Herbert", "1969"},
		{"Children of Dune", "Frank Herbert", "1976"},
		{"Foundation", "Isaac Asimov", "1951"},
		{"Hyperion", "Dan Simmons", "1989"},
		{"Neuromancer", "William Gibson", "1984"},
		{"Snow Crash", "Neal Stephenson", "1992"},
	}
	for _, s := range seed {
		_, err := runShelf(t, db, "add", "--title", s[0], "--author", s[1], "--year", s[2])
		require.NoError(t, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	out, err := runShelf(t, db, "list")
	require.NoError(t, err)
	g.Assert(t, "list_page_1", []byte(out))

	out, err = runShelf(t, db, "list", "--page", "2")
	require.NoError(t, err)
	g.Assert(t, "list_page_2", []byte(out))

	out, err = runShelf(t, db, "list", "--search", "dune")
	require.NoError(t, err)
	g.Assert(t, "list_search_dune", []byte(out))
}
