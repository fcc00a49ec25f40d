package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	db := testDB(t)
	path := writeCUE(t, t.TempDir(), "list.cue", `
books: [
	{title: "Dune", author: "Frank Herbert", year: "1965"},
	{title: "Foundation", author: "Isaac Asimov", year: "1951"},
	{title: "Hyperion", author: "Dan Simmons", year: "1989"},
]
`)

	out, err := runShelf(t, db, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 book(s)")
	assert.Contains(t, out, "catalog now has 3")

	out, err = runShelf(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Dune")
	assert.Contains(t, out, "2. Foundation")
	assert.Contains(t, out, "3. Hyperion")
}

func TestImportAppendsToExisting(t *testing.T) {
	db := testDB(t)

	_, err := runShelf(t, db, "add", "--title", "Neuromancer", "--author", "William Gibson", "--year", "1984")
	require.NoError(t, err)

	path := writeCUE(t, t.TempDir(), "list.cue", `
books: [{title: "Dune", author: "Frank Herbert", year: "1965"}]
`)

	out, err := runShelf(t, db, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog now has 2")

	out, err = runShelf(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Neuromancer")
	assert.Contains(t, out, "2. Dune")
}

func TestImportAllOrNothing(t *testing.T) {
	db := testDB(t)
	path := writeCUE(t, t.TempDir(), "list.cue", `
books: [
	{title: "Dune", author: "Frank Herbert", year: "1965"},
	{title: "Broken", author: "Somebody"},
]
`)

	_, err := runShelf(t, db, "import", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "import aborted, 1 problem(s)")

	// Nothing from the bad file may have landed.
	out, err := runShelf(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "The catalog is empty.")
}

func TestImportEmptyList(t *testing.T) {
	db := testDB(t)
	path := writeCUE(t, t.TempDir(), "list.cue", `books: []`)

	_, err := runShelf(t, db, "import", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no books found")
}

func TestImportMissingFile(t *testing.T) {
	db := testDB(t)

	_, err := runShelf(t, db, "import", "/nonexistent/list.cue")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E005")
}
