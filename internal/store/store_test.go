package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shelf/internal/catalog"
)

// seqGen is a never-exhausting deterministic ID source for store tests.
type seqGen struct{ n int }

func (g *seqGen) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "shelf.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestOpen_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.verifyPragma("journal_mode", "wal"))
	require.NoError(t, s.verifyPragma("synchronous", "1")) // NORMAL
	require.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	require.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Save(context.Background(), CatalogKey, catalog.Collection{
		{ID: "x", Title: "Dune", Author: "Frank Herbert", Year: "1965"},
	}))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	col := s2.Load(context.Background(), CatalogKey, &seqGen{})
	require.Len(t, col, 1)
	assert.Equal(t, "Dune", col[0].Title)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}

func TestLoad_MissingKeyReturnsEmpty(t *testing.T) {
	s := openTestStore(t)

	col := s.Load(context.Background(), CatalogKey, &seqGen{})
	assert.NotNil(t, col)
	assert.Empty(t, col)
}

func TestLoad_CorruptValueReturnsEmpty(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, CatalogKey, `{"not":"an array"`)
	require.NoError(t, err)

	col := s.Load(context.Background(), CatalogKey, &seqGen{})
	assert.Empty(t, col, "corrupt value must degrade to empty, never error")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := catalog.Collection{
		{ID: "a", Title: "Dune", Author: "Frank Herbert", Year: "1965"},
		{ID: "b", Title: "Foundation", Author: "Isaac Asimov", Year: "1951"},
		{ID: "c", Title: "Dune", Author: "Frank Herbert", Year: "1965"}, // duplicate triple
	}
	require.NoError(t, s.Save(ctx, CatalogKey, want))

	got := s.Load(ctx, CatalogKey, &seqGen{})
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].Title, got[i].Title, "order and titles preserved")
		assert.Equal(t, want[i].Author, got[i].Author)
		assert.Equal(t, want[i].Year, got[i].Year)
	}
	assert.Equal(t, "id-1", got[0].ID, "loads mint fresh session-scoped IDs")
	assert.Equal(t, "id-3", got[2].ID)
}

func TestSave_FullReplace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, CatalogKey, catalog.Collection{
		{ID: "a", Title: "Dune", Author: "Frank Herbert", Year: "1965"},
		{ID: "b", Title: "Foundation", Author: "Isaac Asimov", Year: "1951"},
	}))
	require.NoError(t, s.Save(ctx, CatalogKey, catalog.Collection{
		{ID: "b", Title: "Foundation", Author: "Isaac Asimov", Year: "1951"},
	}))

	got := s.Load(ctx, CatalogKey, &seqGen{})
	require.Len(t, got, 1, "save replaces the whole value")
	assert.Equal(t, "Foundation", got[0].Title)
}

func TestSave_EmptyCollection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, CatalogKey, catalog.Collection{}))

	var raw string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, CatalogKey).Scan(&raw))
	assert.Equal(t, "[]", raw, `empty catalog persists as "[]", not "null"`)
}

func TestSave_WireFormatExactShape(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, CatalogKey, catalog.Collection{
		{ID: "ignored", Title: "Dune & Son <tm>", Author: "Frank Herbert", Year: "1965"},
	}))

	var raw string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, CatalogKey).Scan(&raw))

	// The durable contract: an array of three-field objects, no ID, no
	// HTML escaping of & or <.
	assert.Equal(t, `[{"title":"Dune & Son <tm>","author":"Frank Herbert","year":"1965"}]`, raw)
}

func TestLoad_AcceptsForeignWriterShape(t *testing.T) {
	s := openTestStore(t)

	// A value written by a prior implementation: different key order,
	// extra whitespace.
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, CatalogKey,
		` [ {"year":"1818","title":"Frankenstein","author":"Mary Shelley"} ] `)
	require.NoError(t, err)

	col := s.Load(context.Background(), CatalogKey, &seqGen{})
	require.Len(t, col, 1)
	assert.Equal(t, "Frankenstein", col[0].Title)
	assert.Equal(t, "Mary Shelley", col[0].Author)
	assert.Equal(t, "1818", col[0].Year)
}
