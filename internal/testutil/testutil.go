// Package testutil provides deterministic helpers shared by tests:
// a never-exhausting ID sequence, an in-memory Persister with failure
// injection, and a temp-dir store constructor.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/roach88/shelf/internal/catalog"
	"github.com/roach88/shelf/internal/store"
)

// SequenceGenerator yields "id-1", "id-2", ... without ever exhausting.
// Unlike catalog.FixedGenerator it suits tests that load arbitrarily many
// records.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceGenerator struct {
	mu sync.Mutex
	n  int
}

// NewSequenceGenerator creates a generator starting at "id-1".
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// Generate returns the next ID in the sequence.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// OpenStore creates a store in a temp directory, closed on test cleanup.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "shelf.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test store: %v", err)
		}
	})
	return s
}

// MemoryPersister is an in-memory session.Persister with save counting
// and failure injection. The stored value is a deep copy, so tests can
// verify exactly which snapshot each save carried.
type MemoryPersister struct {
	// SaveErr, when non-nil, is returned by every Save call. The saved
	// history is still not extended, mimicking a store that lost the write.
	SaveErr error

	stored catalog.Collection
	saves  []catalog.Collection
}

// NewMemoryPersister creates a persister preloaded with initial (may be nil).
func NewMemoryPersister(initial catalog.Collection) *MemoryPersister {
	return &MemoryPersister{stored: copyCollection(initial)}
}

// Load returns a copy of the stored collection with fresh IDs from gen,
// matching the real store's contract that IDs are session-scoped.
func (p *MemoryPersister) Load(_ context.Context, _ string, gen catalog.IDGenerator) catalog.Collection {
	out := make(catalog.Collection, len(p.stored))
	for i, r := range p.stored {
		out[i] = catalog.BookRecord{ID: gen.Generate(), Title: r.Title, Author: r.Author, Year: r.Year}
	}
	return out
}

// Save replaces the stored collection and records the snapshot.
func (p *MemoryPersister) Save(_ context.Context, _ string, c catalog.Collection) error {
	if p.SaveErr != nil {
		return p.SaveErr
	}
	p.stored = copyCollection(c)
	p.saves = append(p.saves, copyCollection(c))
	return nil
}

// SaveCount returns how many saves succeeded.
func (p *MemoryPersister) SaveCount() int { return len(p.saves) }

// SavedAt returns the i-th successful save's snapshot.
func (p *MemoryPersister) SavedAt(i int) catalog.Collection { return p.saves[i] }

// Stored returns the current stored collection.
func (p *MemoryPersister) Stored() catalog.Collection { return p.stored }

func copyCollection(c catalog.Collection) catalog.Collection {
	out := make(catalog.Collection, len(c))
	copy(out, c)
	return out
}
