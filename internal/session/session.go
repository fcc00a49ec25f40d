// Package session wires the pure catalog reducer to durable storage and
// holds the controller-side view state (search term, page number).
//
// The pipeline per action is explicit: apply action, get the new
// collection, persist it, then let the shell re-render. Persistence is an
// injected capability (Persister), so the reducer and the session itself
// test without a real database.
package session

import (
	"context"
	"log/slog"

	"github.com/roach88/shelf/internal/catalog"
)

// Persister is the durable-storage capability the session depends on.
// *store.Store satisfies it; tests substitute in-memory or failing fakes.
type Persister interface {
	Load(ctx context.Context, key string, gen catalog.IDGenerator) catalog.Collection
	Save(ctx context.Context, key string, c catalog.Collection) error
}

// Session owns the in-memory collection and the UI state that is not part
// of it (search term, page number).
//
// Single-writer: a Session is driven by exactly one caller, one action at
// a time, and is not safe for concurrent use. That is the whole
// concurrency model - no locks, no transactions, no second writer.
type Session struct {
	persist Persister
	key     string
	ids     catalog.IDGenerator
	clock   *Clock

	collection catalog.Collection
	searchTerm string
	page       int
}

// New loads the stored collection from p and returns a ready session.
// A missing or corrupt stored value silently becomes an empty catalog;
// the store logs the details.
func New(ctx context.Context, p Persister, key string, ids catalog.IDGenerator) *Session {
	s := &Session{
		persist: p,
		key:     key,
		ids:     ids,
		clock:   NewClock(),
		page:    1,
	}
	s.collection = p.Load(ctx, key, ids)
	return s
}

// Dispatch applies one action and, when the action changed the collection,
// issues exactly one Save before returning. No-op actions (unknown ID,
// unrecognized action) do not write.
//
// Because Dispatch is synchronous, the save reflecting action N completes
// (or fails) strictly before action N+1 can be processed. A save failure
// never rolls back memory: the session keeps serving the new state and the
// failure is logged. Best effort, no retries.
//
// Returns true when the action was applied.
func (s *Session) Dispatch(ctx context.Context, a catalog.Action) bool {
	seq := s.clock.Next()

	next, applied := catalog.Apply(s.collection, a)
	if !applied {
		slog.Debug("action was a no-op", "seq", seq)
		return false
	}

	s.collection = next
	if err := s.persist.Save(ctx, s.key, s.collection); err != nil {
		slog.Error("failed to persist catalog, continuing from memory",
			"seq", seq, "key", s.key, "error", err)
	}
	return true
}

// AddRecord stamps a fresh immutable ID on rec and dispatches the append.
// Returns the assigned ID. This is the one place IDs are minted for new
// records; the reducer itself never generates anything.
func (s *Session) AddRecord(ctx context.Context, rec catalog.BookRecord) string {
	rec.ID = s.ids.Generate()
	s.Dispatch(ctx, catalog.Add{Record: rec})
	return rec.ID
}

// Collection returns the current full collection in order. Callers must
// treat the returned slice as read-only; mutating it bypasses the reducer
// and the persistence contract.
func (s *Session) Collection() catalog.Collection {
	return s.collection
}

// View computes the visible page for the session's current search term
// and page number.
func (s *Session) View() catalog.View {
	return catalog.ComputeView(s.collection, s.searchTerm, s.page)
}

// ViewAt computes a view for an explicit term and page without touching
// the session's own view state. One-shot shells (list) use this.
func (s *Session) ViewAt(term string, page int) catalog.View {
	return catalog.ComputeView(s.collection, term, page)
}

// SetSearchTerm replaces the search term. Changing the term resets the
// page to 1: a stale page over a narrower filter would silently render an
// empty window, so the reset is deliberate policy. Setting the same term
// again leaves the page alone.
func (s *Session) SetSearchTerm(term string) {
	if term == s.searchTerm {
		return
	}
	s.searchTerm = term
	s.page = 1
}

// SetPage sets the 1-based page number. Values below 1 clamp to 1; values
// past the last page are allowed and render empty, matching the view
// computation's tolerance.
func (s *Session) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
}

// SearchTerm returns the current search term.
func (s *Session) SearchTerm() string { return s.searchTerm }

// Page returns the current 1-based page number.
func (s *Session) Page() int { return s.page }

// Seq returns the number of actions dispatched so far.
func (s *Session) Seq() int64 { return s.clock.Current() }
