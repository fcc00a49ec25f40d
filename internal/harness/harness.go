package harness

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roach88/shelf/internal/catalog"
	"github.com/roach88/shelf/internal/session"
	"github.com/roach88/shelf/internal/store"
	"github.com/roach88/shelf/internal/testutil"
)

// countingPersister wraps the real store to count saves. The harness
// asserts on save counts to pin down the one-save-per-accepted-change
// contract.
type countingPersister struct {
	inner session.Persister
	saves int
}

func (p *countingPersister) Load(ctx context.Context, key string, gen catalog.IDGenerator) catalog.Collection {
	return p.inner.Load(ctx, key, gen)
}

func (p *countingPersister) Save(ctx context.Context, key string, c catalog.Collection) error {
	err := p.inner.Save(ctx, key, c)
	if err == nil {
		p.saves++
	}
	return err
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation, with a
// sequential ID generator for reproducible record identity.
//
// Execution flow:
//  1. Open a fresh in-memory store and seed the initial records
//  2. Create a session over the seeded store
//  3. Execute the steps in order, tracing each one
//  4. Evaluate assertions against the final state
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	if len(scenario.Initial) > 0 {
		seed := make(catalog.Collection, len(scenario.Initial))
		for i, r := range scenario.Initial {
			seed[i] = catalog.BookRecord{Title: r.Title, Author: r.Author, Year: r.Year}
		}
		if err := st.Save(ctx, store.CatalogKey, seed); err != nil {
			return nil, fmt.Errorf("failed to seed initial records: %w", err)
		}
	}

	persist := &countingPersister{inner: st}
	sess := session.New(ctx, persist, store.CatalogKey, testutil.NewSequenceGenerator())

	result := NewResult()
	for i, step := range scenario.Steps {
		executeStep(ctx, sess, int64(i+1), step, result)
	}

	result.SaveCount = persist.saves
	for _, rec := range sess.Collection() {
		result.Final = append(result.Final, RecordSpec{
			Title:  rec.Title,
			Author: rec.Author,
			Year:   rec.Year,
		})
	}

	for i, assertion := range scenario.Assertions {
		evaluateAssertion(i, &assertion, sess, result)
	}

	return result, nil
}

func executeStep(ctx context.Context, sess *session.Session, seq int64, step Step, result *Result) {
	switch {
	case step.Add != nil:
		rec := catalog.BookRecord{Title: step.Add.Title, Author: step.Add.Author, Year: step.Add.Year}
		sess.AddRecord(ctx, rec)
		result.AddTrace(seq, "add", true, map[string]string{"title": rec.Title})

	case step.Delete != nil:
		pos := step.Delete.Position
		detail := map[string]string{"position": strconv.Itoa(pos)}
		rec, ok := recordAt(sess.Collection(), pos)
		if !ok {
			result.AddTrace(seq, "delete", false, detail)
			return
		}
		detail["title"] = rec.Title
		applied := sess.Dispatch(ctx, catalog.Delete{ID: rec.ID})
		result.AddTrace(seq, "delete", applied, detail)

	case step.Edit != nil:
		pos := step.Edit.Position
		detail := map[string]string{"position": strconv.Itoa(pos)}
		current, ok := recordAt(sess.Collection(), pos)
		if !ok {
			result.AddTrace(seq, "edit", false, detail)
			return
		}
		next := current
		if step.Edit.Title != nil {
			next.Title = *step.Edit.Title
		}
		if step.Edit.Author != nil {
			next.Author = *step.Edit.Author
		}
		if step.Edit.Year != nil {
			next.Year = *step.Edit.Year
		}
		detail["title"] = next.Title
		applied := sess.Dispatch(ctx, catalog.Edit{ID: current.ID, Record: next})
		result.AddTrace(seq, "edit", applied, detail)

	case step.Search != nil:
		before := sess.SearchTerm()
		sess.SetSearchTerm(step.Search.Term)
		result.AddTrace(seq, "search", before != step.Search.Term,
			map[string]string{"term": step.Search.Term})

	case step.Page != nil:
		sess.SetPage(step.Page.Number)
		result.AddTrace(seq, "page", true,
			map[string]string{"number": strconv.Itoa(step.Page.Number)})
	}
}

// recordAt resolves a 1-based position in the full collection.
func recordAt(c catalog.Collection, pos int) (catalog.BookRecord, bool) {
	if pos < 1 || pos > len(c) {
		return catalog.BookRecord{}, false
	}
	return c[pos-1], true
}
