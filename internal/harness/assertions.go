package harness

import (
	"fmt"

	"github.com/roach88/shelf/internal/session"
)

// evaluateAssertion checks one assertion against the final session state
// and records any failure on the result.
func evaluateAssertion(index int, a *Assertion, sess *session.Session, result *Result) {
	switch a.Type {
	case AssertCollectionSize:
		got := len(sess.Collection())
		if got != a.Count {
			result.AddError(fmt.Sprintf(
				"assertions[%d] collection_size: expected %d records, got %d",
				index, a.Count, got))
		}

	case AssertRecordAt:
		col := sess.Collection()
		rec, ok := recordAt(col, a.Position)
		if !ok {
			result.AddError(fmt.Sprintf(
				"assertions[%d] record_at: position %d out of range (collection has %d)",
				index, a.Position, len(col)))
			return
		}
		want := *a.Expect
		if rec.Title != want.Title || rec.Author != want.Author || rec.Year != want.Year {
			result.AddError(fmt.Sprintf(
				"assertions[%d] record_at %d: expected %s/%s/%s, got %s/%s/%s",
				index, a.Position,
				want.Title, want.Author, want.Year,
				rec.Title, rec.Author, rec.Year))
		}

	case AssertView:
		view := sess.View()
		if a.Page != 0 && view.Page != a.Page {
			result.AddError(fmt.Sprintf(
				"assertions[%d] view: expected page %d, got %d", index, a.Page, view.Page))
		}
		if a.Matches != nil && view.Matches != *a.Matches {
			result.AddError(fmt.Sprintf(
				"assertions[%d] view: expected %d matches, got %d", index, *a.Matches, view.Matches))
		}
		if a.TotalPages != nil && view.TotalPages != *a.TotalPages {
			result.AddError(fmt.Sprintf(
				"assertions[%d] view: expected %d total pages, got %d",
				index, *a.TotalPages, view.TotalPages))
		}
		if a.Titles != nil {
			got := make([]string, len(view.Records))
			for i, rec := range view.Records {
				got[i] = rec.Title
			}
			if !equalStrings(got, a.Titles) {
				result.AddError(fmt.Sprintf(
					"assertions[%d] view: expected titles %v, got %v", index, a.Titles, got))
			}
		}

	case AssertSaveCount:
		if result.SaveCount != a.Count {
			result.AddError(fmt.Sprintf(
				"assertions[%d] save_count: expected %d saves, got %d",
				index, a.Count, result.SaveCount))
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
