package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fold normalizes a string for case-insensitive matching: NFC
// normalization first, then Unicode lower-casing. Both sides of every
// comparison must pass through the same fold, otherwise composed and
// decomposed spellings of the same title compare unequal.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Matches reports whether the record's title contains term under the
// case-insensitive fold. The empty term matches every record.
func Matches(rec BookRecord, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(fold(rec.Title), fold(term))
}
