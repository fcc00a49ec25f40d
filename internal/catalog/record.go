package catalog

// BookRecord is one catalog entry.
//
// ID is the immutable in-memory identifier (see package doc). It is
// deliberately excluded from JSON: the durable format and the CLI's JSON
// output both carry only the three user-visible fields.
//
// Year is opaque text. It is never parsed as a number, so "c. 1965" or
// "1965?" are as valid as "1965".
type BookRecord struct {
	ID     string `json:"-"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

// Collection is the full ordered sequence of records and the unit of
// persistence. Order is insertion order; edits replace in place. There is
// no uniqueness constraint on field values - duplicate triples are fine,
// which is why identity lives on the ID and nowhere else.
type Collection []BookRecord

// IndexOf returns the position of the record with the given ID, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}
