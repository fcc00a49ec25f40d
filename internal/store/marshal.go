package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/shelf/internal/catalog"
)

// wireRecord is the durable shape of one record: exactly the three
// user-visible fields, in this order. In-memory IDs never appear here.
type wireRecord struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

// encodeCollection serializes the full collection as a JSON array.
// An empty collection encodes as "[]", not "null", so a freshly saved
// empty catalog round-trips cleanly.
func encodeCollection(c catalog.Collection) ([]byte, error) {
	recs := make([]wireRecord, len(c))
	for i, r := range c {
		recs[i] = wireRecord{Title: r.Title, Author: r.Author, Year: r.Year}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // titles with & or < must round-trip verbatim
	if err := enc.Encode(recs); err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}

	// json.Encoder adds a trailing newline, remove it
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeCollection parses a stored JSON array and stamps each record with
// a fresh ID from gen, preserving array order as collection order.
func decodeCollection(data []byte, gen catalog.IDGenerator) (catalog.Collection, error) {
	var recs []wireRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	col := make(catalog.Collection, len(recs))
	for i, r := range recs {
		col[i] = catalog.BookRecord{
			ID:     gen.Generate(),
			Title:  r.Title,
			Author: r.Author,
			Year:   r.Year,
		}
	}
	return col, nil
}
