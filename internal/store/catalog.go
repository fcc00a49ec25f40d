package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/shelf/internal/catalog"
)

// CatalogKey is the key under which the catalog is persisted. This key and
// the JSON array value format are the entire durable contract; state
// written by earlier versions of the tool must keep loading unchanged.
const CatalogKey = "books"

// Load reads and decodes the collection stored under key.
//
// Load never fails from the caller's point of view: a missing key, an
// unreadable row, and an undecodable value all degrade to an empty
// collection with a logged warning. Records are stamped with fresh IDs
// from gen because identifiers are session-scoped and not part of the
// durable format.
func (s *Store) Load(ctx context.Context, key string, gen catalog.IDGenerator) catalog.Collection {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		slog.Debug("no stored catalog, starting empty", "key", key)
		return catalog.Collection{}
	}
	if err != nil {
		slog.Warn("failed to read stored catalog, starting empty", "key", key, "error", err)
		return catalog.Collection{}
	}

	col, err := decodeCollection([]byte(value), gen)
	if err != nil {
		slog.Warn("stored catalog is corrupt, starting empty", "key", key, "error", err)
		return catalog.Collection{}
	}
	return col
}

// Save encodes the full collection and replaces the value under key.
// The write is always a full replacement, never incremental. Callers own
// the degraded-persistence policy: on error the in-memory collection is
// untouched and the session keeps operating from memory.
func (s *Store) Save(ctx context.Context, key string, c catalog.Collection) error {
	value, err := encodeCollection(c)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	return nil
}
