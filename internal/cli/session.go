package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/catalog"
	"github.com/roach88/shelf/internal/session"
	"github.com/roach88/shelf/internal/store"
)

// commandContext returns the command's context, or a fresh background
// context when the command runs outside Execute (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openSession opens the database at opts.Database and loads the catalog
// into a session. The returned cleanup closes the store and must always
// be called.
func openSession(ctx context.Context, opts *RootOptions) (*session.Session, func(), error) {
	if dir := filepath.Dir(opts.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
		}
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	sess := session.New(ctx, st, store.CatalogKey, catalog.UUIDv7Generator{})

	cleanup := func() {
		if err := st.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}
	return sess, cleanup, nil
}

// resolvePosition maps a 1-based position (as printed by 'shelf list')
// to the record at that position in the full collection. Positions are
// resolved against the freshly loaded collection, immediately before
// dispatch, never against a stale or filtered rendering.
func resolvePosition(c catalog.Collection, pos int) (catalog.BookRecord, bool) {
	if pos < 1 || pos > len(c) {
		return catalog.BookRecord{}, false
	}
	return c[pos-1], true
}
