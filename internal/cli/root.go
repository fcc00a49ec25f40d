// Package cli implements the shelf command shell: the thin I/O layer that
// turns flags and arguments into catalog actions and renders views. All
// catalog semantics live in internal/catalog and internal/session; this
// package only resolves user-facing positions to record IDs and formats
// output.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Format   string // "json" | "text"
	Verbose  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the shelf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "shelf - a personal book catalog",
		Long: `Maintain a personal catalog of books (title, author, year).

Records are kept in a local SQLite database and browsed in fixed-size
pages, filtered by a case-insensitive title search. Positions printed by
'shelf list' are positions in the full catalog and are what 'remove' and
'edit' accept.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", defaultDatabasePath(), "path to the catalog database")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewBrowseCommand(opts))

	return cmd
}

// configureLogging routes slog to stderr so JSON output on stdout stays
// parseable. Debug level only with --verbose.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// defaultDatabasePath picks the database location: $SHELF_DB if set,
// otherwise the user config directory, falling back to the working
// directory when no config dir is resolvable.
func defaultDatabasePath() string {
	if p := os.Getenv("SHELF_DB"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shelf.db"
	}
	return filepath.Join(dir, "shelf", "shelf.db")
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
