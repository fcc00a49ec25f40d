package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/catalog"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Title  string
	Author string
	Year   string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Edit the catalog entry at a position",
		Long: `Replace fields of the entry at the given 1-based position.

Only the flags you pass change; omitted fields keep their current
value. A provided field must be non-empty.

Example:
  shelf edit 2 --year 1966
  shelf edit 2 --title "Dune Messiah" --year 1969`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().StringVar(&opts.Author, "author", "", "new author")
	cmd.Flags().StringVar(&opts.Year, "year", "", "new year (free text)")

	return cmd
}

func runEdit(opts *EditOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	pos, err := strconv.Atoi(arg)
	if err != nil {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadPosition,
			fmt.Sprintf("invalid position %q", arg), nil)
	}

	changed := cmd.Flags().Changed("title") || cmd.Flags().Changed("author") || cmd.Flags().Changed("year")
	if !changed {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadInput,
			"nothing to change: pass at least one of --title, --author, --year", nil)
	}

	ctx := commandContext(cmd)
	sess, cleanup, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}
	defer cleanup()

	current, ok := resolvePosition(sess.Collection(), pos)
	if !ok {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadPosition,
			fmt.Sprintf("no entry at position %d (catalog has %d)", pos, len(sess.Collection())), nil)
	}

	// Merge: provided flags override, omitted fields carry over. Field
	// validation happens here, never in the core.
	next := current
	if cmd.Flags().Changed("title") {
		next.Title = strings.TrimSpace(opts.Title)
	}
	if cmd.Flags().Changed("author") {
		next.Author = strings.TrimSpace(opts.Author)
	}
	if cmd.Flags().Changed("year") {
		next.Year = strings.TrimSpace(opts.Year)
	}
	if next.Title == "" || next.Author == "" || next.Year == "" {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadInput,
			"title, author, and year must be non-empty", nil)
	}

	sess.Dispatch(ctx, catalog.Edit{ID: current.ID, Record: next})

	return formatter.SuccessText(
		fmt.Sprintf("Updated entry %d: %s by %s (%s)", pos, next.Title, next.Author, next.Year),
		map[string]interface{}{
			"position": pos,
			"title":    next.Title,
			"author":   next.Author,
			"year":     next.Year,
		},
	)
}
