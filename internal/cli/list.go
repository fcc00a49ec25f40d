package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Search string
	Page   int
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, one page at a time",
		Long: `List catalog entries in fixed-size pages of 5.

--search filters by case-insensitive substring match on the title. The
printed positions are positions in the full catalog regardless of any
filter, so they can be handed to 'remove' and 'edit' directly. Asking
for a page past the end prints an empty page, not an error.

Example:
  shelf list
  shelf list --search dune --page 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive title filter")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "1-based page number")

	return cmd
}

// listEntry is one row of the machine-readable listing.
type listEntry struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     string `json:"year"`
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	if opts.Page < 1 {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadInput, "page must be >= 1", nil)
	}

	ctx := commandContext(cmd)
	sess, cleanup, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}
	defer cleanup()

	col := sess.Collection()
	view := sess.ViewAt(opts.Search, opts.Page)
	entries := viewEntries(col, view)

	return formatter.SuccessText(
		renderListing(view, entries, opts.Search),
		map[string]interface{}{
			"records":     entries,
			"page":        view.Page,
			"total_pages": view.TotalPages,
			"matches":     view.Matches,
		},
	)
}

// viewEntries pairs each visible record with its position in the full
// collection. Display positions always come from the unfiltered ordering;
// a filtered listing still prints the numbers remove/edit expect.
func viewEntries(col catalog.Collection, view catalog.View) []listEntry {
	entries := make([]listEntry, len(view.Records))
	for i, rec := range view.Records {
		entries[i] = listEntry{
			Position: col.IndexOf(rec.ID) + 1,
			Title:    rec.Title,
			Author:   rec.Author,
			Year:     rec.Year,
		}
	}
	return entries
}

// renderListing produces the human-readable page.
func renderListing(view catalog.View, entries []listEntry, search string) string {
	var b strings.Builder

	if view.Matches == 0 {
		if search == "" {
			b.WriteString("The catalog is empty.")
		} else {
			fmt.Fprintf(&b, "No titles match %q.", search)
		}
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "%3d. %s by %s (%s)\n", e.Position, e.Title, e.Author, e.Year)
	}
	if len(entries) == 0 {
		fmt.Fprintf(&b, "(empty page)\n")
	}

	noun := "entries"
	if view.Matches == 1 {
		noun = "entry"
	}
	if search == "" {
		fmt.Fprintf(&b, "page %d/%d (%d %s)", view.Page, view.TotalPages, view.Matches, noun)
	} else {
		fmt.Fprintf(&b, "page %d/%d (%d %s matching %q)", view.Page, view.TotalPages, view.Matches, noun, search)
	}
	return b.String()
}
