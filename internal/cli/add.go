package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/catalog"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Title  string
	Author string
	Year   string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book to the end of the catalog.

All three fields are required and must be non-empty. The year is free
text; "c. 1965" is as valid as "1965". Duplicates are allowed.

Example:
  shelf add --title "Dune" --author "Frank Herbert" --year 1965`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "book author (required)")
	cmd.Flags().StringVar(&opts.Year, "year", "", "publication year, free text (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	// Field validation is this layer's job; the core accepts anything.
	rec := catalog.BookRecord{
		Title:  strings.TrimSpace(opts.Title),
		Author: strings.TrimSpace(opts.Author),
		Year:   strings.TrimSpace(opts.Year),
	}
	if rec.Title == "" || rec.Author == "" || rec.Year == "" {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadInput,
			"title, author, and year must be non-empty", nil)
	}

	ctx := commandContext(cmd)
	sess, cleanup, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}
	defer cleanup()

	sess.AddRecord(ctx, rec)
	position := len(sess.Collection())

	return formatter.SuccessText(
		fmt.Sprintf("Added %q by %s (%s) at position %d", rec.Title, rec.Author, rec.Year, position),
		map[string]interface{}{
			"position": position,
			"title":    rec.Title,
			"author":   rec.Author,
			"year":     rec.Year,
		},
	)
}
