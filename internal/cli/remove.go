package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/catalog"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove the catalog entry at a position",
		Long: `Remove the entry at the given 1-based position.

Positions are the numbers printed by 'shelf list' and always refer to
the full catalog, not to a filtered page.

Example:
  shelf remove 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	pos, err := strconv.Atoi(arg)
	if err != nil {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadPosition,
			fmt.Sprintf("invalid position %q", arg), nil)
	}

	ctx := commandContext(cmd)
	sess, cleanup, err := openSession(ctx, opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}
	defer cleanup()

	rec, ok := resolvePosition(sess.Collection(), pos)
	if !ok {
		return outputCommandError(formatter, ExitCommandError, ErrCodeBadPosition,
			fmt.Sprintf("no entry at position %d (catalog has %d)", pos, len(sess.Collection())), nil)
	}

	sess.Dispatch(ctx, catalog.Delete{ID: rec.ID})

	return formatter.SuccessText(
		fmt.Sprintf("Removed %q by %s (%s)", rec.Title, rec.Author, rec.Year),
		map[string]interface{}{
			"position": pos,
			"title":    rec.Title,
			"author":   rec.Author,
			"year":     rec.Year,
		},
	)
}
