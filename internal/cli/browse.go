package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open a full-screen interactive browser over the catalog.

Keys:
  up/down        move the selection
  left/right     previous/next page
  /              incremental title search (enter/esc to leave)
  a              add a book
  e              edit the selected book
  d              delete the selected book (confirm with y)
  q or ctrl+c    quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(rootOpts, cmd)
		},
	}

	return cmd
}

func runBrowse(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	ctx := commandContext(cmd)
	sess, cleanup, err := openSession(ctx, opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}
	defer cleanup()

	model := tui.NewModel(sess)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return outputCommandError(formatter, ExitFailure, ErrCodeGeneric,
			fmt.Sprintf("browser exited with error: %v", err), nil)
	}
	return nil
}
