package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/panel"
	"github.com/bnema/vackup/internal/adapters/out/dialog"
)

var errNotInteractive = errors.New("the volume panel needs an interactive terminal")

// newUICmd creates the ui command.
func newUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive volume panel",
		Long: `Open the volume panel: a table of every volume with its driver, link count,
containers, mount point and size. Pick an export directory with 'p' and
export the highlighted volume with 'e'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(cmd, opts)
		},
	}
}

func runPanel(cmd *cobra.Command, opts *rootOptions) error {
	if !isInteractiveTerminal() {
		return errNotInteractive
	}

	// Logs stay in the log file while the panel owns the screen.
	sink := panel.NewToastSink()
	a, err := newApp(cmd.Context(), opts, nil, sink)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := a.Context(cmd.Context())
	picker := dialog.NewPrompt(a.Config.Export.DefaultDir)

	return panel.Run(ctx, a.Volumes, picker, sink, a.Config.Export.DefaultDir)
}
