package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/vackup/internal/adapters/out/dialog"
	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
)

// newExportCmd creates the export command.
func newExportCmd(opts *rootOptions) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "export <volume>",
		Short: "Export a volume to <dir>/<volume>.tar.gz",
		Long: `Export a volume into a gzipped tarball named after the volume. The
destination directory comes from --to, then from export.default_dir in the
configuration, and is otherwise asked for interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr(), terminalNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := a.Context(cmd.Context())

			dir := strings.TrimSpace(to)
			if dir == "" {
				dir = a.Config.Export.DefaultDir
			}
			if dir == "" && isInteractiveTerminal() {
				dir, err = pickExportDir(ctx, dialog.NewPrompt(""))
				if err != nil {
					return err
				}
				if dir == "" {
					return cliWriteLine(cmd.ErrOrStderr(), cliRenderMuted("Export canceled"))
				}
			}
			if dir == "" {
				return domain.ErrNoExportPath
			}

			if err := a.Volumes.Export(ctx, args[0], dir); err != nil {
				// Already reported by the notifier.
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Destination directory")

	return cmd
}

// pickExportDir returns the first chosen directory, or "" when the dialog
// was canceled.
func pickExportDir(ctx context.Context, picker out.DirectoryPicker) (string, error) {
	sel, err := picker.PickDirectory(ctx)
	if err != nil {
		return "", err
	}
	if sel.Canceled || len(sel.Paths) == 0 {
		return "", nil
	}
	return sel.Paths[0], nil
}
