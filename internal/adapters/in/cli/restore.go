package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vackup/internal/adapters/out/dialog"
)

var errConfirmationRequired = errors.New("refusing to overwrite a volume without --yes on a non-interactive terminal")

// confirmFunc asks a yes/no question.
type confirmFunc func(message string, defaultYes bool) (bool, error)

// newImportCmd creates the import command.
func newImportCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <volume> <archive>",
		Short: "Restore a volume from an exported archive",
		Long: `Replace the content of a volume with an archive produced by export.
Running containers that use the volume are stopped for the duration of the
restore and started again afterwards.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volumeName, archive := args[0], args[1]

			msg := fmt.Sprintf("Replace the content of volume %s with %s?", volumeName, archive)
			ok, err := confirmOverwrite(yes, msg, dialog.Confirm)
			if err != nil || !ok {
				return err
			}

			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr(), terminalNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Volumes.Import(a.Context(cmd.Context()), volumeName, archive); err != nil {
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// newLoadCmd creates the load command.
func newLoadCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "load <volume> <image>",
		Short: "Fill a volume with the /volume-data directory of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volumeName, image := args[0], args[1]

			msg := fmt.Sprintf("Replace the content of volume %s with image %s?", volumeName, image)
			ok, err := confirmOverwrite(yes, msg, dialog.Confirm)
			if err != nil || !ok {
				return err
			}

			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr(), terminalNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Volumes.LoadFromImage(a.Context(cmd.Context()), volumeName, image); err != nil {
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// confirmOverwrite gates destructive commands behind --yes or a prompt.
func confirmOverwrite(yes bool, message string, confirm confirmFunc) (bool, error) {
	if yes {
		return true, nil
	}
	if !isInteractiveTerminal() {
		return false, errConfirmationRequired
	}
	return confirm(message, false)
}
