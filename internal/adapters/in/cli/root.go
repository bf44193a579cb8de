// Package cli implements the CLI adapter for vackup.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/vackup/internal/app"
	"github.com/bnema/vackup/internal/boundaries/out"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	envFile    string
	logLevel   string
}

// NewRootCmd creates the root command for the vackup CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "vackup",
		Short: "vackup - export and restore Docker volumes",
		Long: `vackup lists the Docker volumes of the local engine and archives them
to <directory>/<volume>.tar.gz through a short-lived helper container.

Run without a subcommand to open the interactive volume panel.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default .env)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newUICmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newLoadCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newApp wires the application for a command. console receives log output
// and notifier the user-facing notifications; both may be nil.
func newApp(ctx context.Context, opts *rootOptions, console io.Writer, notifier out.Notifier) (*app.App, error) {
	return app.New(ctx, app.Options{
		ConfigPath: opts.configPath,
		EnvFile:    opts.envFile,
		LogLevel:   opts.logLevel,
		Console:    console,
		Notifier:   notifier,
	})
}
