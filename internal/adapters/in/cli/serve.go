package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/vackup/internal/adapters/in/http/api"
	"github.com/bnema/vackup/internal/adapters/out/ratelimit"
)

// newServeCmd creates the serve command.
func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr   string
		socket string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the volume operations over HTTP",
		Long: `Expose listing, export, import and load over a small JSON API. The server
listens on server.addr, or on a unix socket when server.socket is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, opts, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			srvOpts := api.Options{
				Addr:   a.Config.Server.Addr,
				Socket: a.Config.Server.Socket,
			}
			if addr != "" {
				srvOpts.Addr = addr
				srvOpts.Socket = ""
			}
			if socket != "" {
				srvOpts.Socket = socket
			}
			if a.Config.Server.RateLimit > 0 {
				srvOpts.Limiter = ratelimit.NewMemoryStore(a.Config.Server.RateLimit, a.Config.Server.Burst, a.Log)
			}

			return api.NewServer(a.Volumes, srvOpts, a.Log).Run(a.Context(ctx))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "TCP listen address (overrides server.addr)")
	cmd.Flags().StringVar(&socket, "socket", "", "Unix socket path (overrides server.socket)")

	return cmd
}
