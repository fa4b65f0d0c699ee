package cli

import (
	"github.com/spf13/cobra"

	"github.com/solrun/vegakort/internal/server"
	pkgio "github.com/solrun/vegakort/pkg/io"
)

// newServeCmd creates the serve command, which exposes a saved graph over
// the demo HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <graph.json>",
		Short: "Serve the road graph over the demo HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			backend, err := newBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			logger.Infof("loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := server.New(g, newVedurClient(backend, cfg), newVegagerdinClient(backend, cfg), logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the configured server.addr)")
	return cmd
}
