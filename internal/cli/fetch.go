package cli

import (
	"github.com/spf13/cobra"
)

// newFetchCmd creates the fetch command, which saves the raw IS 50V road
// layer as GeoJSON without building a graph.
func newFetchCmd() *cobra.Command {
	var (
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the IS 50V road layer from the WFS service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			backend, err := newBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			p := newProgress(logger)
			client := newWFSClient(backend, cfg)
			err = runWithSpinner(ctx, "Fetching road layer from WFS...", func() error {
				return client.SaveGeoJSON(ctx, output, refresh)
			})
			if err != nil {
				return err
			}
			printSuccess("Saved road layer to %s", output)
			p.done("Fetched road layer")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "roads.geojson", "output GeoJSON file")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	return cmd
}
