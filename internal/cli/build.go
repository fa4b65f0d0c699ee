package cli

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
	"github.com/solrun/vegakort/pkg/pipeline"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// newBuildCmd creates the build command, which constructs the road graph
// either from a local GeoJSON file or directly from the WFS service.
func newBuildCmd() *cobra.Command {
	var (
		input   string
		output  string
		traffic bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the road graph and save it as JSON",
		Long: `Build the road-network graph and save it in the attribute-preserving
JSON form. Without --input the road layer is fetched from the WFS service;
with --input a previously fetched GeoJSON file is used. --traffic attaches
live counter observations to the nearest edges before saving.`,
		Args: cobra.NoArgs,
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

			if input != "" {
				raw, err := os.ReadFile(input)
				if err != nil {
					return fmt.Errorf("read %s: %w", input, err)
				}
				fc, err := geojson.UnmarshalFeatureCollection(raw)
				if err != nil {
					return fmt.Errorf("decode %s: %w", input, err)
				}
				g, err := roadgraph.FromGeoJSON(fc)
				if err != nil {
					return err
				}
				if traffic {
					obs, err := newVegagerdinClient(backend, cfg).TrafficCounts(ctx, refresh)
					if err != nil {
						return err
					}
					if err := g.AssignTraffic(obs); err != nil {
						return err
					}
				}
				if err := pkgio.ExportJSON(g, output); err != nil {
					return err
				}
				p.done("Built graph from %s: %d nodes, %d edges", input, g.NodeCount(), g.EdgeCount())
				return nil
			}

			pl := &pipeline.Pipeline{
				Roads:  newWFSClient(backend, cfg),
				Counts: newVegagerdinClient(backend, cfg),
			}
			var g *roadgraph.Graph
			err = runWithSpinner(ctx, "Building road graph from WFS...", func() error {
				var runErr error
				g, runErr = pl.Run(ctx, pipeline.Options{
					Refresh:       refresh,
					AttachTraffic: traffic,
					Output:        output,
					Logger:        logger.Debugf,
				})
				return runErr
			})
			if err != nil {
				return err
			}
			p.done("Built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "GeoJSON input file (fetched from WFS if empty)")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "output graph file")
	cmd.Flags().BoolVar(&traffic, "traffic", false, "attach live traffic counts")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	return cmd
}
