package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
)

// newTrafficCmd creates the traffic command group.
func newTrafficCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Attach traffic counts and derive traffic subgraphs",
	}

	cmd.AddCommand(newTrafficAttachCmd())
	cmd.AddCommand(newTrafficSubgraphCmd())
	cmd.AddCommand(newTrafficCoverageCmd())
	return cmd
}

// newTrafficAttachCmd attaches live counter observations to a saved graph.
func newTrafficAttachCmd() *cobra.Command {
	var (
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "attach <graph.json>",
		Short: "Attach live traffic counts to the nearest road edges",
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

			obs, err := newVegagerdinClient(backend, cfg).TrafficCounts(ctx, refresh)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			if err := g.AssignTraffic(obs); err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}
			if err := pkgio.ExportJSON(g, output); err != nil {
				return err
			}
			p.done("Attached %d observations, saved to %s", len(obs), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output graph file (defaults to overwriting the input)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	return cmd
}

// newTrafficSubgraphCmd extracts only the traffic-bearing edges.
func newTrafficSubgraphCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "subgraph <graph.json>",
		Short: "Extract only the edges carrying a traffic record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			sub := g.TrafficSubgraph()
			if err := pkgio.ExportJSON(sub, output); err != nil {
				return err
			}
			p.done("Extracted %d traffic-bearing edges to %s", sub.EdgeCount(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "traffic.json", "output graph file")
	return cmd
}

// newTrafficCoverageCmd derives the connected coverage subgraph spanning
// all traffic-bearing nodes.
func newTrafficCoverageCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "coverage <graph.json>",
		Short: "Derive the minimal connected subgraph spanning traffic nodes",
		Long: `Derive a connected subgraph that spans every node incident to a
traffic-bearing edge with near-minimal total road length (a Steiner-tree
approximation over shortest-path distances). With fewer than two
traffic-bearing nodes the result is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			cov := g.CoverageSubgraph()
			if err := pkgio.ExportJSON(cov, output); err != nil {
				return err
			}
			p.done("Coverage subgraph: %d nodes, %d edges, saved to %s", cov.NodeCount(), cov.EdgeCount(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "coverage.json", "output graph file")
	return cmd
}
