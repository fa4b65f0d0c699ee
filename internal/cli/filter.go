package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
)

// newFilterCmd creates the filter command, which extracts the subgraph of
// given road classifications.
func newFilterCmd() *cobra.Command {
	var (
		types  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "filter <graph.json>",
		Short: "Extract the subgraph of the given road types",
		Long: `Extract the subgraph containing exactly the edges whose classification
is among the given --type values, plus their endpoint nodes.

Example:
  vegakort filter graph.json -t "Main Road" -t "Highland Main Road" -o mains.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			filtered := g.FilterByRoadType(types...)
			if err := pkgio.ExportJSON(filtered, output); err != nil {
				return err
			}
			p.done("Filtered %d of %d edges to %s", filtered.EdgeCount(), g.EdgeCount(), output)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "road type to keep (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "filtered.json", "output graph file")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// newCyclesCmd creates the cycles command, which extracts every edge lying
// on a simple cycle.
func newCyclesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cycles <graph.json>",
		Short: "Extract the edges that lie on circular paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			cyclic := g.CircularPaths()
			if err := pkgio.ExportJSON(cyclic, output); err != nil {
				return err
			}
			p.done("Found %d cyclic edges of %d, saved to %s", cyclic.EdgeCount(), g.EdgeCount(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "cycles.json", "output graph file")
	return cmd
}
