package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// newNearestCmd creates the nearest command, which answers a single
// nearest-edge query against a saved graph.
func newNearestCmd() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "nearest <graph.json>",
		Short: "Find the road edge nearest to a planar point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			e, err := g.ClosestRoad(orb.Point{x, y})
			if errors.Is(err, roadgraph.ErrNoEdges) {
				return fmt.Errorf("no road found: the graph has no edges")
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"u":         e.U,
				"v":         e.V,
				"road_type": e.RoadType,
				"length":    e.Length,
				"traffic":   e.Traffic,
			})
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "query point x (planar)")
	cmd.Flags().Float64Var(&y, "y", 0, "query point y (planar)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}
