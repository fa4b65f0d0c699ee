package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
	"github.com/solrun/vegakort/pkg/render"
)

// newRenderCmd creates the render command, which visualizes a saved graph.
func newRenderCmd() *cobra.Command {
	var (
		format string
		output string
		labels bool
		zoom   bool
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a saved road graph",
		Long: `Render a saved road graph to an image.

Formats:
  map   planar map PNG, edges in true position colored by road type
  dot   Graphviz DOT text of the graph topology
  svg   node-link SVG via Graphviz
  png   node-link PNG via Graphviz

The node-link formats suit small derived graphs (coverage subgraphs,
cycle filters); use map for the whole network.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			switch format {
			case "map":
				err = render.MapPNG(g, output, render.MapOptions{
					Width:        width,
					Height:       height,
					ZoomToExtent: zoom,
				})
			case "dot":
				err = os.WriteFile(output, []byte(render.ToDOT(g, render.Options{EdgeLabels: labels})), 0o644)
			case "svg":
				var data []byte
				if data, err = render.RenderSVG(render.ToDOT(g, render.Options{EdgeLabels: labels})); err == nil {
					err = os.WriteFile(output, data, 0o644)
				}
			case "png":
				var data []byte
				if data, err = render.RenderPNG(render.ToDOT(g, render.Options{EdgeLabels: labels})); err == nil {
					err = os.WriteFile(output, data, 0o644)
				}
			default:
				return fmt.Errorf("unknown format %q (want map, dot, svg, or png)", format)
			}
			if err != nil {
				return err
			}
			p.done("Rendered %s to %s", format, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "map", "output format (map, dot, svg, png)")
	cmd.Flags().StringVarP(&output, "output", "o", "roads.png", "output file")
	cmd.Flags().BoolVar(&labels, "labels", false, "label edges with road type and traffic")
	cmd.Flags().BoolVar(&zoom, "zoom", false, "zoom the map to the graph extent instead of all of Iceland")
	cmd.Flags().IntVar(&width, "width", 1600, "map width in pixels")
	cmd.Flags().IntVar(&height, "height", 1200, "map height in pixels")
	return cmd
}
