package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	pkgio "github.com/solrun/vegakort/pkg/io"
)

// newInfoCmd creates the info command, which summarizes a saved graph.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph.json>",
		Short: "Summarize a saved road graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			withTraffic := 0
			for _, e := range g.Edges() {
				counts[e.RoadType]++
				if e.Traffic != nil {
					withTraffic++
				}
			}

			fmt.Println(styleTitle.Render(args[0]))
			printNumber("nodes", g.NodeCount())
			printNumber("edges", g.EdgeCount())
			printNumber("with traffic", withTraffic)
			fmt.Println(styleTitle.Render("road types"))

			types := make([]string, 0, len(counts))
			for t := range counts {
				types = append(types, t)
			}
			sort.Strings(types)
			for _, t := range types {
				fmt.Printf("  %s %s\n", styleValue.Render(fmt.Sprintf("%-24s", t)), styleNumber.Render(fmt.Sprintf("%d", counts[t])))
			}
			return nil
		},
	}
}
