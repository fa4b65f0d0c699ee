// Package pipeline orchestrates the fetch → build → attach → save flow.
//
// It wires the WFS road source and the traffic-counter source to the graph
// construction in [roadgraph], so the CLI and the server share one code
// path for producing a traffic-annotated road graph.
package pipeline

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"

	pkgio "github.com/solrun/vegakort/pkg/io"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// RoadSource produces the road layer, typically [wfs.Client].
type RoadSource interface {
	FetchRoads(ctx context.Context, refresh bool) (*geojson.FeatureCollection, error)
}

// CountSource produces traffic observations, typically [vegagerdin.Client].
type CountSource interface {
	TrafficCounts(ctx context.Context, refresh bool) ([]roadgraph.Observation, error)
}

// Options configures a pipeline run.
type Options struct {
	// Refresh bypasses the HTTP response cache on every fetch.
	Refresh bool

	// AttachTraffic fetches counter observations and assigns them to the
	// nearest edges. Requires Counts to be set.
	AttachTraffic bool

	// Output, when non-empty, saves the finished graph as JSON.
	Output string

	// Logger receives progress messages. Nil disables progress logging.
	Logger func(msg string, args ...any)
}

// Pipeline builds traffic-annotated road graphs from external sources.
type Pipeline struct {
	Roads  RoadSource
	Counts CountSource
}

// Run fetches the road layer, builds the graph, and optionally attaches
// traffic and saves the result. The returned graph is always usable even
// when Output is empty.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*roadgraph.Graph, error) {
	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}

	fc, err := p.Roads.FetchRoads(ctx, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch roads: %w", err)
	}
	logf("fetched %d road features", len(fc.Features))

	g, err := roadgraph.FromGeoJSON(fc)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	logf("built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	if opts.AttachTraffic {
		if p.Counts == nil {
			return nil, fmt.Errorf("attach traffic: no counter source configured")
		}
		obs, err := p.Counts.TrafficCounts(ctx, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("fetch traffic counts: %w", err)
		}
		if err := g.AssignTraffic(obs); err != nil {
			return nil, fmt.Errorf("attach traffic: %w", err)
		}
		logf("attached %d traffic observations", len(obs))
	}

	if opts.Output != "" {
		if err := pkgio.ExportJSON(g, opts.Output); err != nil {
			return nil, fmt.Errorf("save graph: %w", err)
		}
		logf("saved graph to %s", opts.Output)
	}
	return g, nil
}
