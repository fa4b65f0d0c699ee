package roadgraph

import (
	"sort"

	"github.com/paulmach/orb"
)

// VolumeCounts holds the nine traffic volume fields reported by a counting
// station: a near-real-time 15-minute count, today's running total, and the
// average count for each day of the week.
type VolumeCounts struct {
	FifteenMin float64 `json:"fifteen_min"`
	Today      float64 `json:"today"`
	Monday     float64 `json:"monday"`
	Tuesday    float64 `json:"tuesday"`
	Wednesday  float64 `json:"wednesday"`
	Thursday   float64 `json:"thursday"`
	Friday     float64 `json:"friday"`
	Saturday   float64 `json:"saturday"`
	Sunday     float64 `json:"sunday"`
}

// Traffic is a volume record attached to an edge, together with the raw
// coordinate of the originating observation.
type Traffic struct {
	VolumeCounts
	Position orb.Point `json:"position"`
}

// Observation is a traffic-counter reading at a point location, before it
// has been matched to a road edge.
type Observation struct {
	Position orb.Point
	Counts   VolumeCounts
}

// AssignTraffic attaches each observation to its nearest edge, overwriting
// the edge's Traffic attribute. Observations are processed in input order;
// when several map to the same edge the last one processed wins.
//
// The call is all-or-nothing: if the graph has no edges it fails with
// ErrNoEdges before any edge is mutated. (With at least one edge present
// every nearest-edge lookup succeeds, so no partial application can occur.)
// This is the only method that mutates the graph it is called on.
func (g *Graph) AssignTraffic(observations []Observation) error {
	if len(g.edges) == 0 {
		return ErrNoEdges
	}
	for _, obs := range observations {
		e, err := g.ClosestRoad(obs.Position)
		if err != nil {
			return err
		}
		e.Traffic = &Traffic{VolumeCounts: obs.Counts, Position: obs.Position}
	}
	return nil
}

// TrafficSubgraph returns a new graph containing exactly the edges that
// carry a traffic record, plus their endpoints. This is a plain filter; the
// result may be disconnected.
func (g *Graph) TrafficSubgraph() *Graph {
	out := New()
	for _, e := range g.edges {
		if e.Traffic != nil {
			out.addExistingEdge(e)
		}
	}
	return out
}

// CoverageSubgraph returns a connected subgraph spanning every node incident
// to a traffic-bearing edge, using near-minimal total edge length.
//
// It builds the metric closure over the traffic-bearing nodes (all-pairs
// shortest-path distances weighted by edge Length), takes a minimum spanning
// tree of that closure, and unions the underlying shortest paths of the MST
// edges back into a result graph. This is the standard 2-approximation of
// the (NP-hard) Steiner tree.
//
// With fewer than two traffic-bearing nodes the result is an empty graph:
// a spanning tree is undefined for a singleton. When the traffic-bearing
// nodes fall in disconnected components, each component is spanned
// separately (unreachable pairs are skipped).
func (g *Graph) CoverageSubgraph() *Graph {
	var terminals []orb.Point
	seen := make(map[orb.Point]struct{})
	for _, e := range g.edges {
		if e.Traffic == nil {
			continue
		}
		for _, p := range [2]orb.Point{e.U, e.V} {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				terminals = append(terminals, p)
			}
		}
	}

	out := New()
	if len(terminals) < 2 {
		return out
	}

	// Metric closure: shortest-path distance between every reachable
	// terminal pair, with the predecessor maps kept for path recovery.
	type closureEdge struct {
		i, j int
		dist float64
	}
	prevs := make([]map[orb.Point]orb.Point, len(terminals))
	var closure []closureEdge
	for i, src := range terminals {
		dist, prev := g.shortestPaths(src)
		prevs[i] = prev
		for j := i + 1; j < len(terminals); j++ {
			if d, ok := dist[terminals[j]]; ok {
				closure = append(closure, closureEdge{i: i, j: j, dist: d})
			}
		}
	}

	// Kruskal over the closure. Sorting is stable so equal-weight pairs
	// resolve in terminal order.
	sort.SliceStable(closure, func(a, b int) bool { return closure[a].dist < closure[b].dist })
	parent := make([]int, len(terminals))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	for _, ce := range closure {
		ri, rj := find(ce.i), find(ce.j)
		if ri == rj {
			continue
		}
		parent[ri] = rj

		path := pathFrom(prevs[ce.i], terminals[ce.i], terminals[ce.j])
		for k := 0; k+1 < len(path); k++ {
			if e, ok := g.Edge(path[k], path[k+1]); ok {
				out.addExistingEdge(e)
			}
		}
	}
	return out
}
