package roadgraph

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// ErrNoEdges is returned by [Graph.ClosestRoad] and [Graph.AssignTraffic]
	// when the graph contains no edges, so no nearest-edge lookup can succeed.
	ErrNoEdges = errors.New("graph has no edges")

	// ErrUnsupportedGeometry is returned during ingestion when a feature's
	// geometry is neither a LineString nor a MultiLineString, or when a line
	// has fewer than two coordinates.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrMissingRoadType is returned during GeoJSON ingestion when a feature
	// lacks the road classification property. Records are never ingested
	// with an empty classification.
	ErrMissingRoadType = errors.New("missing road classification")
)

// Edge is a road segment between two endpoint nodes.
//
// U and V are the first and last coordinate of Geometry in original order;
// the graph itself is undirected and edges are looked up without regard to
// direction. Length is the planar length of the full polyline and is used
// as the traversal cost by [Graph.CoverageSubgraph].
type Edge struct {
	U, V     orb.Point
	Geometry orb.LineString
	RoadType string
	Length   float64

	// Traffic is nil until a traffic observation is attached with
	// [Graph.AssignTraffic].
	Traffic *Traffic
}

// Graph is an undirected simple graph of road segments. Node identity is the
// exact coordinate value as emitted by the source geometry; at most one edge
// exists between any unordered node pair.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes     []orb.Point
	nodeSet   map[orb.Point]struct{}
	adjacency map[orb.Point]map[orb.Point]*Edge
	edges     []*Edge // insertion order, one entry per unordered pair
}

// New creates an empty road graph.
func New() *Graph {
	return &Graph{
		nodeSet:   make(map[orb.Point]struct{}),
		adjacency: make(map[orb.Point]map[orb.Point]*Edge),
	}
}

// AddNode inserts a node. Adding an existing node is a no-op, so coordinates
// shared between segments collapse into a single node.
func (g *Graph) AddNode(p orb.Point) {
	if _, ok := g.nodeSet[p]; ok {
		return
	}
	g.nodeSet[p] = struct{}{}
	g.nodes = append(g.nodes, p)
}

// AddEdge inserts an edge between the endpoints of geom, carrying the full
// coordinate sequence and the given road classification. Both endpoints are
// added as nodes if missing.
//
// If an edge already exists between the same unordered pair, its geometry,
// classification, and length are overwritten in place (last write wins) and
// the edge keeps its original iteration slot; an attached traffic record is
// left untouched. A geometry whose endpoints coincide produces a self-loop.
//
// Returns ErrUnsupportedGeometry if geom has fewer than two coordinates.
func (g *Graph) AddEdge(geom orb.LineString, roadType string) (*Edge, error) {
	if len(geom) < 2 {
		return nil, ErrUnsupportedGeometry
	}
	u := geom[0]
	v := geom[len(geom)-1]
	g.AddNode(u)
	g.AddNode(v)

	if e, ok := g.adjacency[u][v]; ok {
		e.U = u
		e.V = v
		e.Geometry = geom
		e.RoadType = roadType
		e.Length = planar.Length(geom)
		return e, nil
	}

	e := &Edge{
		U:        u,
		V:        v,
		Geometry: geom,
		RoadType: roadType,
		Length:   planar.Length(geom),
	}
	g.link(u, v, e)
	g.edges = append(g.edges, e)
	return e, nil
}

// link registers e in the adjacency structure for both directions.
func (g *Graph) link(u, v orb.Point, e *Edge) {
	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[orb.Point]*Edge)
	}
	g.adjacency[u][v] = e
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[orb.Point]*Edge)
	}
	g.adjacency[v][u] = e
}

// addExistingEdge copies an edge (including its traffic record) into g,
// preserving attributes. Used by the derived-view methods.
func (g *Graph) addExistingEdge(e *Edge) {
	if _, ok := g.adjacency[e.U][e.V]; ok {
		return
	}
	g.AddNode(e.U)
	g.AddNode(e.V)
	cp := *e
	g.link(cp.U, cp.V, &cp)
	g.edges = append(g.edges, &cp)
}

// HasNode reports whether p is a node of the graph.
func (g *Graph) HasNode(p orb.Point) bool {
	_, ok := g.nodeSet[p]
	return ok
}

// Edge returns the edge between u and v (in either direction) and true,
// or nil and false if no such edge exists.
func (g *Graph) Edge(u, v orb.Point) (*Edge, bool) {
	e, ok := g.adjacency[u][v]
	return e, ok
}

// Nodes returns all nodes in insertion order. The returned slice is a copy.
func (g *Graph) Nodes() []orb.Point {
	out := make([]orb.Point, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order. The returned slice is a copy
// but the edge pointers refer to the graph's actual edges, so attribute
// changes are visible to the graph.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the nodes adjacent to p. A self-loop makes p its own
// neighbor. Returns nil for an unknown or isolated node.
func (g *Graph) Neighbors(p orb.Point) []orb.Point {
	adj := g.adjacency[p]
	if len(adj) == 0 {
		return nil
	}
	out := make([]orb.Point, 0, len(adj))
	for q := range adj {
		out = append(out, q)
	}
	return out
}

// Degree returns the number of distinct neighbors of p.
func (g *Graph) Degree(p orb.Point) int { return len(g.adjacency[p]) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
