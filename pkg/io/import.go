package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/roadgraph"
)

// ReadJSON decodes an attribute-preserving graph file from r.
//
// Every node is inserted first (so isolated nodes survive the round-trip),
// then every edge with its geometry, classification, and optional traffic
// record. ReadJSON returns an error if:
//
//   - the JSON is malformed
//   - an edge references a node index outside the node list
//   - an edge's geometry has fewer than two coordinates
//
// Any of these fails the whole load; no partial graph is returned.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*roadgraph.Graph, error) {
	var data graphFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := roadgraph.New()
	for _, n := range data.Nodes {
		g.AddNode(orb.Point{n.X, n.Y})
	}
	for i, e := range data.Edges {
		if e.U < 0 || e.U >= len(data.Nodes) || e.V < 0 || e.V >= len(data.Nodes) {
			return nil, fmt.Errorf("edge %d: node index out of range", i)
		}
		if len(e.Geometry) < 2 {
			return nil, fmt.Errorf("edge %d: %w", i, roadgraph.ErrUnsupportedGeometry)
		}
		geom := make(orb.LineString, len(e.Geometry))
		for j, c := range e.Geometry {
			geom[j] = orb.Point{c[0], c[1]}
		}
		u := orb.Point{data.Nodes[e.U].X, data.Nodes[e.U].Y}
		v := orb.Point{data.Nodes[e.V].X, data.Nodes[e.V].Y}
		if geom[0] != u || geom[len(geom)-1] != v {
			return nil, fmt.Errorf("edge %d: node indices do not match geometry endpoints", i)
		}
		ed, err := g.AddEdge(geom, e.RoadType)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		ed.Traffic = e.Traffic
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded road graph.
// It returns the same validation errors as [ReadJSON], wrapped with the
// file path for context.
func ImportJSON(path string) (*roadgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadAdjacency decodes an adjacency-only graph file from r.
//
// Reconstructed edges carry a two-point chord geometry between their
// endpoints and an empty road classification; traffic is always absent.
// An adjacency index outside the node list fails the whole load.
func ReadAdjacency(r io.Reader) (*roadgraph.Graph, error) {
	var data adjacencyFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(data.Adjacency) != len(data.Nodes) {
		return nil, fmt.Errorf("adjacency rows (%d) do not match nodes (%d)", len(data.Adjacency), len(data.Nodes))
	}

	points := make([]orb.Point, len(data.Nodes))
	g := roadgraph.New()
	for i, n := range data.Nodes {
		points[i] = orb.Point{n.X, n.Y}
		g.AddNode(points[i])
	}
	for i, neighbors := range data.Adjacency {
		for _, j := range neighbors {
			if j < 0 || j >= len(points) {
				return nil, fmt.Errorf("node %d: neighbor index %d out of range", i, j)
			}
			if _, ok := g.Edge(points[i], points[j]); ok {
				continue // already inserted from the other endpoint's list
			}
			if _, err := g.AddEdge(orb.LineString{points[i], points[j]}, ""); err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
		}
	}
	return g, nil
}
