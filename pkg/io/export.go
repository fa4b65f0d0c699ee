package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/roadgraph"
)

type graphFile struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edge struct {
	U        int                `json:"u"`
	V        int                `json:"v"`
	RoadType string             `json:"road_type"`
	Geometry [][2]float64       `json:"geometry"`
	Traffic  *roadgraph.Traffic `json:"traffic,omitempty"`
}

type adjacencyFile struct {
	Nodes     []node  `json:"nodes"`
	Adjacency [][]int `json:"adjacency"`
}

// WriteJSON encodes a road graph in the attribute-preserving form and writes
// it to w. The output can be re-imported with [ReadJSON] for an exact
// round-trip, including geometry, classification, and traffic attributes.
func WriteJSON(g *roadgraph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	index := make(map[orb.Point]int, len(nodes))

	out := graphFile{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for i, p := range nodes {
		index[p] = i
		out.Nodes[i] = node{X: p[0], Y: p[1]}
	}
	for _, e := range g.Edges() {
		geom := make([][2]float64, len(e.Geometry))
		for i, p := range e.Geometry {
			geom[i] = [2]float64{p[0], p[1]}
		}
		out.Edges = append(out.Edges, edge{
			U:        index[e.U],
			V:        index[e.V],
			RoadType: e.RoadType,
			Geometry: geom,
			Traffic:  e.Traffic,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a road graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *roadgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// WriteAdjacency encodes the lightweight adjacency-only form and writes it
// to w. Only nodes and neighbor index lists are kept; geometry, road
// classification, and traffic are dropped and cannot be recovered.
func WriteAdjacency(g *roadgraph.Graph, w io.Writer) error {
	nodes := g.Nodes()
	index := make(map[orb.Point]int, len(nodes))

	out := adjacencyFile{
		Nodes:     make([]node, len(nodes)),
		Adjacency: make([][]int, len(nodes)),
	}
	for i, p := range nodes {
		index[p] = i
		out.Nodes[i] = node{X: p[0], Y: p[1]}
	}
	for i, p := range nodes {
		neighbors := g.Neighbors(p)
		out.Adjacency[i] = make([]int, len(neighbors))
		for j, q := range neighbors {
			out.Adjacency[i][j] = index[q]
		}
		// Neighbors come in map order; sort so the same graph always
		// serializes to the same bytes.
		sort.Ints(out.Adjacency[i])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
