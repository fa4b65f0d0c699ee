package roadgraph

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestAddNode(t *testing.T) {
	g := New()
	p := orb.Point{1, 2}

	g.AddNode(p)
	g.AddNode(p) // duplicate is a no-op

	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d, want 1", got)
	}
	if !g.HasNode(p) {
		t.Error("HasNode = false, want true")
	}
	if g.HasNode(orb.Point{3, 4}) {
		t.Error("HasNode(unknown) = true, want false")
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name      string
		geom      orb.LineString
		wantNodes int
		wantLen   float64
		wantErr   error
	}{
		{
			name:      "Straight",
			geom:      orb.LineString{{0, 0}, {3, 4}},
			wantNodes: 2,
			wantLen:   5,
		},
		{
			name:      "Polyline",
			geom:      orb.LineString{{0, 0}, {3, 0}, {3, 4}},
			wantNodes: 2, // interior coordinates are not nodes
			wantLen:   7,
		},
		{
			name:      "SelfLoop",
			geom:      orb.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
			wantNodes: 1,
		},
		{
			name:    "Degenerate",
			geom:    orb.LineString{{0, 0}},
			wantErr: ErrUnsupportedGeometry,
		},
		{
			name:    "Empty",
			geom:    orb.LineString{},
			wantErr: ErrUnsupportedGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			e, err := g.AddEdge(tt.geom, "Main Road")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddEdge error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
			if got := g.NodeCount(); got != tt.wantNodes {
				t.Errorf("NodeCount = %d, want %d", got, tt.wantNodes)
			}
			if g.EdgeCount() != 1 {
				t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
			}
			if tt.wantLen > 0 && math.Abs(e.Length-tt.wantLen) > 1e-9 {
				t.Errorf("Length = %g, want %g", e.Length, tt.wantLen)
			}
			if e.U != tt.geom[0] || e.V != tt.geom[len(tt.geom)-1] {
				t.Errorf("endpoints = %v,%v, want %v,%v", e.U, e.V, tt.geom[0], tt.geom[len(tt.geom)-1])
			}
		})
	}
}

func TestAddEdgeOverwrite(t *testing.T) {
	g := New()
	first, err := g.AddEdge(orb.LineString{{0, 0}, {1, 0}, {1, 1}}, "Link Road")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	first.Traffic = &Traffic{Position: orb.Point{0.5, 0}}
	if _, err := g.AddEdge(orb.LineString{{0, 0}, {0, 1}, {1, 1}}, "Main Road"); err != nil {
		t.Fatalf("AddEdge overwrite: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	e, ok := g.Edge(orb.Point{0, 0}, orb.Point{1, 1})
	if !ok {
		t.Fatal("Edge lookup failed after overwrite")
	}
	if e.RoadType != "Main Road" {
		t.Errorf("RoadType = %q, want %q", e.RoadType, "Main Road")
	}
	if e.Geometry[1] != (orb.Point{0, 1}) {
		t.Errorf("Geometry[1] = %v, want {0 1}", e.Geometry[1])
	}
	if e.Traffic == nil {
		t.Error("Traffic lost on overwrite, want preserved")
	}
}

func TestAddEdgeReversedPair(t *testing.T) {
	// The same unordered pair seen in opposite direction is still one edge.
	g := New()
	if _, err := g.AddEdge(orb.LineString{{0, 0}, {1, 1}}, "Main Road"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(orb.LineString{{1, 1}, {0, 0}}, "Link Road"); err != nil {
		t.Fatalf("AddEdge reversed: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	e, _ := g.Edge(orb.Point{0, 0}, orb.Point{1, 1})
	if e.RoadType != "Link Road" {
		t.Errorf("RoadType = %q, want last write %q", e.RoadType, "Link Road")
	}
}

func TestEdgeLookupBothDirections(t *testing.T) {
	g := New()
	u, v := orb.Point{0, 0}, orb.Point{2, 0}
	if _, err := g.AddEdge(orb.LineString{u, v}, "Main Road"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if _, ok := g.Edge(u, v); !ok {
		t.Error("Edge(u,v) not found")
	}
	if _, ok := g.Edge(v, u); !ok {
		t.Error("Edge(v,u) not found")
	}
	if _, ok := g.Edge(u, orb.Point{9, 9}); ok {
		t.Error("Edge to unknown node found, want miss")
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	g := New()
	a, b, c := orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{2, 0}
	if _, err := g.AddEdge(orb.LineString{a, b}, "Main Road"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(orb.LineString{b, c}, "Main Road"); err != nil {
		t.Fatal(err)
	}

	if got := g.Degree(b); got != 2 {
		t.Errorf("Degree(b) = %d, want 2", got)
	}
	if got := g.Degree(a); got != 1 {
		t.Errorf("Degree(a) = %d, want 1", got)
	}

	got := map[orb.Point]bool{}
	for _, n := range g.Neighbors(b) {
		got[n] = true
	}
	if !got[a] || !got[c] || len(got) != 2 {
		t.Errorf("Neighbors(b) = %v, want {a, c}", g.Neighbors(b))
	}
	if g.Neighbors(orb.Point{9, 9}) != nil {
		t.Error("Neighbors(unknown) != nil")
	}
}

func TestOrderPreserved(t *testing.T) {
	g := New()
	lines := []orb.LineString{
		{{0, 0}, {1, 0}},
		{{1, 0}, {2, 0}},
		{{2, 0}, {3, 0}},
	}
	for _, l := range lines {
		if _, err := g.AddEdge(l, "Main Road"); err != nil {
			t.Fatal(err)
		}
	}

	edges := g.Edges()
	for i, e := range edges {
		if e.U != lines[i][0] {
			t.Errorf("edge %d out of insertion order: U = %v", i, e.U)
		}
	}
	nodes := g.Nodes()
	if nodes[0] != (orb.Point{0, 0}) || nodes[len(nodes)-1] != (orb.Point{3, 0}) {
		t.Errorf("node order = %v", nodes)
	}
}
