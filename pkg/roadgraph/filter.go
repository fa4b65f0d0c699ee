package roadgraph

import "github.com/paulmach/orb"

// RoadTypes returns the classification of every edge in edge-iteration order.
// Duplicates are retained: one entry per edge, not per distinct type.
func (g *Graph) RoadTypes() []string {
	out := make([]string, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.RoadType
	}
	return out
}

// FilterByRoadType returns a new graph containing exactly the edges whose
// classification is in types, plus their endpoint nodes. Nodes with no
// matching incident edge are excluded.
func (g *Graph) FilterByRoadType(types ...string) *Graph {
	want := make(map[string]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}

	out := New()
	for _, e := range g.edges {
		if _, ok := want[e.RoadType]; ok {
			out.addExistingEdge(e)
		}
	}
	return out
}

// CircularPaths returns a new graph containing every edge that lies on a
// simple cycle with more than two distinct nodes, with attributes carried
// over. An edge shared by several cycles appears once in the result.
//
// In a simple undirected graph an edge lies on such a cycle exactly when it
// is neither a bridge nor a self-loop, so the result is computed with a
// single bridge-finding pass instead of enumerating cycles.
func (g *Graph) CircularPaths() *Graph {
	bridges := g.findBridges()

	out := New()
	for _, e := range g.edges {
		if e.U == e.V {
			continue // self-loop: a one-node cycle
		}
		if _, ok := bridges[e]; ok {
			continue
		}
		out.addExistingEdge(e)
	}
	return out
}

// findBridges runs an iterative DFS computing discovery and low-link times.
// An edge (u,v) is a bridge when low[v] > disc[u] for tree edge u->v.
func (g *Graph) findBridges() map[*Edge]struct{} {
	disc := make(map[orb.Point]int, len(g.nodes))
	low := make(map[orb.Point]int, len(g.nodes))
	bridges := make(map[*Edge]struct{})
	timer := 0

	type frame struct {
		node      orb.Point
		parent    orb.Point
		hasPar    bool
		parSeen   bool // tree edge back to parent consumed
		next      []orb.Point
	}

	for _, start := range g.nodes {
		if _, seen := disc[start]; seen {
			continue
		}
		timer++
		disc[start] = timer
		low[start] = timer
		stack := []frame{{node: start, next: g.Neighbors(start)}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if len(f.next) == 0 {
				if f.hasPar {
					if low[f.node] < low[f.parent] {
						low[f.parent] = low[f.node]
					}
					if low[f.node] > disc[f.parent] {
						if e, ok := g.Edge(f.parent, f.node); ok {
							bridges[e] = struct{}{}
						}
					}
				}
				stack = stack[:len(stack)-1]
				continue
			}

			n := f.next[0]
			f.next = f.next[1:]
			if n == f.node {
				continue // self-loop
			}
			if f.hasPar && n == f.parent && !f.parSeen {
				// Skip the tree edge back to the parent once; a simple
				// graph has no parallel edge to re-enter through.
				f.parSeen = true
				continue
			}
			if d, seen := disc[n]; seen {
				if d < low[f.node] {
					low[f.node] = d
				}
				continue
			}
			timer++
			disc[n] = timer
			low[n] = timer
			stack = append(stack, frame{node: n, parent: f.node, hasPar: true, next: g.Neighbors(n)})
		}
	}
	return bridges
}
