package roadgraph

import (
	"container/heap"

	"github.com/paulmach/orb"
)

// pqItem is a node with its tentative distance in the Dijkstra frontier.
type pqItem struct {
	node orb.Point
	dist float64
}

type pq []pqItem

func (p pq) Len() int           { return len(p) }
func (p pq) Less(i, j int) bool { return p[i].dist < p[j].dist }
func (p pq) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p *pq) Push(x any)        { *p = append(*p, x.(pqItem)) }
func (p *pq) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}

// shortestPaths runs Dijkstra from src over edge Length weights and returns
// the distance and predecessor maps. Unreachable nodes are absent from both.
func (g *Graph) shortestPaths(src orb.Point) (map[orb.Point]float64, map[orb.Point]orb.Point) {
	dist := map[orb.Point]float64{src: 0}
	prev := make(map[orb.Point]orb.Point)
	done := make(map[orb.Point]struct{})

	frontier := &pq{{node: src, dist: 0}}
	for frontier.Len() > 0 {
		cur := heap.Pop(frontier).(pqItem)
		if _, ok := done[cur.node]; ok {
			continue
		}
		done[cur.node] = struct{}{}

		for neighbor, e := range g.adjacency[cur.node] {
			if neighbor == cur.node {
				continue // self-loop never shortens a path
			}
			nd := cur.dist + e.Length
			if old, seen := dist[neighbor]; !seen || nd < old {
				dist[neighbor] = nd
				prev[neighbor] = cur.node
				heap.Push(frontier, pqItem{node: neighbor, dist: nd})
			}
		}
	}
	return dist, prev
}

// pathFrom reconstructs the node sequence src..dst from a predecessor map.
// Returns nil when dst was not reached.
func pathFrom(prev map[orb.Point]orb.Point, src, dst orb.Point) []orb.Point {
	if src == dst {
		return []orb.Point{src}
	}
	if _, ok := prev[dst]; !ok {
		return nil
	}
	var path []orb.Point
	for cur := dst; cur != src; cur = prev[cur] {
		path = append(path, cur)
	}
	path = append(path, src)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
