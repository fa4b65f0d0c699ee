package roadgraph

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ClosestRoad returns the edge whose polyline geometry is nearest to p by
// Euclidean distance in the graph's planar coordinate system. Distance is
// measured to the full polyline, not to the endpoints or the straight chord.
// Ties are broken by edge-iteration order: the first edge encountered wins.
//
// Returns ErrNoEdges when the graph has no edges. The scan is O(E) per call,
// which is acceptable at the scale of a single country's road network.
func (g *Graph) ClosestRoad(p orb.Point) (*Edge, error) {
	if len(g.edges) == 0 {
		return nil, ErrNoEdges
	}

	var best *Edge
	bestDist := math.Inf(1)
	for _, e := range g.edges {
		if d := distanceToLineString(p, e.Geometry); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best, nil
}

// distanceToLineString returns the minimum Euclidean distance from p to any
// segment of ls. A single-point polyline degenerates to point distance.
func distanceToLineString(p orb.Point, ls orb.LineString) float64 {
	if len(ls) == 1 {
		return planar.Distance(p, ls[0])
	}
	min := math.Inf(1)
	for i := 0; i+1 < len(ls); i++ {
		if d := distanceToSegment(p, ls[i], ls[i+1]); d < min {
			min = d
		}
	}
	return min
}

// distanceToSegment returns the Euclidean distance from p to the segment ab,
// projecting p onto the segment and clamping to the endpoints.
func distanceToSegment(p, a, b orb.Point) float64 {
	abX, abY := b[0]-a[0], b[1]-a[1]
	lenSq := abX*abX + abY*abY
	if lenSq == 0 {
		return planar.Distance(p, a)
	}
	t := ((p[0]-a[0])*abX + (p[1]-a[1])*abY) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := orb.Point{a[0] + t*abX, a[1] + t*abY}
	return planar.Distance(p, closest)
}
