// Package io persists road graphs as JSON.
//
// Two granularities are supported:
//
//   - The attribute-preserving form ([WriteJSON]/[ReadJSON]) serializes every
//     node, every edge's endpoint pair, road classification, full polyline
//     geometry, and attached traffic record. It round-trips a graph exactly
//     and is the format exercised by attribute-dependent operations.
//   - The adjacency-only form ([WriteAdjacency]/[ReadAdjacency]) serializes
//     just nodes and neighbor lists. It is smaller but lossy: geometry,
//     classification, and traffic cannot be recovered from it.
//
// Nodes are written as an explicit indexed list with numeric x/y fields and
// edges reference nodes by index. There is no string encoding of coordinate
// pairs anywhere in the format, so round-tripping preserves full float64
// precision (encoding/json emits the shortest representation that parses
// back to the same value).
//
// # File format
//
//	{
//	  "nodes": [{"x": -2276244.5, "y": 9541152.0}, ...],
//	  "edges": [
//	    {
//	      "u": 0,
//	      "v": 1,
//	      "road_type": "Main Road",
//	      "geometry": [[-2276244.5, 9541152.0], ...],
//	      "traffic": {"fifteen_min": 42, ...}
//	    }
//	  ]
//	}
//
// A load fails as a whole on any malformed record (node index out of range,
// geometry with fewer than two coordinates); no partial graph is returned.
package io
