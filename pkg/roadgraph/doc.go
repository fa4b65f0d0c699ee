// Package roadgraph models Iceland's road network as an undirected graph.
//
// Nodes are planar coordinates (the endpoints of road segments) and edges are
// road segments carrying the full polyline geometry, a road classification,
// and optionally a traffic observation attached by nearest-edge matching.
//
// # Construction
//
// Graphs are built from geospatial line features, typically a GeoJSON
// FeatureCollection fetched from the IS 50V WFS service:
//
//	g, err := roadgraph.FromGeoJSON(fc)
//	if err != nil {
//	    return err
//	}
//
// Multi-part geometries are exploded into their constituent lines before
// insertion; each simple line contributes one edge between its first and
// last coordinate. All coordinates are expected to be in a single planar
// projection (Web Mercator for the Iceland dataset) - reprojection is the
// caller's responsibility.
//
// # Derived views
//
// Query methods never mutate the receiver; they return new graphs:
//
//	mains := g.FilterByRoadType("Main Road", "Highland Main Road")
//	loops := g.CircularPaths()
//	covered := g.TrafficSubgraph()
//
// The one exception is [Graph.AssignTraffic], which writes traffic records
// onto existing edges of the graph it is called on.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Callers that mix AssignTraffic with
// reads from other goroutines must provide their own synchronization.
package roadgraph
