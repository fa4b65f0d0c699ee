// Package wfs fetches the IS 50V transport line layer from the National
// Land Survey of Iceland WFS service (gis.lmi.is).
//
// The client builds a GetFeature request for the samgongur_linur type with
// GeoJSON output and returns the decoded feature collection, ready for
// [roadgraph.FromGeoJSON]. Responses are large (the printed road network of
// the whole country) and change rarely, so they are cached aggressively.
package wfs
