package roadgraph

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RoadTypeProperty is the IS 50V feature property holding the Icelandic road
// classification of a segment.
const RoadTypeProperty = "vegflokkun_text_is"

// translations maps the Icelandic IS 50V road classifications to English.
// Labels not present here pass through ingestion unchanged.
var translations = map[string]string{
	"Stofnvegur":              "Main Road",
	"Stofnvegur um hálendið":  "Highland Main Road",
	"Tengivegur":              "Link Road",
	"Héraðsvegur":             "County Road",
	"Landsvegur":              "National Road",
	"Einkavegur":              "Private Road",
	"Almennur vegur":          "Public Road",
	"Þjónustuvegur":           "Service Road",
	"Vinnuvegur":              "Work Road",
	"Skógarvegur":             "Forest Road",
	"Slóði":                   "Track",
	"Stígur":                  "Path",
	"Göngustígur":             "Footpath",
	"Reiðstígur":              "Bridle Path",
	"Hjólastígur":             "Cycle Path",
	"Ferjuleið":               "Ferry Route",
}

// TranslateRoadType maps an Icelandic road classification to its English
// label. Unknown labels are returned verbatim, never dropped.
func TranslateRoadType(label string) string {
	if t, ok := translations[label]; ok {
		return t
	}
	return label
}

// Feature pairs a line geometry with its raw road classification. It is the
// ingestion input shape; collaborators that fetch and reproject vector data
// produce it.
type Feature struct {
	Geometry orb.Geometry
	RoadType string
}

// Explode decomposes a geometry into its elementary simple lines.
// A LineString yields itself; a MultiLineString yields each constituent line.
// Any other geometry type returns ErrUnsupportedGeometry.
func Explode(geom orb.Geometry) ([]orb.LineString, error) {
	switch g := geom.(type) {
	case orb.LineString:
		return []orb.LineString{g}, nil
	case orb.MultiLineString:
		lines := make([]orb.LineString, 0, len(g))
		for _, ls := range g {
			lines = append(lines, orb.LineString(ls))
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, geom)
	}
}

// Build constructs a road graph from a collection of features.
//
// Each feature's geometry is exploded into simple lines; every line becomes
// one edge between its endpoint coordinates, carrying the translated road
// classification. A malformed feature (unsupported geometry type, empty
// classification, degenerate line) fails the whole build - no partial graph
// is returned.
func Build(features []Feature) (*Graph, error) {
	g := New()
	for i, f := range features {
		if err := g.ingest(f); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return g, nil
}

// FromGeoJSON constructs a road graph from a GeoJSON feature collection,
// reading the road classification from the RoadTypeProperty property of each
// feature. A feature without that property fails the build.
func FromGeoJSON(fc *geojson.FeatureCollection) (*Graph, error) {
	g := New()
	for i, f := range fc.Features {
		raw, ok := f.Properties[RoadTypeProperty]
		if !ok {
			return nil, fmt.Errorf("feature %d: %w (%s)", i, ErrMissingRoadType, RoadTypeProperty)
		}
		label, ok := raw.(string)
		if !ok || label == "" {
			return nil, fmt.Errorf("feature %d: %w (%s)", i, ErrMissingRoadType, RoadTypeProperty)
		}
		if err := g.ingest(Feature{Geometry: f.Geometry, RoadType: label}); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return g, nil
}

func (g *Graph) ingest(f Feature) error {
	if f.RoadType == "" {
		return ErrMissingRoadType
	}
	lines, err := Explode(f.Geometry)
	if err != nil {
		return err
	}
	roadType := TranslateRoadType(f.RoadType)
	for _, line := range lines {
		if _, err := g.AddEdge(line, roadType); err != nil {
			return err
		}
	}
	return nil
}
