package wfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/solrun/vegakort/pkg/cache"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 0]]},
			"properties": {"vegflokkun_text_is": "Stofnvegur"}
		}
	]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("service"); got != "WFS" {
			t.Errorf("service = %q, want WFS", got)
		}
		if got := q.Get("request"); got != "GetFeature" {
			t.Errorf("request = %q, want GetFeature", got)
		}
		if got := q.Get("typeName"); got != "IS_50V:samgongur_linur" {
			t.Errorf("typeName = %q, want default layer", got)
		}
		if got := q.Get("outputFormat"); got != "application/json" {
			t.Errorf("outputFormat = %q, want application/json", got)
		}
		w.Write([]byte(sampleGeoJSON))
	}))
}

func TestFetchRoads(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL, "")
	fc, err := c.FetchRoads(context.Background(), false)
	if err != nil {
		t.Fatalf("FetchRoads: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("features = %d, want 1", len(fc.Features))
	}
	if got := fc.Features[0].Properties["vegflokkun_text_is"]; got != "Stofnvegur" {
		t.Errorf("classification = %v, want Stofnvegur", got)
	}
}

func TestFetchRoadsCached(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(sampleGeoJSON))
	}))
	defer srv.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := NewClient(backend, 0, srv.URL, "")

	for i := 0; i < 2; i++ {
		if _, err := c.FetchRoads(context.Background(), false); err != nil {
			t.Fatalf("FetchRoads #%d: %v", i+1, err)
		}
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (second fetch served from cache)", requests)
	}
}

func TestSaveGeoJSON(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(cache.NewNullCache(), 0, srv.URL, "")
	path := filepath.Join(t.TempDir(), "roads.geojson")
	if err := c.SaveGeoJSON(context.Background(), path, false); err != nil {
		t.Fatalf("SaveGeoJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != sampleGeoJSON {
		t.Error("saved file does not mirror the service response")
	}
}
