package vedur

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations"
)

const sampleFeed = `{
	"results": [
		{"name": "Reykjavík", "lat": 64.13, "lon": -21.9, "F": 5.2, "T": 3.1},
		{"name": "Akureyri", "lat": 65.68, "lon": -18.1, "F": 2.0, "T": -1.5},
		{"name": "Vestmannaeyjar", "lat": 63.44, "lon": -20.27, "F": 11.8, "T": 4.0}
	]
}`

func newTestClient(t *testing.T, body string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(cache.NewNullCache(), 0, srv.URL), srv
}

func TestObservations(t *testing.T) {
	c, _ := newTestClient(t, sampleFeed)

	obs, err := c.Observations(context.Background(), false)
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("observations = %d, want 3", len(obs))
	}
	if obs[0].StationName != "Reykjavík" || obs[0].WindSpeed != 5.2 {
		t.Errorf("first observation = %+v", obs[0])
	}
}

func TestClosestObservation(t *testing.T) {
	c, _ := newTestClient(t, sampleFeed)

	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{name: "NearCapital", lat: 64.1, lon: -21.8, want: "Reykjavík"},
		{name: "NearNorth", lat: 66.0, lon: -18.0, want: "Akureyri"},
		{name: "NearIslands", lat: 63.4, lon: -20.3, want: "Vestmannaeyjar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := c.ClosestObservation(context.Background(), tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("ClosestObservation: %v", err)
			}
			if obs.StationName != tt.want {
				t.Errorf("station = %q, want %q", obs.StationName, tt.want)
			}
		})
	}
}

func TestClosestObservationEmptyFeed(t *testing.T) {
	c, _ := newTestClient(t, `{"results": []}`)

	_, err := c.ClosestObservation(context.Background(), 64, -21)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Fatalf("ClosestObservation error = %v, want ErrNotFound", err)
	}
}
