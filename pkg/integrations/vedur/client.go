package vedur

import (
	"context"
	"fmt"
	"time"

	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations"
)

// DefaultBaseURL serves the current observations for all stations.
const DefaultBaseURL = "https://apis.is/weather/observations"

// Observation is a weather reading at a station.
type Observation struct {
	StationName string  `json:"name"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	WindSpeed   float64 `json:"F"` // m/s
	Temperature float64 `json:"T"` // °C
}

type observationsResponse struct {
	Results []Observation `json:"results"`
}

// Client looks up weather observations by nearest station.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a weather client with the given cache backend.
// Observations go stale quickly; a TTL of a few minutes is appropriate.
func NewClient(backend cache.Cache, cacheTTL time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(backend, "vedur:", cacheTTL, nil),
		baseURL: baseURL,
	}
}

// Observations fetches the current readings for all stations.
func (c *Client) Observations(ctx context.Context, refresh bool) ([]Observation, error) {
	var resp observationsResponse
	if err := c.Cached(ctx, "observations", refresh, &resp, func() error {
		return c.GetJSON(ctx, c.baseURL, &resp)
	}); err != nil {
		return nil, fmt.Errorf("fetch observations: %w", err)
	}
	return resp.Results, nil
}

// ClosestObservation returns the reading from the station nearest to the
// given latitude/longitude. Returns [integrations.ErrNotFound] when the
// feed lists no stations.
func (c *Client) ClosestObservation(ctx context.Context, lat, lon float64) (*Observation, error) {
	obs, err := c.Observations(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no weather stations in feed", integrations.ErrNotFound)
	}

	best := 0
	bestDist := sqDist(lat, lon, obs[0].Latitude, obs[0].Longitude)
	for i, o := range obs[1:] {
		if d := sqDist(lat, lon, o.Latitude, o.Longitude); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return &obs[best], nil
}

// sqDist is the squared coordinate distance, sufficient for nearest-station
// ordering at Iceland's extent.
func sqDist(aLat, aLon, bLat, bLon float64) float64 {
	dLat, dLon := aLat-bLat, aLon-bLon
	return dLat*dLat + dLon*dLon
}
