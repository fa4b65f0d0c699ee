package vegagerdin

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations"
	"github.com/solrun/vegakort/pkg/roadgraph"
)

// DefaultBaseURL is the Road Administration data service.
const DefaultBaseURL = "http://gagnaveita.vegagerdin.is/api"

// Camera is one entry of the traffic-camera registry. The wire field names
// are the Icelandic ones the service emits (Slod = URL, Breidd = latitude,
// Lengd = longitude).
type Camera struct {
	Name      string  `json:"Nafn"`
	ImageURL  string  `json:"Slod"`
	Latitude  float64 `json:"Breidd"`
	Longitude float64 `json:"Lengd"`
}

// counterRecord is one traffic-counter reading as the umferd feed emits it.
type counterRecord struct {
	Latitude   float64 `json:"Breidd"`
	Longitude  float64 `json:"Lengd"`
	FifteenMin float64 `json:"Umf15Min"`
	Today      float64 `json:"UmfIDag"`
	Monday     float64 `json:"UmfMan"`
	Tuesday    float64 `json:"UmfThri"`
	Wednesday  float64 `json:"UmfMid"`
	Thursday   float64 `json:"UmfFim"`
	Friday     float64 `json:"UmfFos"`
	Saturday   float64 `json:"UmfLau"`
	Sunday     float64 `json:"UmfSun"`
}

// Client consumes the camera registry and the traffic-counter feed.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Road Administration client with the given cache
// backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(backend, "vegagerdin:", cacheTTL, nil),
		baseURL: baseURL,
	}
}

// Cameras fetches the traffic-camera registry.
func (c *Client) Cameras(ctx context.Context, refresh bool) ([]Camera, error) {
	var cams []Camera
	if err := c.Cached(ctx, "vefmyndavelar", refresh, &cams, func() error {
		return c.GetJSON(ctx, c.baseURL+"/vefmyndavelar2014_1", &cams)
	}); err != nil {
		return nil, fmt.Errorf("fetch cameras: %w", err)
	}
	return cams, nil
}

// ClosestCamera returns the registry entry nearest to the given
// latitude/longitude. Returns [integrations.ErrNotFound] when the registry
// is empty.
func (c *Client) ClosestCamera(ctx context.Context, lat, lon float64) (*Camera, error) {
	cams, err := c.Cameras(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(cams) == 0 {
		return nil, fmt.Errorf("%w: camera registry is empty", integrations.ErrNotFound)
	}

	best := 0
	bestDist := sqDist(lat, lon, cams[0].Latitude, cams[0].Longitude)
	for i, cam := range cams[1:] {
		if d := sqDist(lat, lon, cam.Latitude, cam.Longitude); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return &cams[best], nil
}

// FetchImage downloads the current frame of a camera. Images are never
// cached.
func (c *Client) FetchImage(ctx context.Context, cam *Camera) ([]byte, error) {
	data, err := c.GetBytes(ctx, cam.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch camera image %s: %w", cam.ImageURL, err)
	}
	return data, nil
}

// TrafficCounts fetches the traffic-counter feed and converts it to the
// observation records consumed by [roadgraph.Graph.AssignTraffic]. Counter
// positions are reported in the same planar projection as the IS 50V road
// layer.
func (c *Client) TrafficCounts(ctx context.Context, refresh bool) ([]roadgraph.Observation, error) {
	var records []counterRecord
	if err := c.Cached(ctx, "umferd", refresh, &records, func() error {
		return c.GetJSON(ctx, c.baseURL+"/umferd", &records)
	}); err != nil {
		return nil, fmt.Errorf("fetch traffic counts: %w", err)
	}

	obs := make([]roadgraph.Observation, len(records))
	for i, r := range records {
		obs[i] = roadgraph.Observation{
			Position: orb.Point{r.Longitude, r.Latitude},
			Counts: roadgraph.VolumeCounts{
				FifteenMin: r.FifteenMin,
				Today:      r.Today,
				Monday:     r.Monday,
				Tuesday:    r.Tuesday,
				Wednesday:  r.Wednesday,
				Thursday:   r.Thursday,
				Friday:     r.Friday,
				Saturday:   r.Saturday,
				Sunday:     r.Sunday,
			},
		}
	}
	return obs, nil
}

func sqDist(aLat, aLon, bLat, bLon float64) float64 {
	dLat, dLon := aLat-bLat, aLon-bLon
	return dLat*dLat + dLon*dLon
}
