package wfs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations"
)

// DefaultBaseURL is the National Land Survey WFS endpoint.
const DefaultBaseURL = "https://gis.lmi.is/geoserver/ows"

// DefaultTypeName is the IS 50V transport line layer.
const DefaultTypeName = "IS_50V:samgongur_linur"

// Client fetches road features from a WFS service.
type Client struct {
	*integrations.Client
	baseURL  string
	typeName string
}

// NewClient creates a WFS client with the given cache backend.
// Empty baseURL or typeName fall back to the IS 50V defaults.
func NewClient(backend cache.Cache, cacheTTL time.Duration, baseURL, typeName string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if typeName == "" {
		typeName = DefaultTypeName
	}
	return &Client{
		Client:   integrations.NewClient(backend, "wfs:", cacheTTL, nil),
		baseURL:  baseURL,
		typeName: typeName,
	}
}

// requestURL builds the GetFeature request for the configured layer.
func (c *Client) requestURL() string {
	params := url.Values{}
	params.Set("service", "WFS")
	params.Set("version", "1.0.0")
	params.Set("request", "GetFeature")
	params.Set("typeName", c.typeName)
	params.Set("outputFormat", "application/json")
	return c.baseURL + "?" + params.Encode()
}

// FetchRoads retrieves the road layer as a GeoJSON feature collection.
// If refresh is true the cache is bypassed.
func (c *Client) FetchRoads(ctx context.Context, refresh bool) (*geojson.FeatureCollection, error) {
	var raw []byte
	err := c.Cached(ctx, c.typeName, refresh, &raw, func() error {
		data, err := c.GetBytes(ctx, c.requestURL())
		if err != nil {
			return err
		}
		raw = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.typeName, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.typeName, err)
	}
	return fc, nil
}

// SaveGeoJSON fetches the road layer and writes the raw GeoJSON to path,
// mirroring the service output byte for byte.
func (c *Client) SaveGeoJSON(ctx context.Context, path string, refresh bool) error {
	var raw []byte
	err := c.Cached(ctx, c.typeName, refresh, &raw, func() error {
		data, err := c.GetBytes(ctx, c.requestURL())
		if err != nil {
			return err
		}
		raw = data
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetch %s: %w", c.typeName, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
