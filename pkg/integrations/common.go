// Package integrations provides shared HTTP plumbing for the clients that
// talk to Icelandic geodata and road services: the IS 50V WFS feature
// service, the vedur.is weather observations, and the vegagerdin.is traffic
// cameras and counting stations.
//
// Each service has its own subpackage with a typed client; this package
// holds the pieces they share (caching, retries, error sentinels).
package integrations

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a resource doesn't exist at the service.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a timeout sized for the WFS
// service, which can take tens of seconds to produce the full road layer.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
