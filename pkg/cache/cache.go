// Package cache provides response caching for the integration clients.
//
// The [Cache] interface has three backends:
//
//   - [FileCache]: entries as files under a directory, for CLI usage
//   - [RedisCache]: a shared Redis instance, for server deployments
//   - [NullCache]: a no-op backend for tests and --no-cache runs
//
// Entries carry a TTL; expired entries read as misses. Keys are hashed with
// SHA-256 before storage so arbitrary strings (URLs, coordinates) are safe.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with expiration.
//
// Get reports (data, true, nil) on a hit, (nil, false, nil) on a miss or
// expired entry, and a non-nil error only for backend failures. Backends
// are safe for concurrent use unless documented otherwise.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
