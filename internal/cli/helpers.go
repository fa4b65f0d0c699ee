package cli

import (
	"context"
	"fmt"

	"github.com/solrun/vegakort/internal/config"
	"github.com/solrun/vegakort/pkg/cache"
	"github.com/solrun/vegakort/pkg/integrations/vedur"
	"github.com/solrun/vegakort/pkg/integrations/vegagerdin"
	"github.com/solrun/vegakort/pkg/integrations/wfs"
)

// newBackend builds the cache backend selected by the configuration.
func newBackend(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "file":
		return cache.NewFileCache(cfg.Cache.Dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:   cfg.Cache.RedisAddr,
			Prefix: "vegakort:",
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, or none)", cfg.Cache.Backend)
	}
}

// newWFSClient builds the WFS client from the configuration.
func newWFSClient(backend cache.Cache, cfg config.Config) *wfs.Client {
	return wfs.NewClient(backend, cfg.Cache.TTL.Duration(), cfg.WFS.BaseURL, cfg.WFS.TypeName)
}

// newVedurClient builds the weather client from the configuration.
func newVedurClient(backend cache.Cache, cfg config.Config) *vedur.Client {
	return vedur.NewClient(backend, cfg.Cache.TTL.Duration(), cfg.Vedur.BaseURL)
}

// newVegagerdinClient builds the Road Administration client from the
// configuration.
func newVegagerdinClient(backend cache.Cache, cfg config.Config) *vegagerdin.Client {
	return vegagerdin.NewClient(backend, cfg.Cache.TTL.Duration(), cfg.Vegagerdin.BaseURL)
}
