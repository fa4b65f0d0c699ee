// Package config loads vegakort configuration from a TOML file.
//
// All settings have working defaults; a config file only needs the keys it
// overrides. The default location is ~/.config/vegakort/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable settings.
type Config struct {
	Cache      CacheConfig   `toml:"cache"`
	WFS        WFSConfig     `toml:"wfs"`
	Vedur      ServiceConfig `toml:"vedur"`
	Vegagerdin ServiceConfig `toml:"vegagerdin"`
	Server     ServerConfig  `toml:"server"`
}

// CacheConfig selects and tunes the HTTP response cache.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`
	// Dir is the file-cache directory; empty means ~/.cache/vegakort.
	Dir string `toml:"dir"`
	// TTL is how long responses stay fresh.
	TTL duration `toml:"ttl"`
	// RedisAddr is the host:port of the Redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// WFSConfig points at the feature service serving the road layer.
type WFSConfig struct {
	BaseURL  string `toml:"base_url"`
	TypeName string `toml:"type_name"`
}

// ServiceConfig points at a plain HTTP data service.
type ServiceConfig struct {
	BaseURL string `toml:"base_url"`
}

// ServerConfig tunes the demo HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// duration adds TOML string parsing ("24h", "5m") to time.Duration.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the setting as a time.Duration.
func (d duration) Duration() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache:  CacheConfig{Backend: "file", TTL: duration(24 * time.Hour)},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vegakort", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// at the default location is not an error; an explicitly given path must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
