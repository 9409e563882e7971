package config

import "time"

// CacheConfig configures the registry cache.
type CacheConfig struct {
	// Path is the SQLite database location, relative to the project root
	// unless absolute.
	Path string `yaml:"path"`

	// TTL is how long a cached registry stays fresh. Local files and
	// installed packages can change between CLI invocations, so this is
	// deliberately short.
	TTL time.Duration `yaml:"ttl"`
}

// DefaultCacheConfig returns cache defaults.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Path: ".uismith/registry.db",
		TTL:  15 * time.Minute,
	}
}
