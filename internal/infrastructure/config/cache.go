package config

import "time"

// CacheConfig controls the market snapshot cache
type CacheConfig struct {
	// How long a snapshot is served before it is refetched
	TTL time.Duration `mapstructure:"ttl" validate:"min=1s"`
}
