package config

import (
	"time"

	"github.com/spf13/viper"
)

var defaultSafeHavenFragments = []string{"GRIM", "HEX", "PYRO", "RUIN", "CHECKMATE"}

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// API defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://uexcorp.space/api"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.API.Concurrency == 0 {
		cfg.API.Concurrency = 1
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "smuggler-go"
	}
	if cfg.API.RateLimit.Requests == 0 {
		cfg.API.RateLimit.Requests = 5
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = 5
	}
	if cfg.API.CircuitBreaker.MaxFailures == 0 {
		cfg.API.CircuitBreaker.MaxFailures = 5
	}
	if cfg.API.CircuitBreaker.Cooldown == 0 {
		cfg.API.CircuitBreaker.Cooldown = 30 * time.Second
	}

	// Engine defaults
	if cfg.Engine.MatchMode == "" {
		cfg.Engine.MatchMode = "substring"
	}
	if len(cfg.Engine.SafeHaven.Fragments) == 0 {
		cfg.Engine.SafeHaven.Fragments = append([]string(nil), defaultSafeHavenFragments...)
	}
	if cfg.Engine.SafeHaven.Limit == 0 {
		cfg.Engine.SafeHaven.Limit = 10
	}
	if cfg.Engine.ProjectionUnits == 0 {
		cfg.Engine.ProjectionUnits = 100
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9464
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// registerDefaults publishes every default key to viper so env overrides resolve
func registerDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.concurrency", d.API.Concurrency)
	v.SetDefault("api.user_agent", d.API.UserAgent)
	v.SetDefault("api.rate_limit.requests", d.API.RateLimit.Requests)
	v.SetDefault("api.rate_limit.burst", d.API.RateLimit.Burst)
	v.SetDefault("api.circuit_breaker.max_failures", d.API.CircuitBreaker.MaxFailures)
	v.SetDefault("api.circuit_breaker.cooldown", d.API.CircuitBreaker.Cooldown)

	v.SetDefault("engine.match_mode", d.Engine.MatchMode)
	v.SetDefault("engine.safe_haven.fragments", d.Engine.SafeHaven.Fragments)
	v.SetDefault("engine.safe_haven.limit", d.Engine.SafeHaven.Limit)
	v.SetDefault("engine.projection_units", d.Engine.ProjectionUnits)

	v.SetDefault("cache.ttl", d.Cache.TTL)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.include_caller", d.Logging.IncludeCaller)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.host", d.Metrics.Host)
	v.SetDefault("metrics.port", d.Metrics.Port)
	v.SetDefault("metrics.path", d.Metrics.Path)
}
