package config

import "time"

// APIConfig holds the UEX trading-data API client configuration
type APIConfig struct {
	// Base URL for the UEX API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Per-request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required,min=1ms"`

	// Collections fetched in parallel; 1 fetches them one after another
	Concurrency int `mapstructure:"concurrency" validate:"min=1,max=5"`

	UserAgent string `mapstructure:"user_agent"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// RateLimitConfig holds token bucket settings
type RateLimitConfig struct {
	// Requests per second
	Requests float64 `mapstructure:"requests" validate:"gt=0"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// CircuitBreakerConfig controls when the client stops calling a failing API
type CircuitBreakerConfig struct {
	// Consecutive failures before the circuit opens
	MaxFailures int `mapstructure:"max_failures" validate:"min=1"`

	// How long the circuit stays open before a probe
	Cooldown time.Duration `mapstructure:"cooldown" validate:"min=1s"`
}
