package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

const (
	DefaultBaseURL = "https://uexcorp.space/api"
	DefaultTimeout = 10 * time.Second

	defaultRateLimit          = 5.0
	defaultRateBurst          = 5
	defaultBreakerMaxFailures = 5
	defaultBreakerCooldown    = 30 * time.Second
	maxErrorBodyBytes         = 512
)

// ErrUnexpectedStatus is returned for any non-2xx response
var ErrUnexpectedStatus = errors.New("unexpected status from market API")

// RequestRecorder receives one event per HTTP exchange with the market API
type RequestRecorder interface {
	RecordAPIRequest(endpoint string, statusCode int, duration time.Duration)
	RecordRateLimitWait(endpoint string, duration time.Duration)
}

type noopRequestRecorder struct{}

func (noopRequestRecorder) RecordAPIRequest(string, int, time.Duration) {}
func (noopRequestRecorder) RecordRateLimitWait(string, time.Duration)  {}

// ClientConfig holds the tunables of the UEX client
type ClientConfig struct {
	BaseURL            string
	Timeout            time.Duration
	RateLimit          float64 // requests per second, 0 disables limiting
	RateBurst          int
	BreakerMaxFailures int
	BreakerCooldown    time.Duration
	UserAgent          string
}

// DefaultClientConfig returns the production settings
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:            DefaultBaseURL,
		Timeout:            DefaultTimeout,
		RateLimit:          defaultRateLimit,
		RateBurst:          defaultRateBurst,
		BreakerMaxFailures: defaultBreakerMaxFailures,
		BreakerCooldown:    defaultBreakerCooldown,
		UserAgent:          "smuggler-go",
	}
}

// UEXClient reads collections from the UEX trading-data API.
// Each call is a single attempt; failure handling belongs to the caller.
type UEXClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreaker
	baseURL     string
	userAgent   string
	clock       shared.Clock
	logger      zerolog.Logger
	recorder    RequestRecorder
}

// ClientOption configures a UEXClient
type ClientOption func(*UEXClient)

// WithHTTPClient replaces the HTTP client; its Timeout is overridden by the config
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *UEXClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithClientClock injects the clock used for durations and the circuit breaker
func WithClientClock(clock shared.Clock) ClientOption {
	return func(c *UEXClient) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithClientLogger sets the logger
func WithClientLogger(logger zerolog.Logger) ClientOption {
	return func(c *UEXClient) {
		c.logger = logger
	}
}

// WithRequestRecorder reports request metrics
func WithRequestRecorder(recorder RequestRecorder) ClientOption {
	return func(c *UEXClient) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

// NewUEXClient creates a client from config
func NewUEXClient(cfg ClientConfig, opts ...ClientOption) *UEXClient {
	defaults := DefaultClientConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	c := &UEXClient{
		httpClient:  &http.Client{},
		rateLimiter: rate.NewLimiter(limit, burst),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		clock:       shared.NewRealClock(),
		logger:      zerolog.Nop(),
		recorder:    noopRequestRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Timeout = cfg.Timeout

	c.breaker = NewCircuitBreaker(cfg.BreakerMaxFailures, cfg.BreakerCooldown, c.clock)
	c.breaker.OnStateChange(func(from, to CircuitState) {
		c.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("market API circuit breaker changed state")
	})

	return c
}

// Breaker exposes the circuit breaker for status reporting
func (c *UEXClient) Breaker() *CircuitBreaker {
	return c.breaker
}

// envelope is the wrapper every UEX list endpoint returns
type envelope struct {
	Status string            `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

// FetchCollection implements market.CollectionFetcher
func (c *UEXClient) FetchCollection(ctx context.Context, collection market.Collection) ([]json.RawMessage, error) {
	endpoint, err := collection.Endpoint()
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	err = c.breaker.Call(func() error {
		var reqErr error
		records, reqErr = c.get(ctx, endpoint)
		return reqErr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}
	return records, nil
}

func (c *UEXClient) get(ctx context.Context, endpoint string) ([]json.RawMessage, error) {
	waitStart := c.clock.Now()
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}
	c.recorder.RecordRateLimitWait(endpoint, c.clock.Now().Sub(waitStart))

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.RecordAPIRequest(endpoint, 0, c.clock.Now().Sub(start))
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	duration := c.clock.Now().Sub(start)
	c.recorder.RecordAPIRequest(endpoint, resp.StatusCode, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("market API response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w (status %d): %s", ErrUnexpectedStatus, resp.StatusCode, truncate(body, maxErrorBodyBytes))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if env.Status != "" && env.Status != "ok" {
		return nil, fmt.Errorf("%w: envelope status %q", ErrUnexpectedStatus, env.Status)
	}
	if env.Data == nil {
		return []json.RawMessage{}, nil
	}
	return env.Data, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
