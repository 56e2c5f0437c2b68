package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/smuggler-go/internal/adapters/api"
	"github.com/andrescamacho/smuggler-go/internal/adapters/metrics"
	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/commands"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/snapshot"
	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
	"github.com/andrescamacho/smuggler-go/internal/infrastructure/config"
	"github.com/andrescamacho/smuggler-go/internal/infrastructure/logging"
)

// App is the composition root: every adapter and handler wired from one Config
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Mediator   mediator.Mediator
	Snapshots  *snapshot.Holder
	Collectors *metrics.Collectors
}

// AppOption overrides part of the wiring, mostly for tests
type AppOption func(*appBuilder)

type appBuilder struct {
	fetcher market.SnapshotFetcher
	logger  *zerolog.Logger
	clock   shared.Clock
}

// WithSnapshotFetcher replaces the UEX-backed fetcher
func WithSnapshotFetcher(fetcher market.SnapshotFetcher) AppOption {
	return func(b *appBuilder) {
		b.fetcher = fetcher
	}
}

// WithAppLogger replaces the config-built logger
func WithAppLogger(logger zerolog.Logger) AppOption {
	return func(b *appBuilder) {
		b.logger = &logger
	}
}

// WithAppClock injects the clock used by the snapshot cache and the API client
func WithAppClock(clock shared.Clock) AppOption {
	return func(b *appBuilder) {
		b.clock = clock
	}
}

// NewApp wires the application from config
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	b := &appBuilder{clock: shared.NewRealClock()}
	for _, opt := range opts {
		opt(b)
	}

	logger := logging.New(cfg.Logging)
	if b.logger != nil {
		logger = *b.logger
	}

	if cfg.Metrics.Enabled && !metrics.IsEnabled() {
		metrics.InitRegistry()
	}
	collectors, err := metrics.NewCollectors()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	fetcher := b.fetcher
	if fetcher == nil {
		client := api.NewUEXClient(
			api.ClientConfig{
				BaseURL:            cfg.API.BaseURL,
				Timeout:            cfg.API.Timeout,
				RateLimit:          cfg.API.RateLimit.Requests,
				RateBurst:          cfg.API.RateLimit.Burst,
				BreakerMaxFailures: cfg.API.CircuitBreaker.MaxFailures,
				BreakerCooldown:    cfg.API.CircuitBreaker.Cooldown,
				UserAgent:          cfg.API.UserAgent,
			},
			api.WithClientClock(b.clock),
			api.WithClientLogger(logger.With().Str("component", "uex_client").Logger()),
			api.WithRequestRecorder(collectors.API),
		)
		fetcher = api.NewSnapshotFetcher(
			client,
			api.WithConcurrency(cfg.API.Concurrency),
			api.WithFetcherClock(b.clock),
			api.WithFetcherLogger(logger.With().Str("component", "snapshot_fetcher").Logger()),
			api.WithFetchRecorder(collectors.Fetch),
		)
	}

	holder := snapshot.NewHolder(
		fetcher,
		cfg.Cache.TTL,
		snapshot.WithClock(b.clock),
		snapshot.WithRecorder(collectors.Snapshot),
		snapshot.WithLogger(logger.With().Str("component", "snapshot").Logger()),
	)

	matcher, err := trading.NewNameMatcher(trading.MatchMode(cfg.Engine.MatchMode))
	if err != nil {
		return nil, err
	}
	extractor := trading.NewOfferExtractor(matcher)
	optimizer := trading.NewRouteOptimizer()
	classifier := trading.NewSafeHavenClassifier(cfg.Engine.SafeHaven.Fragments, cfg.Engine.SafeHaven.Limit)

	med := mediator.NewMediator()
	med.Use(mediator.LoggingMiddleware(logger))
	med.Use(metrics.PrometheusMiddleware(collectors.Command))

	registrations := []error{
		mediator.RegisterHandler[*queries.ListEligibleGoodsQuery](med, queries.NewListEligibleGoodsHandler(holder)),
		mediator.RegisterHandler[*queries.GetOffersQuery](med, queries.NewGetOffersHandler(holder, extractor)),
		mediator.RegisterHandler[*queries.ComputeOptimalRouteQuery](med, queries.NewComputeOptimalRouteHandler(optimizer)),
		mediator.RegisterHandler[*queries.FindRouteQuery](med, queries.NewFindRouteHandler(holder, extractor, optimizer)),
		mediator.RegisterHandler[*queries.ListSafeHavensQuery](med, queries.NewListSafeHavensHandler(holder, classifier)),
		mediator.RegisterHandler[*queries.GetMarketOverviewQuery](med, queries.NewGetMarketOverviewHandler(holder)),
		mediator.RegisterHandler[*commands.RefreshSnapshotCommand](med, commands.NewRefreshSnapshotHandler(holder)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Mediator:   med,
		Snapshots:  holder,
		Collectors: collectors,
	}, nil
}
