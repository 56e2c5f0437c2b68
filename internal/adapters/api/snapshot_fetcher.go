package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

// FetchRecorder receives the outcome of every collection fetch
type FetchRecorder interface {
	RecordCollectionFetch(outcome market.FetchOutcome)
}

type noopFetchRecorder struct{}

func (noopFetchRecorder) RecordCollectionFetch(market.FetchOutcome) {}

// SnapshotFetcher pulls all five collections and assembles a snapshot.
//
// Every collection is fetched and decoded inside its own failure boundary: a network
// error, bad status, undecodable body or panic empties that collection only.
type SnapshotFetcher struct {
	source      market.CollectionFetcher
	concurrency int
	clock       shared.Clock
	logger      zerolog.Logger
	recorder    FetchRecorder
}

// FetcherOption configures a SnapshotFetcher
type FetcherOption func(*SnapshotFetcher)

// WithConcurrency bounds parallel collection fetches; 1 fetches sequentially
func WithConcurrency(n int) FetcherOption {
	return func(f *SnapshotFetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithFetcherClock injects the clock stamped on snapshots
func WithFetcherClock(clock shared.Clock) FetcherOption {
	return func(f *SnapshotFetcher) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// WithFetcherLogger sets the logger
func WithFetcherLogger(logger zerolog.Logger) FetcherOption {
	return func(f *SnapshotFetcher) {
		f.logger = logger
	}
}

// WithFetchRecorder reports per-collection outcomes to a metrics recorder
func WithFetchRecorder(recorder FetchRecorder) FetcherOption {
	return func(f *SnapshotFetcher) {
		if recorder != nil {
			f.recorder = recorder
		}
	}
}

// NewSnapshotFetcher creates a fetcher reading from source
func NewSnapshotFetcher(source market.CollectionFetcher, opts ...FetcherOption) *SnapshotFetcher {
	f := &SnapshotFetcher{
		source:      source,
		concurrency: 1,
		clock:       shared.NewRealClock(),
		logger:      zerolog.Nop(),
		recorder:    noopFetchRecorder{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchSnapshot implements market.SnapshotFetcher
func (f *SnapshotFetcher) FetchSnapshot(ctx context.Context) *market.Snapshot {
	var data market.Collections
	outcomes := make([]market.FetchOutcome, len(market.AllCollections))

	// Each task writes only its own field of data and its own outcome slot.
	tasks := map[market.Collection]func(raw []json.RawMessage) (int, int, error){
		market.CollectionCommodities: func(raw []json.RawMessage) (n, skipped int, err error) {
			data.Commodities, skipped, err = decodeCommodities(raw)
			return len(data.Commodities), skipped, err
		},
		market.CollectionPrices: func(raw []json.RawMessage) (n, skipped int, err error) {
			data.Quotes, skipped, err = decodeQuotes(raw)
			return len(data.Quotes), skipped, err
		},
		market.CollectionTerminals: func(raw []json.RawMessage) (n, skipped int, err error) {
			data.Terminals, skipped, err = decodeTerminals(raw)
			return len(data.Terminals), skipped, err
		},
		market.CollectionStations: func(raw []json.RawMessage) (n, skipped int, err error) {
			data.Stations, skipped, err = decodeStations(raw)
			return len(data.Stations), skipped, err
		},
		market.CollectionSystems: func(raw []json.RawMessage) (n, skipped int, err error) {
			data.Systems, skipped, err = decodeSystems(raw)
			return len(data.Systems), skipped, err
		},
	}

	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)
	for i, collection := range market.AllCollections {
		i, collection := i, collection
		decode := tasks[collection]
		g.Go(func() error {
			outcomes[i] = f.fetchOne(ctx, collection, decode)
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors

	snap := market.NewSnapshot(f.clock.Now(), data, outcomes)
	if !snap.IsUsable() {
		f.logger.Error().Msg("every collection came back empty")
	}
	return snap
}

func (f *SnapshotFetcher) fetchOne(
	ctx context.Context,
	collection market.Collection,
	decode func(raw []json.RawMessage) (int, int, error),
) (outcome market.FetchOutcome) {
	start := f.clock.Now()
	outcome.Collection = collection

	defer func() {
		if r := recover(); r != nil {
			outcome.Records = 0
			outcome.Err = fmt.Errorf("panic while fetching %s: %v", collection, r)
		}
		outcome.Duration = f.clock.Now().Sub(start)
		f.report(outcome)
	}()

	raw, err := f.source.FetchCollection(ctx, collection)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	records, skipped, skipErr := decode(raw)
	outcome.Records = records
	outcome.Skipped = skipped
	if skipped > 0 {
		f.logger.Warn().
			Str("collection", collection.String()).
			Int("skipped", skipped).
			AnErr("first_error", skipErr).
			Msg("skipped invalid records")
	}
	return outcome
}

func (f *SnapshotFetcher) report(outcome market.FetchOutcome) {
	f.recorder.RecordCollectionFetch(outcome)

	if outcome.Failed() {
		f.logger.Warn().
			Str("collection", outcome.Collection.String()).
			Err(outcome.Err).
			Dur("duration", outcome.Duration).
			Msg("collection unavailable, continuing with empty data")
		return
	}
	f.logger.Debug().
		Str("collection", outcome.Collection.String()).
		Int("records", outcome.Records).
		Dur("duration", outcome.Duration).
		Msg("collection fetched")
}

var _ market.SnapshotFetcher = (*SnapshotFetcher)(nil)
var _ market.CollectionFetcher = (*UEXClient)(nil)

