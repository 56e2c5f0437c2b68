package snapshot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

// Refresh results reported to the RefreshRecorder
const (
	ResultSwapped      = "swapped"
	ResultKeptPrevious = "kept_previous"
	ResultUnusable     = "unusable"
)

// RefreshRecorder receives one event per completed refresh
type RefreshRecorder interface {
	RecordSnapshotRefresh(result string, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordSnapshotRefresh(string, time.Duration) {}

// entry pairs the cached snapshot with its invalidation flag so both swap together
type entry struct {
	snapshot    *market.Snapshot
	invalidated bool
}

// Holder caches the last usable snapshot and swaps it atomically on refresh.
//
// Readers always see either the previous snapshot or the new one, never a mix of
// collections from two fetches. A refresh that produces an unusable snapshot leaves
// the previous one in place.
type Holder struct {
	fetcher  market.SnapshotFetcher
	clock    shared.Clock
	ttl      time.Duration
	logger   zerolog.Logger
	recorder RefreshRecorder

	current atomic.Pointer[entry]
	group   singleflight.Group
}

// Option configures a Holder
type Option func(*Holder)

// WithClock injects a clock; tests use shared.MockClock to drive TTL expiry
func WithClock(clock shared.Clock) Option {
	return func(h *Holder) {
		if clock != nil {
			h.clock = clock
		}
	}
}

// WithRecorder reports refresh events to a metrics recorder
func WithRecorder(recorder RefreshRecorder) Option {
	return func(h *Holder) {
		if recorder != nil {
			h.recorder = recorder
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Holder) {
		h.logger = logger
	}
}

// NewHolder creates a holder. A ttl of zero or less means a cached snapshot never
// expires on its own and is replaced only after Invalidate.
func NewHolder(fetcher market.SnapshotFetcher, ttl time.Duration, opts ...Option) *Holder {
	h := &Holder{
		fetcher:  fetcher,
		clock:    shared.NewRealClock(),
		ttl:      ttl,
		logger:   zerolog.Nop(),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Current returns the cached snapshot while it is fresh, refreshing otherwise.
// When a refresh fails but an older snapshot exists, the older one is served.
func (h *Holder) Current(ctx context.Context) (*market.Snapshot, error) {
	cached := h.current.Load()
	if cached != nil && h.fresh(cached) {
		return cached.snapshot, nil
	}

	snap, err := h.Refresh(ctx)
	if err == nil {
		return snap, nil
	}

	if cached != nil {
		h.logger.Warn().
			Err(err).
			Str("snapshot_id", cached.snapshot.ID().String()).
			Dur("age", cached.snapshot.Age(h.clock.Now())).
			Msg("refresh failed, serving previous snapshot")
		return cached.snapshot, nil
	}

	return nil, err
}

// Peek returns the cached snapshot without fetching, or nil if nothing is cached
func (h *Holder) Peek() *market.Snapshot {
	if e := h.current.Load(); e != nil {
		return e.snapshot
	}
	return nil
}

// Invalidate marks the cached snapshot stale so the next Current call refetches.
// The stale snapshot stays available until a refresh succeeds.
func (h *Holder) Invalidate() {
	for {
		old := h.current.Load()
		if old == nil || old.invalidated {
			return
		}
		if h.current.CompareAndSwap(old, &entry{snapshot: old.snapshot, invalidated: true}) {
			h.logger.Debug().Str("snapshot_id", old.snapshot.ID().String()).Msg("snapshot invalidated")
			return
		}
	}
}

// Refresh fetches a new snapshot synchronously. Concurrent callers share one fetch.
// An unusable result is discarded and market.ErrSnapshotUnusable returned.
func (h *Holder) Refresh(ctx context.Context) (*market.Snapshot, error) {
	v, err, _ := h.group.Do("refresh", func() (interface{}, error) {
		return h.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*market.Snapshot), nil
}

func (h *Holder) refresh(ctx context.Context) (*market.Snapshot, error) {
	start := h.clock.Now()
	snap := h.fetcher.FetchSnapshot(ctx)
	duration := h.clock.Now().Sub(start)

	if !snap.IsUsable() {
		result := ResultUnusable
		if h.current.Load() != nil {
			result = ResultKeptPrevious
		}
		h.recorder.RecordSnapshotRefresh(result, duration)
		h.logger.Error().Str("result", result).Msg("fetched snapshot has no data")
		return nil, fmt.Errorf("refresh snapshot: %w", market.ErrSnapshotUnusable)
	}

	h.current.Store(&entry{snapshot: snap})
	h.recorder.RecordSnapshotRefresh(ResultSwapped, duration)

	event := h.logger.Info().
		Str("snapshot_id", snap.ID().String()).
		Int("commodities", len(snap.Commodities())).
		Int("quotes", len(snap.Quotes())).
		Int("terminals", len(snap.Terminals()))
	for _, o := range snap.Outcomes() {
		if o.Failed() {
			event = event.Str("degraded_"+o.Collection.String(), o.Err.Error())
		}
	}
	event.Msg("snapshot refreshed")

	return snap, nil
}

func (h *Holder) fresh(e *entry) bool {
	if e.invalidated {
		return false
	}
	if h.ttl <= 0 {
		return true
	}
	return e.snapshot.Age(h.clock.Now()) < h.ttl
}
