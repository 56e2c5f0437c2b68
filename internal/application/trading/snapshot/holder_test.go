package snapshot_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/snapshot"
	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/shared"
)

// scriptedFetcher returns the queued collections in order; an empty Collections value
// produces an unusable snapshot
type scriptedFetcher struct {
	mu     sync.Mutex
	clock  shared.Clock
	script []market.Collections
	calls  int
}

func (f *scriptedFetcher) FetchSnapshot(context.Context) *market.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := market.Collections{}
	if f.calls < len(f.script) {
		data = f.script[f.calls]
	}
	f.calls++
	return market.NewSnapshot(f.clock.Now(), data, nil)
}

func (f *scriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordedRefresh struct {
	results []string
}

func (r *recordedRefresh) RecordSnapshotRefresh(result string, _ time.Duration) {
	r.results = append(r.results, result)
}

func withQuotes(terminal string) market.Collections {
	return market.Collections{
		Quotes: []market.PriceQuote{market.MustNewPriceQuote("Neon", terminal, 80, 0, 10)},
	}
}

func TestHolder_CachesWithinTTL(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	fetcher := &scriptedFetcher{clock: clock, script: []market.Collections{withQuotes("T1"), withQuotes("T2")}}
	holder := snapshot.NewHolder(fetcher, 5*time.Minute, snapshot.WithClock(clock))

	first, err := holder.Current(context.Background())
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	second, err := holder.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 1, fetcher.Calls())
}

func TestHolder_RefetchesAfterTTL(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	fetcher := &scriptedFetcher{clock: clock, script: []market.Collections{withQuotes("T1"), withQuotes("T2")}}
	holder := snapshot.NewHolder(fetcher, 5*time.Minute, snapshot.WithClock(clock))

	first, err := holder.Current(context.Background())
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	second, err := holder.Current(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, "T2", second.Quotes()[0].TerminalName())
	assert.Equal(t, 2, fetcher.Calls())
}

func TestHolder_InvalidateForcesRefetch(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	fetcher := &scriptedFetcher{clock: clock, script: []market.Collections{withQuotes("T1"), withQuotes("T2")}}
	holder := snapshot.NewHolder(fetcher, 0, snapshot.WithClock(clock))

	first, err := holder.Current(context.Background())
	require.NoError(t, err)

	holder.Invalidate()
	assert.Equal(t, first.ID(), holder.Peek().ID(), "stale snapshot stays visible until replaced")

	second, err := holder.Current(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestHolder_FailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	recorder := &recordedRefresh{}
	fetcher := &scriptedFetcher{clock: clock, script: []market.Collections{withQuotes("T1"), {}}}
	holder := snapshot.NewHolder(fetcher, time.Minute, snapshot.WithClock(clock), snapshot.WithRecorder(recorder))

	first, err := holder.Current(context.Background())
	require.NoError(t, err)

	_, err = holder.Refresh(context.Background())
	assert.ErrorIs(t, err, market.ErrSnapshotUnusable)
	assert.Equal(t, first.ID(), holder.Peek().ID())

	clock.Advance(2 * time.Minute)
	served, err := holder.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID(), served.ID())

	assert.Equal(t, []string{snapshot.ResultSwapped, snapshot.ResultKeptPrevious, snapshot.ResultKeptPrevious}, recorder.results)
}

func TestHolder_NoDataWithoutPreviousSnapshot(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	fetcher := &scriptedFetcher{clock: clock}
	holder := snapshot.NewHolder(fetcher, time.Minute, snapshot.WithClock(clock))

	snap, err := holder.Current(context.Background())

	assert.Nil(t, snap)
	assert.True(t, errors.Is(err, market.ErrSnapshotUnusable))
	assert.Nil(t, holder.Peek())
}

func TestHolder_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	script := make([]market.Collections, 50)
	for i := range script {
		script[i] = withQuotes("T")
	}
	fetcher := &scriptedFetcher{clock: clock, script: script}
	holder := snapshot.NewHolder(fetcher, 0, snapshot.WithClock(clock))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				holder.Invalidate()
				snap, err := holder.Current(context.Background())
				if err == nil {
					assert.Len(t, snap.Quotes(), 1)
				}
			}
		}()
	}
	wg.Wait()

	assert.NotNil(t, holder.Peek())
}
