package market

import (
	"time"

	"github.com/google/uuid"
)

// Collections groups the five data sets that make up a snapshot
type Collections struct {
	Commodities []Commodity
	Quotes      []PriceQuote
	Terminals   []Terminal
	Stations    []Station
	Systems     []StarSystem
}

// FetchOutcome records how one collection fared during a fetch.
// Err is nil when the collection was retrieved, even if it was empty.
type FetchOutcome struct {
	Collection Collection
	Records    int
	Skipped    int
	Duration   time.Duration
	Err        error
}

// Failed reports whether the collection degraded to empty because of an error
func (o FetchOutcome) Failed() bool {
	return o.Err != nil
}

// Snapshot is an immutable view of every collection as fetched at one point in time.
// Snapshots are replaced wholesale on refresh, never mutated.
type Snapshot struct {
	id        uuid.UUID
	fetchedAt time.Time
	data      Collections
	outcomes  []FetchOutcome
}

// NewSnapshot builds a snapshot from fetched collections, copying every slice
func NewSnapshot(fetchedAt time.Time, data Collections, outcomes []FetchOutcome) *Snapshot {
	return &Snapshot{
		id:        uuid.New(),
		fetchedAt: fetchedAt,
		data: Collections{
			Commodities: append([]Commodity(nil), data.Commodities...),
			Quotes:      append([]PriceQuote(nil), data.Quotes...),
			Terminals:   append([]Terminal(nil), data.Terminals...),
			Stations:    append([]Station(nil), data.Stations...),
			Systems:     append([]StarSystem(nil), data.Systems...),
		},
		outcomes: append([]FetchOutcome(nil), outcomes...),
	}
}

// ID uniquely identifies the fetch that produced this snapshot
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

func (s *Snapshot) FetchedAt() time.Time {
	return s.fetchedAt
}

func (s *Snapshot) Commodities() []Commodity {
	return append([]Commodity(nil), s.data.Commodities...)
}

func (s *Snapshot) Quotes() []PriceQuote {
	return append([]PriceQuote(nil), s.data.Quotes...)
}

func (s *Snapshot) Terminals() []Terminal {
	return append([]Terminal(nil), s.data.Terminals...)
}

func (s *Snapshot) Stations() []Station {
	return append([]Station(nil), s.data.Stations...)
}

func (s *Snapshot) Systems() []StarSystem {
	return append([]StarSystem(nil), s.data.Systems...)
}

// Outcomes returns the per-collection fetch results in fetch order
func (s *Snapshot) Outcomes() []FetchOutcome {
	return append([]FetchOutcome(nil), s.outcomes...)
}

// IsUsable is false when every collection came back empty
func (s *Snapshot) IsUsable() bool {
	if s == nil {
		return false
	}
	return len(s.data.Commodities) > 0 ||
		len(s.data.Quotes) > 0 ||
		len(s.data.Terminals) > 0 ||
		len(s.data.Stations) > 0 ||
		len(s.data.Systems) > 0
}

// Age returns how long ago the snapshot was fetched relative to now
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.fetchedAt)
}
