package market

import (
	"context"
	"encoding/json"
)

// CollectionFetcher retrieves the raw records of one collection from the trading-data API
type CollectionFetcher interface {
	FetchCollection(ctx context.Context, collection Collection) ([]json.RawMessage, error)
}

// SnapshotFetcher assembles a full snapshot. It never fails: a collection that cannot be
// fetched degrades to empty and the failure is recorded in the snapshot's outcomes.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context) *Snapshot
}
