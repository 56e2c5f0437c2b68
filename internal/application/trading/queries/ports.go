package queries

import (
	"context"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// SnapshotProvider hands out the current market snapshot.
// Implemented by snapshot.Holder.
type SnapshotProvider interface {
	Current(ctx context.Context) (*market.Snapshot, error)
}

func currentSnapshot(ctx context.Context, provider SnapshotProvider) (*market.Snapshot, error) {
	snap, err := provider.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.IsUsable() {
		return nil, market.ErrSnapshotUnusable
	}
	return snap, nil
}
