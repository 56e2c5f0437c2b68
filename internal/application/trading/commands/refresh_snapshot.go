package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// SnapshotRefresher is the part of the snapshot holder the command drives
type SnapshotRefresher interface {
	Invalidate()
	Refresh(ctx context.Context) (*market.Snapshot, error)
	Peek() *market.Snapshot
}

// RefreshSnapshotCommand discards the cached snapshot and fetches a new one
type RefreshSnapshotCommand struct{}

// RefreshSnapshotResponse describes the snapshot now being served
type RefreshSnapshotResponse struct {
	SnapshotID  string
	PreviousID  string
	FetchedAt   time.Time
	Collections []types.CollectionStatusDTO
}

// Replaced reports whether the refresh swapped in a new snapshot
func (r *RefreshSnapshotResponse) Replaced() bool {
	return r.SnapshotID != r.PreviousID
}

// RefreshSnapshotHandler handles the refresh command
type RefreshSnapshotHandler struct {
	holder SnapshotRefresher
}

// NewRefreshSnapshotHandler creates a new handler
func NewRefreshSnapshotHandler(holder SnapshotRefresher) *RefreshSnapshotHandler {
	return &RefreshSnapshotHandler{holder: holder}
}

// Handle executes the command. When the new fetch yields no data the previous
// snapshot keeps being served and market.ErrSnapshotUnusable is returned.
func (h *RefreshSnapshotHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*RefreshSnapshotCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	var previousID string
	if prev := h.holder.Peek(); prev != nil {
		previousID = prev.ID().String()
	}

	h.holder.Invalidate()
	snap, err := h.holder.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh market data: %w", err)
	}

	return &RefreshSnapshotResponse{
		SnapshotID:  snap.ID().String(),
		PreviousID:  previousID,
		FetchedAt:   snap.FetchedAt(),
		Collections: types.OutcomesToDTO(snap.Outcomes()),
	}, nil
}
