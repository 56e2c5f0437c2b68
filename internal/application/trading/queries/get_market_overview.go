package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// GetMarketOverviewQuery summarizes the current snapshot
type GetMarketOverviewQuery struct{}

// GetMarketOverviewResponse is the dashboard header: counts plus per-collection status
type GetMarketOverviewResponse struct {
	SnapshotID    string
	FetchedAt     time.Time
	EligibleGoods int
	Commodities   int
	Quotes        int
	Terminals     int
	Stations      int
	Systems       int
	Collections   []types.CollectionStatusDTO
}

// Degraded reports whether any collection failed in the last fetch
func (r *GetMarketOverviewResponse) Degraded() bool {
	for _, c := range r.Collections {
		if c.Error != "" {
			return true
		}
	}
	return false
}

// GetMarketOverviewHandler handles the overview query
type GetMarketOverviewHandler struct {
	snapshots SnapshotProvider
}

// NewGetMarketOverviewHandler creates a new handler
func NewGetMarketOverviewHandler(snapshots SnapshotProvider) *GetMarketOverviewHandler {
	return &GetMarketOverviewHandler{snapshots: snapshots}
}

// Handle executes the query
func (h *GetMarketOverviewHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetMarketOverviewQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snap, err := currentSnapshot(ctx, h.snapshots)
	if err != nil {
		return nil, err
	}

	commodities := snap.Commodities()

	return &GetMarketOverviewResponse{
		SnapshotID:    snap.ID().String(),
		FetchedAt:     snap.FetchedAt(),
		EligibleGoods: len(trading.EligibleGoods(commodities)),
		Commodities:   len(commodities),
		Quotes:        len(snap.Quotes()),
		Terminals:     len(snap.Terminals()),
		Stations:      len(snap.Stations()),
		Systems:       len(snap.Systems()),
		Collections:   types.OutcomesToDTO(snap.Outcomes()),
	}, nil
}
