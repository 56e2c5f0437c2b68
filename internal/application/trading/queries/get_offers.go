package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// GetOffersQuery requests the buy and sell offers for one commodity
type GetOffersQuery struct {
	Commodity string
}

// GetOffersResponse holds offers in source order
type GetOffersResponse struct {
	Commodity  string
	BuyOffers  []types.BuyOfferDTO
	SellOffers []types.SellOfferDTO
}

// GetOffersHandler extracts offers from the snapshot's price quotes
type GetOffersHandler struct {
	snapshots SnapshotProvider
	extractor *trading.OfferExtractor
}

// NewGetOffersHandler creates a new handler
func NewGetOffersHandler(snapshots SnapshotProvider, extractor *trading.OfferExtractor) *GetOffersHandler {
	if extractor == nil {
		extractor = trading.NewOfferExtractor(nil)
	}
	return &GetOffersHandler{snapshots: snapshots, extractor: extractor}
}

// Handle executes the query
func (h *GetOffersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetOffersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snap, err := currentSnapshot(ctx, h.snapshots)
	if err != nil {
		return nil, err
	}

	buys, sells := h.extractor.Extract(query.Commodity, snap.Quotes())

	return &GetOffersResponse{
		Commodity:  query.Commodity,
		BuyOffers:  types.BuyOffersToDTO(buys),
		SellOffers: types.SellOffersToDTO(sells),
	}, nil
}
