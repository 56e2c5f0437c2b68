package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// FindRouteQuery extracts offers for a commodity and computes its route in one call
type FindRouteQuery struct {
	Commodity string
	Units     int // profit projection quantity, 0 skips the projection
}

// FindRouteResponse combines offers and route for one commodity
type FindRouteResponse struct {
	Commodity      string
	BuyOffers      []types.BuyOfferDTO
	SellOffers     []types.SellOfferDTO
	Route          *types.RouteDTO
	Reason         types.NoRouteReason
	Units          int
	ProjectedTotal float64
}

// FindRouteHandler handles the combined offers + route query
type FindRouteHandler struct {
	snapshots SnapshotProvider
	extractor *trading.OfferExtractor
	optimizer *trading.RouteOptimizer
}

// NewFindRouteHandler creates a new handler
func NewFindRouteHandler(
	snapshots SnapshotProvider,
	extractor *trading.OfferExtractor,
	optimizer *trading.RouteOptimizer,
) *FindRouteHandler {
	if extractor == nil {
		extractor = trading.NewOfferExtractor(nil)
	}
	if optimizer == nil {
		optimizer = trading.NewRouteOptimizer()
	}
	return &FindRouteHandler{
		snapshots: snapshots,
		extractor: extractor,
		optimizer: optimizer,
	}
}

// Handle executes the query
func (h *FindRouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FindRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snap, err := currentSnapshot(ctx, h.snapshots)
	if err != nil {
		return nil, err
	}

	buys, sells := h.extractor.Extract(query.Commodity, snap.Quotes())

	result, err := optimalRoute(h.optimizer, buys, sells)
	if err != nil {
		return nil, err
	}

	response := &FindRouteResponse{
		Commodity:  query.Commodity,
		BuyOffers:  types.BuyOffersToDTO(buys),
		SellOffers: types.SellOffersToDTO(sells),
		Route:      result.Route,
		Reason:     result.Reason,
		Units:      query.Units,
	}
	if result.Route != nil && query.Units > 0 {
		response.ProjectedTotal = result.Route.ProfitPerUnit * float64(query.Units)
	}

	return response, nil
}
