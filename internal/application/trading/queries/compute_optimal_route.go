package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// ComputeOptimalRouteQuery picks the best buy/sell pair from already extracted offers
type ComputeOptimalRouteQuery struct {
	BuyOffers  []types.BuyOfferDTO
	SellOffers []types.SellOfferDTO
}

// ComputeOptimalRouteResponse holds the route, or nil with a reason
type ComputeOptimalRouteResponse struct {
	Route  *types.RouteDTO
	Reason types.NoRouteReason
}

// ComputeOptimalRouteHandler runs the route optimizer.
// It needs no snapshot and is a pure function of its input.
type ComputeOptimalRouteHandler struct {
	optimizer *trading.RouteOptimizer
}

// NewComputeOptimalRouteHandler creates a new handler
func NewComputeOptimalRouteHandler(optimizer *trading.RouteOptimizer) *ComputeOptimalRouteHandler {
	if optimizer == nil {
		optimizer = trading.NewRouteOptimizer()
	}
	return &ComputeOptimalRouteHandler{optimizer: optimizer}
}

// Handle executes the query
func (h *ComputeOptimalRouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ComputeOptimalRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	return optimalRoute(h.optimizer, types.BuyOffersFromDTO(query.BuyOffers), types.SellOffersFromDTO(query.SellOffers))
}

// optimalRoute checks the optimizer's precondition before calling it, so an empty
// side is reported as a reason rather than an error
func optimalRoute(optimizer *trading.RouteOptimizer, buys []trading.BuyOffer, sells []trading.SellOffer) (*ComputeOptimalRouteResponse, error) {
	if len(buys) == 0 {
		return &ComputeOptimalRouteResponse{Reason: types.NoRouteNoBuyOffers}, nil
	}
	if len(sells) == 0 {
		return &ComputeOptimalRouteResponse{Reason: types.NoRouteNoSellOffers}, nil
	}

	route, err := optimizer.Optimize(buys, sells)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize route: %w", err)
	}

	return &ComputeOptimalRouteResponse{Route: types.RouteToDTO(route)}, nil
}
