package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// ListEligibleGoodsQuery lists the restricted commodities that can be bought somewhere
type ListEligibleGoodsQuery struct{}

// ListEligibleGoodsResponse carries the eligible goods in source order
type ListEligibleGoodsResponse struct {
	Goods []types.EligibleGoodDTO
}

// Names returns the good names, the operator's pick list
func (r *ListEligibleGoodsResponse) Names() []string {
	names := make([]string, len(r.Goods))
	for i, g := range r.Goods {
		names[i] = g.Name
	}
	return names
}

// ListEligibleGoodsHandler filters the snapshot's commodities through the eligibility rule
type ListEligibleGoodsHandler struct {
	snapshots SnapshotProvider
}

// NewListEligibleGoodsHandler creates a new handler
func NewListEligibleGoodsHandler(snapshots SnapshotProvider) *ListEligibleGoodsHandler {
	return &ListEligibleGoodsHandler{snapshots: snapshots}
}

// Handle executes the query
func (h *ListEligibleGoodsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListEligibleGoodsQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	snap, err := currentSnapshot(ctx, h.snapshots)
	if err != nil {
		return nil, err
	}

	eligible := trading.EligibleGoods(snap.Commodities())
	goods := make([]types.EligibleGoodDTO, len(eligible))
	for i, c := range eligible {
		goods[i] = types.EligibleGoodToDTO(c)
	}

	return &ListEligibleGoodsResponse{Goods: goods}, nil
}
