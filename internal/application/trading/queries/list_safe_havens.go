package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// ListSafeHavensQuery lists low-risk terminals.
// Limit 0 uses the classifier's configured cap.
type ListSafeHavensQuery struct {
	Limit int
}

// ListSafeHavensResponse holds havens in first-seen order
type ListSafeHavensResponse struct {
	Havens []types.SafeHavenDTO
}

// Terminals returns just the terminal names
func (r *ListSafeHavensResponse) Terminals() []string {
	names := make([]string, len(r.Havens))
	for i, h := range r.Havens {
		names[i] = h.Terminal
	}
	return names
}

// ListSafeHavensHandler classifies terminals found in the snapshot's price quotes
type ListSafeHavensHandler struct {
	snapshots  SnapshotProvider
	classifier *trading.SafeHavenClassifier
}

// NewListSafeHavensHandler creates a new handler
func NewListSafeHavensHandler(snapshots SnapshotProvider, classifier *trading.SafeHavenClassifier) *ListSafeHavensHandler {
	if classifier == nil {
		classifier = trading.NewSafeHavenClassifier(trading.DefaultSafeHavenFragments, trading.DefaultSafeHavenLimit)
	}
	return &ListSafeHavensHandler{snapshots: snapshots, classifier: classifier}
}

// Handle executes the query
func (h *ListSafeHavensHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListSafeHavensQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if query.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", query.Limit)
	}

	snap, err := currentSnapshot(ctx, h.snapshots)
	if err != nil {
		return nil, err
	}

	havens := h.classifier.Classify(snap.Quotes())
	if query.Limit > 0 && len(havens) > query.Limit {
		havens = havens[:query.Limit]
	}

	dtos := make([]types.SafeHavenDTO, len(havens))
	for i, haven := range havens {
		dtos[i] = types.SafeHavenDTO{Terminal: haven.Terminal, System: haven.System}
	}

	return &ListSafeHavensResponse{Havens: dtos}, nil
}
