package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crit/internal/core/ports"
)

// NodeID is the unique identifier for the renderer registry Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.RendererRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RendererRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
