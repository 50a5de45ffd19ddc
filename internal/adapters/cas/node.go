package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
)

// NodeID is the unique identifier for the report store Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStore, error) {
			return NewStore(domain.DefaultReportsPath()), nil
		},
	})
}
