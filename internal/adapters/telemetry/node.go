package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crit/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/crit/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
	// BridgeNodeID is the unique identifier for the stage timing bridge Graft node.
	BridgeNodeID graft.ID = "adapter.telemetry.bridge"
)

func init() {
	graft.Register(graft.Node[*LogBridge]{
		ID:        BridgeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LogBridge, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogBridge(log), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BridgeNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			bridge, err := graft.Dep[*LogBridge](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(NewProvider(bridge), "crit"), nil
		},
	})
}
