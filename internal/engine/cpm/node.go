package cpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crit/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crit/internal/core/ports"
)

// NodeID is the unique identifier for the analyzer Graft node.
const NodeID graft.ID = "engine.cpm"

func init() {
	graft.Register(graft.Node[*Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Analyzer, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(tracer), nil
		},
	})
}
