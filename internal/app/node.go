package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crit/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/crit/internal/engine/cpm"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cpm.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			report.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.BridgeNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	analyzer, err := graft.Dep[*cpm.Analyzer](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	renderers, err := graft.Dep[ports.RendererRegistry](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	bridge, err := graft.Dep[*telemetry.LogBridge](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, analyzer, fingerprinter, store, renderers, w, log, bridge), nil
}
