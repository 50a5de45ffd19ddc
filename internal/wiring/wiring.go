// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crit/internal/adapters/cas"
	_ "go.trai.ch/crit/internal/adapters/config"
	_ "go.trai.ch/crit/internal/adapters/fs"
	_ "go.trai.ch/crit/internal/adapters/logger"
	_ "go.trai.ch/crit/internal/adapters/report"
	_ "go.trai.ch/crit/internal/adapters/telemetry"
	_ "go.trai.ch/crit/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/crit/internal/app"
	_ "go.trai.ch/crit/internal/engine/cpm"
)
