// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fresh/internal/adapters/config"
	_ "go.trai.ch/fresh/internal/adapters/fs"
	_ "go.trai.ch/fresh/internal/adapters/logger"
	_ "go.trai.ch/fresh/internal/adapters/shell"
	_ "go.trai.ch/fresh/internal/adapters/telemetry"
	_ "go.trai.ch/fresh/internal/adapters/watcher"
	// Register app, engine and settings nodes.
	_ "go.trai.ch/fresh/internal/app"
	_ "go.trai.ch/fresh/internal/engine/scheduler"
	_ "go.trai.ch/fresh/internal/settings"
)
