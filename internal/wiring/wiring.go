// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cargokit/internal/adapters/config"
	_ "go.trai.ch/cargokit/internal/adapters/logger"
	_ "go.trai.ch/cargokit/internal/adapters/metrics"
	_ "go.trai.ch/cargokit/internal/adapters/refresh"
	_ "go.trai.ch/cargokit/internal/adapters/shell"
	_ "go.trai.ch/cargokit/internal/adapters/store"
	_ "go.trai.ch/cargokit/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cargokit/internal/app"
	_ "go.trai.ch/cargokit/internal/engine/helpopts"
)
