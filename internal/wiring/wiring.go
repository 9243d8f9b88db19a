// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/camplan/internal/adapters/config"
	_ "go.trai.ch/camplan/internal/adapters/fingerprint"
	_ "go.trai.ch/camplan/internal/adapters/geom"
	_ "go.trai.ch/camplan/internal/adapters/logger"
	_ "go.trai.ch/camplan/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/camplan/internal/app"
	_ "go.trai.ch/camplan/internal/engine/scheduler"
)
