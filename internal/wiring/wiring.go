// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shrink/internal/adapters/config"
	_ "go.trai.ch/shrink/internal/adapters/esbuild"
	_ "go.trai.ch/shrink/internal/adapters/fs"
	_ "go.trai.ch/shrink/internal/adapters/logger"
	_ "go.trai.ch/shrink/internal/adapters/workerpool"
	// Register app nodes.
	_ "go.trai.ch/shrink/internal/app"
)
