// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/syster/internal/adapters/config"
	_ "go.trai.ch/syster/internal/adapters/fs"
	_ "go.trai.ch/syster/internal/adapters/logger"
	_ "go.trai.ch/syster/internal/adapters/parser"
	// Register app and engine nodes.
	_ "go.trai.ch/syster/internal/app"
	_ "go.trai.ch/syster/internal/engine/stdlib"
)
