// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Debian/apt/internal/adapters/catalog"
	_ "github.com/Debian/apt/internal/adapters/config"
	_ "github.com/Debian/apt/internal/adapters/logger"
	_ "github.com/Debian/apt/internal/adapters/sources"
	// Register app nodes.
	_ "github.com/Debian/apt/internal/app"
)
