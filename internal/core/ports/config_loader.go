package ports

import "github.com/Debian/apt/internal/core/domain"

// ConfigLoader defines the interface for loading the merge configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An explicit path wins over discovery from cwd.
	// Built-in defaults are returned when no configuration file exists.
	Load(cwd, explicitPath string) (*domain.Config, error)
}
