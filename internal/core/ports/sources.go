package ports

import "github.com/Debian/apt/internal/core/domain"

// Sources bundles the collaborators of a merge that depend on the loaded configuration.
type Sources struct {
	Resolver  ArchitectureResolver
	Fetcher   PackageFetcher
	Demangler Demangler
}

// SourceFactory defines the interface for building merge collaborators.
//
//go:generate mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type SourceFactory interface {
	// NewSources creates the collaborators for the given configuration.
	NewSources(cfg *domain.Config) (*Sources, error)
}
