// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/Debian/apt/internal/core/domain"
)

// ArchitectureResolver defines the interface for reading the architecture universe of a distribution.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchitectureResolver interface {
	// ResolveArchitectures returns the architectures a distribution is built for.
	// The pseudo-architecture "all" is never part of the result.
	ResolveArchitectures(ctx context.Context, dist string) (domain.ArchSet, error)
}

// PackageFetcher defines the interface for obtaining the built library packages of a distribution.
type PackageFetcher interface {
	// FetchPackages returns one handle per library package and architecture.
	// Handles are ordered by architecture, then by package name.
	FetchPackages(ctx context.Context, dist string, archs domain.ArchSet) ([]PackageHandle, error)
}

// PackageHandle is a downloaded binary package.
type PackageHandle interface {
	// Name returns the binary package name.
	Name() string

	// Architecture returns the architecture the package was built for.
	Architecture() string

	// Version returns the package version.
	Version() string

	// SymbolsTable returns the raw content of the package's symbols control member.
	SymbolsTable() ([]byte, error)
}
