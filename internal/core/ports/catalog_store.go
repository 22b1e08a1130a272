package ports

import "github.com/Debian/apt/internal/core/domain"

// CatalogStore defines the interface for reading and writing symbols files.
//
//go:generate mockgen -source=catalog_store.go -destination=mocks/mock_catalog_store.go -package=mocks
type CatalogStore interface {
	// Locate returns the first symbols file matching the glob pattern.
	Locate(pattern string) (string, error)

	// Read parses the symbols file at path.
	Read(path string) (*domain.SeedCatalog, error)

	// Write replaces the symbols file at path atomically.
	// It reports false without touching the file when the content is unchanged.
	Write(path string, data []byte) (bool, error)
}
