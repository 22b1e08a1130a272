// Package sources builds the configuration dependent collaborators of a merge.
package sources

import (
	"path/filepath"

	"github.com/Debian/apt/internal/adapters/archive"
	"github.com/Debian/apt/internal/adapters/cas"
	"github.com/Debian/apt/internal/adapters/demangle"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
)

// Factory implements ports.SourceFactory.
type Factory struct {
	logger  ports.Logger
	options []archive.Option
}

// NewFactory creates a new Factory. The options are passed to every archive client.
func NewFactory(logger ports.Logger, options ...archive.Option) *Factory {
	return &Factory{logger: logger, options: options}
}

// NewSources opens the download cache and creates the archive client and demangler for cfg.
func (f *Factory) NewSources(cfg *domain.Config) (*ports.Sources, error) {
	cache, err := cas.NewStore(filepath.Join(cfg.CacheDir, domain.StoreDirName))
	if err != nil {
		return nil, err
	}

	client := archive.NewClient(cfg, cache, f.logger, f.options...)

	return &ports.Sources{
		Resolver:  client,
		Fetcher:   client,
		Demangler: demangle.New(cfg.Demangler),
	}, nil
}
