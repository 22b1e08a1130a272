// Package app implements the application layer for symbol-merge.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"github.com/Debian/apt/internal/engine/merger"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.CatalogStore
	sources      ports.SourceFactory
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.CatalogStore,
	sources ports.SourceFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		sources:      sources,
		logger:       log,
	}
}

// Options are shared by all commands.
type Options struct {
	// WorkDir is where configuration discovery starts. It defaults to the process working directory.
	WorkDir string

	// ConfigPath selects a configuration file instead of discovering one.
	ConfigPath string
}

// MergeOptions configuration for the Merge method.
type MergeOptions struct {
	Options

	// CatalogPath selects the symbols file instead of locating it with the configured pattern.
	CatalogPath string

	// DryRun writes the merged catalog to Output instead of the symbols file.
	DryRun bool
	Output io.Writer
}

// Merge merges the symbols of the given distributions into the symbols file.
func (a *App) Merge(ctx context.Context, dists []string, opts MergeOptions) (*merger.Result, error) {
	if len(dists) == 0 {
		return nil, domain.ErrNoDistributions
	}

	workDir, cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	catalogPath := opts.CatalogPath
	if catalogPath == "" {
		pattern := cfg.CatalogPattern
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(workDir, pattern)
		}
		catalogPath, err = a.store.Locate(pattern)
		if err != nil {
			return nil, err
		}
	}

	seed, err := a.store.Read(catalogPath)
	if err != nil {
		return nil, err
	}

	src, err := a.sources.NewSources(cfg)
	if err != nil {
		return nil, err
	}

	res, err := merger.New(src.Resolver, src.Fetcher, src.Demangler, a.logger).Merge(ctx, seed, dists)
	if err != nil {
		return nil, err
	}

	for _, run := range res.Runs {
		a.logger.Info("merged", domain.LogKeyDist, run.Dist, "packages", run.Packages, "symbols", run.Symbols)
	}
	if len(res.Skipped) > 0 {
		a.logger.Warn("packages skipped", "count", len(res.Skipped))
	}

	if opts.DryRun {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(res.Catalog); err != nil {
			return nil, zerr.Wrap(err, "failed to write catalog to output")
		}
		return res, nil
	}

	changed, err := a.store.Write(catalogPath, res.Catalog)
	if err != nil {
		return nil, err
	}
	if changed {
		a.logger.Info("wrote catalog", "path", catalogPath, "symbols", res.Symbols)
	} else {
		a.logger.Info("catalog is up to date", "path", catalogPath)
	}

	return res, nil
}

// Archs resolves the architecture universe of a distribution.
func (a *App) Archs(ctx context.Context, dist string, opts Options) (domain.ArchSet, error) {
	_, cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	src, err := a.sources.NewSources(cfg)
	if err != nil {
		return nil, err
	}

	archs, err := src.Resolver.ResolveArchitectures(ctx, dist)
	if err != nil {
		return nil, zerr.With(err, "dist", dist)
	}
	return archs, nil
}

func (a *App) loadConfig(opts Options) (string, *domain.Config, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil, zerr.Wrap(err, "failed to get working directory")
		}
		workDir = wd
	}

	cfg, err := a.configLoader.Load(workDir, opts.ConfigPath)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load configuration")
	}
	return workDir, cfg, nil
}
