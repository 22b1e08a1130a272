// Package merger implements the symbol merge engine.
package merger

import (
	"bytes"
	"context"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"go.trai.ch/zerr"
)

// SkippedPackage is a package whose symbols could not be read.
type SkippedPackage struct {
	Dist    string
	Package string
	Arch    string
	Err     error
}

// RunSummary describes one processed distribution.
type RunSummary struct {
	Dist     string
	Universe domain.ArchSet
	Packages int
	Symbols  int
}

// Result is the outcome of a merge.
type Result struct {
	// Catalog is the rendered symbols file.
	Catalog []byte

	// Universe is the architecture universe of the last distribution.
	Universe domain.ArchSet

	// Symbols is the number of symbols in the catalog.
	Symbols int

	Skipped []SkippedPackage
	Runs    []RunSummary
}

// Merger merges the symbols of the library packages of several distributions into a catalog.
type Merger struct {
	resolver  ports.ArchitectureResolver
	fetcher   ports.PackageFetcher
	demangler ports.Demangler
	logger    ports.Logger
}

// New creates a new Merger.
func New(
	resolver ports.ArchitectureResolver,
	fetcher ports.PackageFetcher,
	demangler ports.Demangler,
	logger ports.Logger,
) *Merger {
	return &Merger{
		resolver:  resolver,
		fetcher:   fetcher,
		demangler: demangler,
		logger:    logger,
	}
}

// Merge folds the packages of every distribution, in order, into the seed catalog.
//
// Failing to resolve or fetch a distribution aborts the merge. Packages whose
// symbols cannot be read are skipped and reported in the result.
func (m *Merger) Merge(ctx context.Context, seed *domain.SeedCatalog, dists []string) (*Result, error) {
	if len(dists) == 0 {
		return nil, domain.ErrNoDistributions
	}
	if seed == nil {
		seed = &domain.SeedCatalog{}
	}

	acc := NewAccumulator()
	for _, e := range seed.Entries {
		acc.Seed(e.Key, e.Version)
	}

	res := &Result{}
	for _, dist := range dists {
		summary, skipped, err := m.run(ctx, acc, dist)
		if err != nil {
			return nil, err
		}
		res.Runs = append(res.Runs, summary)
		res.Skipped = append(res.Skipped, skipped...)
		res.Universe = summary.Universe
	}

	acc.Finalize()

	var buf bytes.Buffer
	if err := Serialize(&buf, seed.Prelude, acc, res.Universe); err != nil {
		return nil, err
	}
	res.Catalog = buf.Bytes()
	res.Symbols = acc.Len()

	return res, nil
}

// run processes the packages of one distribution and commits their presence.
func (m *Merger) run(ctx context.Context, acc *Accumulator, dist string) (RunSummary, []SkippedPackage, error) {
	summary := RunSummary{Dist: dist}

	universe, err := m.resolver.ResolveArchitectures(ctx, dist)
	if err != nil {
		return summary, nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataUnavailable.Error()), "dist", dist)
	}
	summary.Universe = universe
	m.logger.Info("resolved architectures", domain.LogKeyDist, dist, "archs", universe.String())

	handles, err := m.fetcher.FetchPackages(ctx, dist, universe)
	if err != nil {
		return summary, nil, zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "dist", dist)
	}

	var skipped []SkippedPackage
	for _, h := range handles {
		if err := ctx.Err(); err != nil {
			return summary, nil, err
		}

		observations, err := m.read(ctx, h)
		if err != nil {
			err = zerr.With(zerr.With(err, "package", h.Name()), "arch", h.Architecture())
			m.logger.Warn("skipping package",
				domain.LogKeyDist, dist,
				domain.LogKeyArch, h.Architecture(),
				domain.LogKeyPackage, h.Name(),
				"error", err,
			)
			skipped = append(skipped, SkippedPackage{
				Dist:    dist,
				Package: h.Name(),
				Arch:    h.Architecture(),
				Err:     err,
			})
			continue
		}

		acc.FoldAll(observations)
		summary.Packages++
		summary.Symbols += len(observations)
	}

	acc.EndRun()
	return summary, skipped, nil
}

// read extracts and demangles the symbols of one package.
func (m *Merger) read(ctx context.Context, h ports.PackageHandle) ([]Observation, error) {
	table, err := h.SymbolsTable()
	if err != nil {
		return nil, err
	}

	raw := string(table)
	demangled, err := m.demangler.Demangle(ctx, raw)
	if err != nil {
		return nil, err
	}

	return ReadSymbols(raw, demangled, h.Architecture())
}
