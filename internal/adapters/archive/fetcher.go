package archive

import (
	"context"
	"slices"
	"strconv"

	"github.com/Debian/apt/internal/adapters/debfile"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"github.com/dustin/go-humanize"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// indexNames are the package index variants tried, in order.
var indexNames = []string{"Packages.xz", "Packages.gz"}

// candidate is the best version of a binary package found so far.
type candidate struct {
	name     string
	version  string
	filename string
	sha256   string
	size     uint64
}

// FetchPackages downloads, for every architecture, the highest version of each
// package providing the configured virtual package.
func (c *Client) FetchPackages(ctx context.Context, dist string, archs domain.ArchSet) ([]ports.PackageHandle, error) {
	archive, err := c.archiveFor(dist)
	if err != nil {
		return nil, err
	}

	sorted := archs.Sorted()
	results := make([][]ports.PackageHandle, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, arch := range sorted {
		g.Go(func() error {
			handles, err := c.fetchArch(gctx, archive, dist, arch)
			if err != nil {
				return zerr.With(zerr.With(err, "dist", dist), "arch", arch)
			}
			results[i] = handles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var handles []ports.PackageHandle
	for _, hs := range results {
		handles = append(handles, hs...)
	}
	return handles, nil
}

// fetchArch selects and downloads the library packages of one architecture.
func (c *Client) fetchArch(ctx context.Context, archive domain.Archive, dist, arch string) ([]ports.PackageHandle, error) {
	candidates := make(map[string]candidate)
	for _, suite := range archive.SuitesFor(dist) {
		if err := c.scanIndex(ctx, archive, suite, arch, candidates); err != nil {
			return nil, err
		}
	}

	if len(candidates) == 0 {
		return nil, zerr.With(domain.ErrNoProviders, "provides", c.cfg.Provides)
	}

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	slices.Sort(names)

	handles := make([]ports.PackageHandle, 0, len(names))
	for _, name := range names {
		cand := candidates[name]
		path, err := c.download(ctx, archive, cand)
		if err != nil {
			return nil, zerr.With(err, "package", name)
		}
		c.logger.Info("fetched",
			domain.LogKeyDist, dist,
			domain.LogKeyArch, arch,
			domain.LogKeyPackage, name,
			"version", cand.version,
			"size", humanize.Bytes(cand.size),
		)
		handles = append(handles, debfile.Open(path, name, arch, cand.version))
	}
	return handles, nil
}

// scanIndex reads the package index of a suite and records providers of the library.
func (c *Client) scanIndex(
	ctx context.Context,
	archive domain.Archive,
	suite, arch string,
	candidates map[string]candidate,
) error {
	base := archive.URL + "dists/" + suite + "/" + c.cfg.Component + "/binary-" + arch + "/"

	var lastErr error
	for _, name := range indexNames {
		resp, err := c.get(ctx, base+name)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := debfile.Decompress(name, resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return zerr.Wrap(err, domain.ErrPackageFetchFailed.Error())
		}

		err = ReadStanzas(body, func(s Stanza) error {
			c.consider(s, arch, candidates)
			return nil
		})
		_ = body.Close()
		_ = resp.Body.Close()
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "url", base+name)
		}
		return nil
	}

	return zerr.With(zerr.Wrap(lastErr, domain.ErrPackageFetchFailed.Error()), "suite", suite)
}

// consider keeps the stanza if it provides the library and beats the current candidate.
func (c *Client) consider(s Stanza, arch string, candidates map[string]candidate) {
	if s.Field("Architecture") != arch || !provides(s.Field("Provides"), c.cfg.Provides) {
		return
	}

	cand := candidate{
		name:     s.Field("Package"),
		version:  s.Field("Version"),
		filename: s.Field("Filename"),
		sha256:   s.Field("SHA256"),
	}
	if size, err := strconv.ParseUint(s.Field("Size"), 10, 64); err == nil {
		cand.size = size
	}
	if cand.name == "" || cand.filename == "" {
		return
	}

	if current, ok := candidates[cand.name]; ok && domain.CompareVersions(cand.version, current.version) <= 0 {
		return
	}
	candidates[cand.name] = cand
}

// download stores the package in the cache unless it is already there.
func (c *Client) download(ctx context.Context, archive domain.Archive, cand candidate) (string, error) {
	d := digest.NewDigestFromEncoded(digest.SHA256, cand.sha256)
	if err := d.Validate(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "sha256", cand.sha256)
	}

	if path, ok := c.cache.Path(d); ok {
		return path, nil
	}

	resp, err := c.get(ctx, archive.URL+cand.filename)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPackageFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return c.cache.Put(d, resp.Body)
}
