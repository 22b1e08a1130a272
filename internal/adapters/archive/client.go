// Package archive implements architecture resolution and package download against Debian style archives.
package archive

import (
	"bufio"
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 60 * time.Second
	maxRetries        = 4
	allArch           = "all"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBackOff replaces the retry policy of HTTP requests.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

// WithWorkers limits the number of architectures fetched concurrently.
func WithWorkers(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Client implements ports.ArchitectureResolver and ports.PackageFetcher.
type Client struct {
	cfg        *domain.Config
	cache      ports.PackageCache
	logger     ports.Logger
	httpClient *http.Client
	newBackOff func() backoff.BackOff
	workers    int
}

// NewClient creates a new Client for the archives of cfg.
func NewClient(cfg *domain.Config, cache ports.PackageCache, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		cache:  cache,
		logger: logger,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		newBackOff: defaultBackOff,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultBackOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
}

// ResolveArchitectures reads the Architectures field of the distribution's InRelease file.
func (c *Client) ResolveArchitectures(ctx context.Context, dist string) (domain.ArchSet, error) {
	archive, err := c.archiveFor(dist)
	if err != nil {
		return nil, err
	}

	url := archive.URL + "dists/" + dist + "/InRelease"
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataUnavailable.Error()), "dist", dist)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		field, ok := strings.CutPrefix(scanner.Text(), "Architectures:")
		if !ok {
			continue
		}
		archs := domain.ParseArchSet(field)
		delete(archs, allArch)
		if archs.Len() == 0 {
			break
		}
		return archs, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataUnavailable.Error()), "url", url)
	}

	missingErr := zerr.With(domain.ErrMetadataUnavailable, "dist", dist)
	return nil, zerr.With(missingErr, "url", url)
}

func (c *Client) archiveFor(dist string) (domain.Archive, error) {
	archive, ok := c.cfg.ArchiveFor(dist)
	if !ok {
		return domain.Archive{}, zerr.With(domain.ErrUnknownArchive, "dist", dist)
	}
	return archive, nil
}

// get performs a GET request, retrying transport failures and server errors.
// The caller owns the body of the returned response.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return backoff.Permanent(err)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}

		if r.StatusCode == http.StatusOK {
			resp = r
			return nil
		}
		_ = r.Body.Close()

		statusErr := zerr.With(domain.ErrUnexpectedStatus, "status_code", r.StatusCode)
		statusErr = zerr.With(statusErr, "url", url)
		if r.StatusCode >= http.StatusInternalServerError || r.StatusCode == http.StatusTooManyRequests {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}
