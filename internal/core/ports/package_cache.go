package ports

import (
	"io"

	"github.com/opencontainers/go-digest"
)

// PackageCache defines the interface for the content addressed download cache.
//
//go:generate mockgen -source=package_cache.go -destination=mocks/mock_package_cache.go -package=mocks
type PackageCache interface {
	// Path returns the location of a cached blob and whether it exists.
	Path(d digest.Digest) (string, bool)

	// Put stores the content of r under d, verifying the digest first.
	// It returns the location of the stored blob.
	Put(d digest.Digest, r io.Reader) (string, error)
}
