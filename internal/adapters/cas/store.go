// Package cas implements the content addressable download cache.
package cas

import (
	// Register SHA-256 and SHA-512 for go-digest.
	_ "crypto/sha256"
	_ "crypto/sha512"
	"io"
	"os"
	"path/filepath"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/zerr"
)

const blobSuffix = ".deb"

// Store implements ports.PackageCache with one file per digest.
type Store struct {
	root string
}

// NewStore creates a new Store rooted at the given directory.
func NewStore(root string) (*Store, error) {
	cleanPath := filepath.Clean(root)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", cleanPath)
	}
	return &Store{root: cleanPath}, nil
}

// Path returns the location of the blob for d and whether it is present.
func (s *Store) Path(d digest.Digest) (string, bool) {
	if d.Validate() != nil {
		return "", false
	}
	path := s.blobPath(d)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// Put stores the content of r under d. The content must hash to d.
func (s *Store) Put(d digest.Digest, r io.Reader) (string, error) {
	if err := d.Validate(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "digest", d.String())
	}

	path := s.blobPath(d)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "blob-*.partial")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	verifier := d.Verifier()
	if _, err := io.Copy(io.MultiWriter(tmpFile, verifier), r); err != nil {
		_ = tmpFile.Close()
		return "", zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := tmpFile.Close(); err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if !verifier.Verified() {
		return "", zerr.With(domain.ErrChecksumMismatch, "digest", d.String())
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmpName, path); err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return path, nil
}

func (s *Store) blobPath(d digest.Digest) string {
	return filepath.Join(s.root, d.Algorithm().String(), d.Encoded()+blobSuffix)
}
