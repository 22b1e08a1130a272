// Package catalog implements the CatalogStore port for dpkg symbols files.
package catalog

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Store implements ports.CatalogStore on top of an afero filesystem.
//
// It remembers the digest of every catalog it read or wrote, so a later Write
// of the same path compares digests instead of reading the file back, as long
// as the file's size and modification time are unchanged.
type Store struct {
	fs afero.Fs

	mu   sync.Mutex
	seen map[string]fileState
}

// fileState identifies the content of a catalog file as last seen by the Store.
type fileState struct {
	size    int64
	modTime time.Time
	sum     uint64
}

// NewStore creates a new Store reading and writing through fsys.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fs: fsys, seen: make(map[string]fileState)}
}

// Locate returns the first file matching the glob pattern.
func (s *Store) Locate(pattern string) (string, error) {
	matches, err := afero.Glob(s.fs, pattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCatalogNotFound.Error()), "pattern", pattern)
	}
	if len(matches) == 0 {
		return "", zerr.With(domain.ErrCatalogNotFound, "pattern", pattern)
	}
	return matches[0], nil
}

// Read parses the symbols file at path.
func (s *Store) Read(path string) (*domain.SeedCatalog, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrCatalogNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSeedCatalogCorrupt.Error()), "path", path)
	}

	s.remember(path, data)

	seed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return seed, nil
}

// Write replaces the file at path with data unless it already holds exactly that content.
func (s *Store) Write(path string, data []byte) (bool, error) {
	if s.holds(path, data) {
		return false, nil
	}

	if err := s.atomicWriteFile(path, data); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error()), "path", path)
	}
	s.remember(path, data)
	return true, nil
}

// holds reports whether the file at path already contains data.
func (s *Store) holds(path string, data []byte) bool {
	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}

	s.mu.Lock()
	known, ok := s.seen[path]
	s.mu.Unlock()

	if ok && known.size == info.Size() && known.modTime.Equal(info.ModTime()) {
		return known.sum == xxhash.Sum64(data)
	}

	current, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return false
	}
	s.remember(path, current)
	return bytes.Equal(current, data)
}

// remember records data as the current content of path.
func (s *Store) remember(path string, data []byte) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[path] = fileState{size: info.Size(), modTime: info.ModTime(), sum: xxhash.Sum64(data)}
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := afero.TempFile(s.fs, dir, ".symbols-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := s.fs.Stat(tmpName); statErr == nil {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := s.fs.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return s.fs.Rename(tmpName, path)
}
