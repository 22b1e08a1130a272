// Package debfile reads control members of Debian binary packages.
package debfile

import (
	"archive/tar"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/blakesmith/ar"
	"go.trai.ch/zerr"
)

const (
	controlPrefix = "control.tar"
	symbolsMember = "symbols"
)

// Package implements ports.PackageHandle for a .deb file on disk.
type Package struct {
	path    string
	name    string
	arch    string
	version string
}

// Open creates a handle for the .deb at path. The file is read lazily.
func Open(path, name, arch, version string) *Package {
	return &Package{path: path, name: name, arch: arch, version: version}
}

// Name returns the binary package name.
func (p *Package) Name() string { return p.name }

// Architecture returns the architecture the package was built for.
func (p *Package) Architecture() string { return p.arch }

// Version returns the package version.
func (p *Package) Version() string { return p.version }

// Path returns the location of the .deb file.
func (p *Package) Path() string { return p.path }

// SymbolsTable returns the content of the symbols control member.
func (p *Package) SymbolsTable() ([]byte, error) {
	//nolint:gosec // Path comes from the download cache
	f, err := os.Open(p.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailure.Error()), "path", p.path)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := ReadControlMember(f, symbolsMember)
	if err != nil {
		return nil, zerr.With(err, "path", p.path)
	}
	return data, nil
}

// ReadControlMember extracts a file from the control archive of a .deb stream.
func ReadControlMember(r io.Reader, member string) ([]byte, error) {
	reader := ar.NewReader(r)
	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil, zerr.With(domain.ErrPackageReadFailure, "reason", "no control archive")
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageReadFailure.Error())
		}

		name := strings.TrimRight(strings.TrimSpace(hdr.Name), "/")
		if !strings.HasPrefix(name, controlPrefix) {
			continue
		}

		control, err := Decompress(name, reader)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = control.Close()
		}()

		return readTarMember(control, member)
	}
}

// readTarMember returns the content of the named regular file of a tar stream.
func readTarMember(r io.Reader, member string) ([]byte, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, zerr.With(domain.ErrPackageReadFailure, "member", member)
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageReadFailure.Error())
		}

		if hdr.Typeflag != tar.TypeReg || path.Clean(strings.TrimPrefix(hdr.Name, "./")) != member {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageReadFailure.Error())
		}
		return data, nil
	}
}
