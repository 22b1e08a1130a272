package domain

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// DistPlaceholder is replaced by the distribution name in archive suite templates.
	DistPlaceholder = "{dist}"

	// DefaultCatalogPattern locates the symbols file relative to the source tree.
	DefaultCatalogPattern = "debian/libapt-pkg*.symbols"

	// DefaultProvides is the virtual package provided by every build of the library.
	DefaultProvides = "libapt-pkg"

	// DefaultComponent is the archive component holding the library.
	DefaultComponent = "main"
)

// Archive describes a package archive and the distributions it serves.
type Archive struct {
	// Name is a short label used in logs (e.g. "debian").
	Name string

	// URL is the archive root, ending in a slash.
	URL string

	// Suites are the suite templates to read for a distribution (e.g. "{dist}-updates").
	Suites []string

	// Codenames are the distributions served by this archive.
	// An archive without codenames serves every distribution not claimed by another one.
	Codenames []string

	// Keyring is the path of the archive keyring. It is informational only.
	Keyring string
}

// SuitesFor expands the suite templates for the given distribution.
func (a Archive) SuitesFor(dist string) []string {
	suites := make([]string, 0, len(a.Suites))
	for _, s := range a.Suites {
		suites = append(suites, strings.ReplaceAll(s, DistPlaceholder, dist))
	}
	return suites
}

// Serves reports whether the archive explicitly lists the distribution.
func (a Archive) Serves(dist string) bool {
	return slices.Contains(a.Codenames, dist)
}

// Config is the resolved configuration of a merge.
type Config struct {
	// CatalogPattern is the glob locating the symbols file.
	CatalogPattern string

	// Provides is the virtual package name used to find the library packages.
	Provides string

	// Component is the archive component to read indices from.
	Component string

	// Demangler is the argv of the demangling filter.
	Demangler []string

	// CacheDir holds downloaded packages.
	CacheDir string

	// Archives are tried in order when selecting the archive of a distribution.
	Archives []Archive
}

// ArchiveFor returns the archive serving the distribution.
// Archives naming the distribution win over the default (codename-less) archive.
func (c *Config) ArchiveFor(dist string) (Archive, bool) {
	for _, a := range c.Archives {
		if a.Serves(dist) {
			return a, true
		}
	}
	for _, a := range c.Archives {
		if len(a.Codenames) == 0 {
			return a, true
		}
	}
	return Archive{}, false
}

// UbuntuCodenames lists the Ubuntu releases served by the snapshot archive.
var UbuntuCodenames = []string{
	"trusty", "xenial", "bionic", "focal", "jammy", "kinetic", "lunar",
	"mantic", "noble", "oracular", "plucky", "questing", "resolute",
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		CatalogPattern: DefaultCatalogPattern,
		Provides:       DefaultProvides,
		Component:      DefaultComponent,
		Demangler:      []string{"c++filt"},
		CacheDir:       DefaultCachePath(),
		Archives: []Archive{
			{
				Name:      "ubuntu",
				URL:       "https://snapshot.ubuntu.com/ubuntu/",
				Suites:    []string{DistPlaceholder, DistPlaceholder + "-updates"},
				Codenames: slices.Clone(UbuntuCodenames),
				Keyring:   "/usr/share/keyrings/ubuntu-archive-keyring.gpg",
			},
			{
				Name:    "debian",
				URL:     "https://deb.debian.org/debian/",
				Suites:  []string{DistPlaceholder},
				Keyring: "/usr/share/keyrings/debian-archive-keyring.gpg",
			},
		},
	}
}

// DefaultCachePath returns the download cache location.
// It lives below $XDG_RUNTIME_DIR when set, and in the working directory otherwise.
func DefaultCachePath() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "apt", "symbol-merger")
	}
	return filepath.Join(StateDirName, CacheDirName)
}
