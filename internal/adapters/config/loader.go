// Package config provides the configuration loader for symbol-merge.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file and applies it over the built-in defaults.
// Without an explicit path the file is searched from cwd upwards.
func (l *Loader) Load(cwd, explicitPath string) (*domain.Config, error) {
	configPath := explicitPath
	if configPath == "" {
		found, ok := findConfiguration(cwd)
		if !ok {
			return domain.DefaultConfig(), nil
		}
		configPath = found
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.apply(domain.DefaultConfig(), &file, filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

// findConfiguration walks from cwd to the filesystem root looking for the config file.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) apply(cfg *domain.Config, file *File, configDir string) (*domain.Config, error) {
	if file.Catalog != "" {
		cfg.CatalogPattern = resolvePath(configDir, file.Catalog)
	}
	if file.Provides != "" {
		cfg.Provides = file.Provides
	}
	if file.Component != "" {
		cfg.Component = file.Component
	}
	if len(file.Demangler) > 0 {
		if strings.TrimSpace(file.Demangler[0]) == "" {
			return nil, zerr.With(domain.ErrInvalidConfig, "field", "demangler")
		}
		cfg.Demangler = file.Demangler
	}
	if file.CacheDir != "" {
		cfg.CacheDir = resolvePath(configDir, file.CacheDir)
	}

	if len(file.Archives) == 0 {
		return cfg, nil
	}

	archives := make([]domain.Archive, 0, len(file.Archives))
	defaults := 0
	for i := range file.Archives {
		archive, err := buildArchive(&file.Archives[i])
		if err != nil {
			return nil, zerr.With(err, "archive_index", i)
		}
		if len(archive.Codenames) == 0 {
			defaults++
		}
		if archive.Keyring != "" {
			if _, err := os.Stat(archive.Keyring); err != nil {
				l.Logger.Warn(fmt.Sprintf("keyring %s of archive %s is not readable", archive.Keyring, archive.Name))
			}
		}
		archives = append(archives, archive)
	}

	if defaults > 1 {
		err := zerr.With(domain.ErrInvalidConfig, "reason", "more than one archive without codenames")
		return nil, zerr.With(err, "count", defaults)
	}
	cfg.Archives = archives

	return cfg, nil
}

func buildArchive(dto *ArchiveDTO) (domain.Archive, error) {
	if dto.Name == "" {
		return domain.Archive{}, zerr.With(domain.ErrInvalidConfig, "field", "archives.name")
	}
	if dto.URL == "" {
		err := zerr.With(domain.ErrInvalidConfig, "field", "archives.url")
		return domain.Archive{}, zerr.With(err, "archive", dto.Name)
	}

	url := dto.URL
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}

	suites := dto.Suites
	if len(suites) == 0 {
		suites = []string{domain.DistPlaceholder}
	}

	return domain.Archive{
		Name:      dto.Name,
		URL:       url,
		Suites:    suites,
		Codenames: dto.Codenames,
		Keyring:   dto.Keyring,
	}, nil
}

func resolvePath(configDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(configDir, p)
}

// readAndUnmarshalYAML reads a YAML file and decodes it into the target struct.
// Unknown keys are rejected.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user or found by discovery
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if parseErr := decoder.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
