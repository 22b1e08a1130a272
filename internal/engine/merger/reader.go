package merger

import (
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Observation is a symbol seen in one package.
type Observation struct {
	Key     domain.SymbolKey
	Version string
	Arch    string
}

// ReadSymbols pairs the raw symbols table of a package with its demangled form
// and returns one observation per symbol line, in table order.
//
// Symbol lines start with a space; header and comment lines are ignored.
// No observations are returned on error.
func ReadSymbols(raw, demangled, arch string) ([]Observation, error) {
	rawLines := symbolLines(raw)
	demangledLines := symbolLines(demangled)

	if len(rawLines) != len(demangledLines) {
		return nil, zerr.With(
			zerr.With(domain.ErrDemangleMismatch, "raw_lines", len(rawLines)),
			"demangled_lines", len(demangledLines),
		)
	}

	observations := make([]Observation, 0, len(rawLines))
	for i, line := range demangledLines {
		name, version, ok := splitSymbolLine(line)
		if !ok {
			return nil, zerr.With(domain.ErrPackageReadFailure, "line", strings.TrimSpace(line))
		}

		rawName, _, ok := splitSymbolLine(rawLines[i])
		if !ok {
			return nil, zerr.With(domain.ErrPackageReadFailure, "line", strings.TrimSpace(rawLines[i]))
		}

		observations = append(observations, Observation{
			Key:     domain.SymbolKey{Tag: domain.Classify(rawName, name), Name: name},
			Version: version,
			Arch:    arch,
		})
	}

	return observations, nil
}

// symbolLines returns the lines of a symbols table that describe a symbol.
func symbolLines(table string) []string {
	var lines []string
	for line := range strings.Lines(table) {
		if strings.HasPrefix(line, " ") {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
	}
	return lines
}

// splitSymbolLine splits a symbol line into name and version.
// The version is the last whitespace separated field; the name may contain spaces.
func splitSymbolLine(line string) (name, version string, ok bool) {
	line = strings.TrimSpace(line)
	idx := strings.LastIndexAny(line, " \t")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	version = line[idx+1:]
	if name == "" {
		return "", "", false
	}
	return name, version, true
}
