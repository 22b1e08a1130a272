package catalog

import (
	"bufio"
	"io"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxLineSize = 1 << 20

// Parse reads a symbols file.
//
// Lines before the first symbol line form the prelude and are kept exactly as
// written. Other non-symbol lines, such as the generated optional symbols
// header, are dropped since they are regenerated on output. Architecture
// qualifiers are dropped as well.
func Parse(r io.Reader) (*domain.SeedCatalog, error) {
	seed := &domain.SeedCatalog{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if !strings.HasPrefix(line, " ") {
			if len(seed.Entries) == 0 {
				seed.Prelude = append(seed.Prelude, line)
			}
			continue
		}

		entry, err := ParseSymbolLine(line)
		if err != nil {
			return nil, zerr.With(err, "line", lineNo)
		}
		seed.Entries = append(seed.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSeedCatalogCorrupt.Error())
	}

	return seed, nil
}

// ParseSymbolLine parses a single `<name> <version>` symbol line.
// The name is either bare or a parenthesized tag list followed by a bare or
// quoted name. Whitespace between the tag list and the name is allowed.
func ParseSymbolLine(line string) (domain.SeedEntry, error) {
	s := strings.TrimSpace(line)

	tag := domain.TagPlain
	if strings.HasPrefix(s, "(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return domain.SeedEntry{}, corrupt("unterminated tag list", line)
		}

		var err error
		tag, err = parseTags(s[1:end], line)
		if err != nil {
			return domain.SeedEntry{}, err
		}
		s = strings.TrimLeft(s[end+1:], " \t")
	}

	var name, version string
	if strings.HasPrefix(s, `"`) {
		end := strings.LastIndexByte(s, '"')
		if end == 0 {
			return domain.SeedEntry{}, corrupt("unterminated quoted name", line)
		}
		name = s[1:end]
		version = strings.TrimSpace(s[end+1:])
		if version == "" || strings.ContainsAny(version, " \t") {
			return domain.SeedEntry{}, corrupt("malformed version", line)
		}
	} else {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return domain.SeedEntry{}, corrupt("expected name and version", line)
		}
		name, version = fields[0], fields[1]
	}

	if name == "" {
		return domain.SeedEntry{}, corrupt("empty symbol name", line)
	}

	return domain.SeedEntry{
		Key:     domain.SymbolKey{Tag: tag, Name: name},
		Version: version,
	}, nil
}

// parseTags decodes a `|` separated tag list.
func parseTags(list, line string) (domain.Tag, error) {
	var cxx, optional bool
	for item := range strings.SplitSeq(list, "|") {
		switch {
		case item == domain.CxxTagItem:
			cxx = true
		case item == domain.OptionalStdTagItem:
			optional = true
		case strings.HasPrefix(item, domain.ArchTagPrefix):
			// recomputed on output
		default:
			return domain.TagPlain, zerr.With(corrupt("unknown tag", line), "tag", item)
		}
	}

	switch {
	case cxx && optional:
		return domain.TagCxxOptionalStd, nil
	case cxx:
		return domain.TagCxx, nil
	case optional:
		return domain.TagPlain, corrupt("optional=std without c++", line)
	default:
		return domain.TagPlain, nil
	}
}

func corrupt(reason, line string) error {
	return zerr.With(zerr.With(domain.ErrSeedCatalogCorrupt, "reason", reason), "text", strings.TrimSpace(line))
}
