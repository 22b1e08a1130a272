package merger

import (
	"bufio"
	"io"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"go.trai.ch/zerr"
)

// OptionalHeader precedes the block of optional standard library symbols.
var OptionalHeader = []string{
	"# Optional C++ standard library symbols",
	"# These are inlined libstdc++ symbols and not supposed to be part of our ABI",
	"# but we cannot stop stuff from linking against it, sigh.",
}

// Serialize writes the catalog: the prelude, the library symbols, then the
// optional standard library symbols behind OptionalHeader.
//
// Within each block symbols exported by the whole universe come first and
// unqualified, followed by the others with an architecture qualifier.
func Serialize(w io.Writer, prelude []string, acc *Accumulator, universe domain.ArchSet) error {
	bw := bufio.NewWriter(w)
	entries := acc.Entries()

	for _, line := range prelude {
		writeLine(bw, line)
	}

	for _, optional := range []bool{false, true} {
		if optional {
			for _, line := range OptionalHeader {
				writeLine(bw, line)
			}
		}

		for _, e := range entries {
			if e.Key.Tag.IsOptional() == optional && e.Presence.Equal(universe) {
				writeLine(bw, " "+formatName(e.Key, "")+" "+e.Version)
			}
		}

		for _, e := range entries {
			if e.Key.Tag.IsOptional() != optional || e.Presence.Len() == 0 || e.Presence.Equal(universe) {
				continue
			}
			writeLine(bw, " "+formatName(e.Key, Qualifier(e.Presence, universe))+" "+e.Version)
		}
	}

	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrCatalogWriteFailed.Error())
	}
	return nil
}

// Qualifier renders the architecture list of a symbol exported by only part of the universe.
// The shorter of the present set and the negated complement is used; ties keep the present set.
func Qualifier(present, universe domain.ArchSet) string {
	missing := universe.Minus(present)
	if present.Len() > missing.Len() {
		archs := missing.Sorted()
		for i, a := range archs {
			archs[i] = "!" + a
		}
		return strings.Join(archs, " ")
	}
	return present.String()
}

// formatName renders the symbol name with its tag items, if any.
// A plain symbol keeps its qualifier as a separate leading token; C++ symbols
// carry it inside their tag list in front of the quoted name.
func formatName(key domain.SymbolKey, qualifier string) string {
	if !key.Tag.IsCxx() {
		if qualifier == "" {
			return key.Name
		}
		return "(" + domain.ArchTagPrefix + qualifier + ") " + key.Name
	}

	tags := []string{key.Tag.String()}
	if qualifier != "" {
		tags = append([]string{domain.ArchTagPrefix + qualifier}, tags...)
	}
	return "(" + strings.Join(tags, "|") + `)"` + key.Name + `"`
}

// writeLine ignores errors; bufio.Writer reports the first one on Flush.
func writeLine(w *bufio.Writer, line string) {
	_, _ = w.WriteString(line)
	_ = w.WriteByte('\n')
}
