package archive

import (
	"bufio"
	"io"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxFieldSize = 4 << 20

// Stanza is one paragraph of a deb822 control file. Field names are kept as written.
type Stanza map[string]string

// Field returns the value of a field, matching the name case-insensitively.
func (s Stanza) Field(name string) string {
	if v, ok := s[name]; ok {
		return v
	}
	for k, v := range s {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ReadStanzas calls fn for every paragraph of a deb822 stream.
// Continuation lines are joined to their field with a newline.
func ReadStanzas(r io.Reader, fn func(Stanza) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFieldSize)

	stanza := Stanza{}
	last := ""
	flush := func() error {
		if len(stanza) == 0 {
			return nil
		}
		err := fn(stanza)
		stanza = Stanza{}
		last = ""
		return err
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == "":
			if err := flush(); err != nil {
				return err
			}
		case strings.HasPrefix(line, "#"):
		case line[0] == ' ' || line[0] == '\t':
			if last == "" {
				return zerr.With(domain.ErrIndexParseFailed, "line", line)
			}
			stanza[last] += "\n" + strings.TrimSpace(line)
		default:
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return zerr.With(domain.ErrIndexParseFailed, "line", line)
			}
			last = strings.TrimSpace(name)
			stanza[last] = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrIndexParseFailed.Error())
	}
	return flush()
}

// provides reports whether a Provides field names the virtual package.
func provides(field, virtual string) bool {
	for item := range strings.SplitSeq(field, ",") {
		item = strings.TrimSpace(item)
		if idx := strings.IndexAny(item, " ("); idx >= 0 {
			item = item[:idx]
		}
		if item == virtual {
			return true
		}
	}
	return false
}
