package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/ui/output"
	"github.com/Debian/apt/internal/ui/style"
	"github.com/muesli/termenv"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
//
// The dist, arch and package attributes are lifted out of the attribute list
// and lead the line as `dist/arch package: message`. Other attributes follow
// the message as key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	loc   location
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	loc := h.loc
	attrs := append([]slog.Attr(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		if h.group != "" || !loc.take(attr) {
			attrs = append(attrs, qualify(h.group, attr))
		}
		return true
	})

	var icon string
	var color termenv.Color
	switch r.Level {
	case slog.LevelWarn:
		icon = style.Warning + " "
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		icon = style.Cross + " "
		color = termenv.RGBColor(string(style.Red))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	body := r.Message
	for _, attr := range attrs {
		body += " " + attr.Key + "=" + formatValue(attr.Value)
	}

	var line strings.Builder
	if icon != "" {
		line.WriteString(h.out.String(icon).Foreground(color).String())
	}
	if prefix := loc.String(); prefix != "" {
		line.WriteString(h.out.String(prefix+":").Foreground(color).Bold().String() + " ")
	}
	line.WriteString(h.out.String(body).Foreground(color).String())

	_, err := h.out.WriteString(line.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		if h.group != "" || !next.loc.take(attr) {
			next.attrs = append(next.attrs, qualify(h.group, attr))
		}
	}
	return next
}

// WithGroup returns a new Handler nesting later attributes under name.
// Location attributes are only recognized outside of groups.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.group = qualifyKey(h.group, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		loc:   h.loc,
		attrs: append([]slog.Attr(nil), h.attrs...),
		group: h.group,
	}
}

// location is where in a merge run a record was emitted.
type location struct {
	dist, arch, pkg string
}

// take records attr if it is a location key.
func (l *location) take(attr slog.Attr) bool {
	switch attr.Key {
	case domain.LogKeyDist:
		l.dist = attr.Value.String()
	case domain.LogKeyArch:
		l.arch = attr.Value.String()
	case domain.LogKeyPackage:
		l.pkg = attr.Value.String()
	default:
		return false
	}
	return true
}

func (l location) String() string {
	var b strings.Builder
	b.WriteString(l.dist)
	if l.arch != "" {
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(l.arch)
	}
	if l.pkg != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.pkg)
	}
	return b.String()
}

func qualify(group string, attr slog.Attr) slog.Attr {
	return slog.Attr{Key: qualifyKey(group, attr.Key), Value: attr.Value}
}

func qualifyKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// formatValue quotes values that would not read as a single token.
// Errors render as their message rather than their structured log value.
func formatValue(v slog.Value) string {
	var s string
	if err, ok := v.Any().(error); ok {
		s = err.Error()
	} else {
		s = v.Resolve().String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
