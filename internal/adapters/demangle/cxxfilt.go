// Package demangle implements the Demangler port with an external filter such as c++filt.
package demangle

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/Debian/apt/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCommand is the filter used when none is configured.
var DefaultCommand = []string{"c++filt"}

// Filter implements ports.Demangler by piping text through a command.
type Filter struct {
	argv []string
}

// New creates a Filter running argv. An empty argv selects DefaultCommand.
func New(argv []string) *Filter {
	if len(argv) == 0 {
		argv = DefaultCommand
	}
	return &Filter{argv: argv}
}

// Command returns the argv of the filter.
func (f *Filter) Command() []string {
	return f.argv
}

// Demangle pipes text through the filter and returns its standard output.
func (f *Filter) Demangle(ctx context.Context, text string) (string, error) {
	//nolint:gosec // The command comes from the user's configuration
	cmd := exec.CommandContext(ctx, f.argv[0], f.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrDemanglerFailed.Error())
		wrapped = zerr.With(wrapped, "command", strings.Join(f.argv, " "))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return "", wrapped
	}

	return stdout.String(), nil
}
