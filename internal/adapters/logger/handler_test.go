package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Debian/apt/internal/adapters/logger"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(l *slog.Logger)
		want string
	}{
		{
			name: "plain message",
			log:  func(l *slog.Logger) { l.Info("resolved") },
			want: "resolved\n",
		},
		{
			name: "location leads the line",
			log: func(l *slog.Logger) {
				l.Info("fetched", domain.LogKeyDist, "bookworm", domain.LogKeyArch, "amd64",
					domain.LogKeyPackage, "libapt-pkg6.0", "version", "2.6.1")
			},
			want: "bookworm/amd64 libapt-pkg6.0: fetched version=2.6.1\n",
		},
		{
			name: "partial location",
			log:  func(l *slog.Logger) { l.Info("merged", domain.LogKeyDist, "trixie", "packages", 5) },
			want: "trixie: merged packages=5\n",
		},
		{
			name: "location order does not matter",
			log: func(l *slog.Logger) {
				l.Warn("skipping package", domain.LogKeyPackage, "libapt-pkg7.0",
					domain.LogKeyArch, "armhf", domain.LogKeyDist, "sid", "error", errors.New("bad control"))
			},
			want: "! sid/armhf libapt-pkg7.0: skipping package error=\"bad control\"\n",
		},
		{
			name: "values with spaces are quoted",
			log:  func(l *slog.Logger) { l.Info("resolved architectures", "archs", "amd64 arm64", "note", "") },
			want: "resolved architectures archs=\"amd64 arm64\" note=\"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("handler attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewPrettyHandler(buf, nil).WithAttrs([]slog.Attr{
			slog.String(domain.LogKeyDist, "noble"),
			slog.Int("attempt", 2),
		})

		slog.New(h).Info("fetched", domain.LogKeyArch, "riscv64")
		assert.Equal(t, "noble/riscv64: fetched attempt=2\n", buf.String())
	})

	t.Run("groups qualify keys and hide location", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewPrettyHandler(buf, nil).
			WithAttrs([]slog.Attr{slog.String(domain.LogKeyDist, "noble")}).
			WithGroup("index").
			WithAttrs([]slog.Attr{slog.String("suite", "noble-updates")})

		slog.New(h).Info("scanned", domain.LogKeyArch, "amd64")
		assert.Equal(t, "noble: scanned index.suite=noble-updates index.arch=amd64\n", buf.String())
	})

	t.Run("level filtering", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})

		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))

		slog.New(h).Info("hidden")
		slog.New(h).Warn("shown")
		assert.Equal(t, "! shown\n", buf.String())
	})
}
