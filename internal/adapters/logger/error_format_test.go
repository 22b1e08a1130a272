package logger_test

import (
	"errors"
	"testing"

	"github.com/Debian/apt/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("standard error", func(t *testing.T) {
		entries := logger.CollectErrorEntries(errors.New("simple error"))
		require.Len(t, entries, 1)
		assert.Equal(t, "simple error", entries[0].Message)
		assert.Empty(t, entries[0].Metadata)
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")
		entries := logger.CollectErrorEntries(err)

		var messages []string
		for _, e := range entries {
			messages = append(messages, e.Message)
		}
		assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, messages)
	})

	t.Run("metadata stays on its link", func(t *testing.T) {
		inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
		outer := zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")

		entries := logger.CollectErrorEntries(outer)
		require.Len(t, entries, 2)
		assert.Equal(t, "outer_val", entries[0].Metadata["outer_key"])
		assert.Equal(t, "inner_val", entries[1].Metadata["inner_key"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": 3},
			}},
			want: "Error: error\n       alpha: a\n       mike: 3\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"arch": "armhf"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      arch: armhf",
		},
		{
			name:    "multiline messages",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
