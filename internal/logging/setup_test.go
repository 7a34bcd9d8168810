package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	log, flush, err := New(Options{Level: "debug", Format: "json", Out: &buf})
	require.NoError(t, err)
	defer flush()

	log.Info(context.Background(), "feed loaded", "posts", 3)

	out := buf.String()
	assert.Contains(t, out, "feed loaded")
	assert.Contains(t, out, `"posts":3`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestNew_LevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	log, flush, err := New(Options{Level: "warn", Format: "console", Out: &buf})
	require.NoError(t, err)
	defer flush()

	ctx := context.Background()
	log.Info(ctx, "quiet")
	log.Warn(ctx, "loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, _, err := New(Options{Level: "chatty"})
	require.Error(t, err)

	_, _, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
