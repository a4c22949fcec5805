package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/dailyos/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Desc  string
		Input string
		Want  slog.Level
	}{
		{Desc: "debug", Input: "debug", Want: slog.LevelDebug},
		{Desc: "mixed case with spaces", Input: " WARN ", Want: slog.LevelWarn},
		{Desc: "error", Input: "error", Want: slog.LevelError},
		{Desc: "empty", Input: "", Want: slog.LevelInfo},
		{Desc: "unknown", Input: "verbose", Want: slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Want, logging.ParseLevel(tc.Input))
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn", "json")

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("upstream slow", slog.String("path", "/tasks/"))
	var rec map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "upstream slow", rec["msg"])
	assert.Equal(t, "/tasks/", rec["path"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "debug", "")
	logger.Debug("hello", slog.Int("n", 3))
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=3")
}
