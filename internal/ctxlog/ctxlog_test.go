package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)))
}

func TestLogger_MissingFallsBackToDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))

	var nilLogger *slog.Logger
	ctx := context.WithValue(context.Background(), loggerKey{}, nilLogger)
	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestDefaultLogger_Discards(t *testing.T) {
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelError))
}

func TestLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	Debug(ctx, "resolving", "alias", "ped")
	Info(ctx, "executing", "argv", []string{"init"})
	Warn(ctx, "no suggestions")
	Error(ctx, "spawn failed", "err", "boom")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=resolving alias=ped",
		"level=INFO msg=executing",
		"level=WARN msg=\"no suggestions\"",
		"level=ERROR msg=\"spawn failed\" err=boom",
	} {
		assert.Contains(t, out, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_NothingConfigured(t *testing.T) {
	logger, closer, err := Open(Config{})
	require.NoError(t, err)
	assert.Same(t, DefaultLogger, logger)
	assert.NoError(t, closer.Close())
}

func TestOpen_Stderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Open(Config{Level: "warn", Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "alias", "xyz")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown alias=xyz")
}

func TestOpen_BadLevel(t *testing.T) {
	_, _, err := Open(Config{Level: "loud"})
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "desigit.log")

	logger, closer, err := Open(Config{File: path})
	require.NoError(t, err)

	logger.Debug("below default level")
	logger.Info("dispatch done", "exit_code", 0)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "dispatch done", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.EqualValues(t, 0, record["exit_code"])
	assert.NotEmpty(t, record["time"])
}
