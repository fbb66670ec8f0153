// Package ctxlog carries a slog.Logger in a context.Context.
//
// Logging is off unless asked for: stdout and stderr belong to the git
// process being relayed, so the default logger discards everything. The
// --log-level flag turns on a text handler on stderr, and --log-file sends
// records to a size-rotated file instead.
package ctxlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type loggerKey struct{}

// DefaultLogger is used when no logger is in the context. It discards.
var DefaultLogger = slog.New(slog.DiscardHandler)

// Rotation limits for --log-file.
const (
	maxSizeMB  = 1
	maxBackups = 2
	maxAgeDays = 30
)

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("unknown log level")

// Config selects where log records go.
type Config struct {
	// Level is debug, info, warn or error. Empty means info when File is set
	// and no logging otherwise.
	Level string
	// File, when set, receives records through a rotating writer.
	File string
	// Stderr is the destination when File is empty. Nil means os.Stderr.
	Stderr io.Writer
}

// New creates a new context with the given logger.
// If logger is nil, it uses the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}
	return logger
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).WarnContext(ctx, msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).ErrorContext(ctx, msg, args...)
}

// ParseLevel maps a flag value to a slog level. Matching ignores case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q (want debug, info, warn or error)", ErrUnknownLevel, s)
	}
}

// Open builds the logger described by cfg. The returned closer releases the
// log file and must be called before exit; it is a no-op when there is none.
func Open(cfg Config) (*slog.Logger, io.Closer, error) {
	if cfg.Level == "" && cfg.File == "" {
		return DefaultLogger, nopCloser{}, nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		w := cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
		return slog.New(slog.NewTextHandler(w, opts)), nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.String(a.Key, a.Value.Time().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.New(slog.NewJSONHandler(sink, opts)), sink, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
