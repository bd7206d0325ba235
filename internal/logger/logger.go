package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

const (
	runIDKey    ctxKey = "runID"
	identityKey ctxKey = "identity"
)

// InitLogger sets the default slog logger from config. When cfg.Dir is set,
// output is duplicated into a size-rotated file. The returned closer must be
// closed on shutdown.
func InitLogger(cfg Config) io.Closer {
	if cfg.Dir == "" {
		InitLoggerWithWriter(cfg, os.Stdout)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, LogFileName),
		MaxSize:    LogFileMaxSizeMB,
		MaxBackups: LogFileMaxBackups,
		MaxAge:     LogFileMaxAgeDays,
		Compress:   true,
	}
	InitLoggerWithWriter(cfg, io.MultiWriter(os.Stdout, file))
	return file
}

// InitLoggerWithWriter sets the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRunID creates a new UUID for tracing one farming or referral run.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithIdentity returns a new context tagged with the identity name.
func WithIdentity(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, identityKey, name)
}

// GetRunID returns the run ID from the context, or "" when absent.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// FromContext returns a logger that includes the run_id and identity attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := ctx.Value(identityKey).(string); ok && id != "" {
		log = log.With(AttrKeyIdentity, id)
	}
	if id := GetRunID(ctx); id != "" {
		log = log.With(AttrKeyRunID, id)
	}
	return log
}
