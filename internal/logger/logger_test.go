package logger

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

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	slog.Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry), "Failed to parse JSON log")

	// Verify base attributes
	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])

	// Verify message and level
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])

	// Verify custom attributes
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	FromContext(context.Background()).Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRunID(context.Background(), "run-123")
	ctx = WithIdentity(ctx, "alice")

	assert.Equal(t, "run-123", GetRunID(ctx))
	assert.Empty(t, GetRunID(context.Background()))

	FromContext(ctx).Info("tagged")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "run-123", logEntry[AttrKeyRunID])
	assert.Equal(t, "alice", logEntry[AttrKeyIdentity])
}

func TestGenerateRunID(t *testing.T) {
	a, b := GenerateRunID(), GenerateRunID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestInitLogger_File(t *testing.T) {
	dir := t.TempDir()
	cfg := DevelopmentConfig()
	cfg.Dir = dir

	closer := InitLogger(cfg)
	slog.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	assert.Equal(t, "json", config.Format, "Expected JSON format in prod")
	assert.Equal(t, "info", config.Level)
	assert.Equal(t, "prod", config.Environment)
	assert.False(t, config.AddSource, "Expected AddSource=false in production")
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	assert.Equal(t, "text", config.Format, "Expected text format in dev")
	assert.Equal(t, "debug", config.Level)
	assert.True(t, config.AddSource, "Expected AddSource=true in development")
}

func TestConfigApply(t *testing.T) {
	t.Run("overrides non-empty fields", func(t *testing.T) {
		got := ProductionConfig().Apply(Config{Level: "warn", ServiceName: "bot", Dir: "/var/log/bot"})

		assert.Equal(t, "warn", got.Level)
		assert.Equal(t, "bot", got.ServiceName)
		assert.Equal(t, "/var/log/bot", got.Dir)
		assert.Equal(t, LogFormatJSON, got.Format, "unset format keeps the base value")
		assert.Equal(t, EnvironmentProduction, got.Environment)
		assert.False(t, got.AddSource)
	})

	t.Run("empty dir disables file output", func(t *testing.T) {
		got := ProductionConfig().Apply(Config{})
		assert.Empty(t, got.Dir)
	})
}
