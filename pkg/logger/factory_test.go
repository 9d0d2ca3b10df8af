package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonshub/signup/pkg/logger"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelInfo),
	)

	log.Debug("invisible")
	assert.Zero(t, buf.Len(), "debug should be suppressed at info level")

	log.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
	)

	log.Info("hello", slog.String("component", "test"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
	)

	log.Info("readable line")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), `msg="readable line"`)
}

func TestInvalidFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("production is JSON at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Env: "production", Service: "signup"}, logger.WithOutput(&buf))

		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("shown")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "signup", entry["service"])
	})

	t.Run("development is text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Env: "development", Service: "signup"}, logger.WithOutput(&buf))

		log.Debug("shown in dev")
		assert.Contains(t, buf.String(), "shown in dev")
	})

	t.Run("LOG_LEVEL overrides preset", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewFromConfig(
			logger.Config{Env: "production", Service: "signup", Level: "debug"},
			logger.WithOutput(&buf),
		)

		log.Debug("now visible")
		assert.Contains(t, buf.String(), "now visible")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("unknown"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}
