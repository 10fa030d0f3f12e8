package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translate/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text output at info level by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown", logger.Component("catalog"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "component=catalog")
	})

	t.Run("json output with level and attrs", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithJSONFormatter(),
			logger.WithLevel(slog.LevelDebug),
			logger.WithAttr(slog.String("service", "translate")),
		)

		log.Debug("translation missing", logger.TranslationKey("greeting"), logger.Selector(""))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, "translation missing", rec["msg"])
		assert.Equal(t, "translate", rec["service"])
		assert.Equal(t, "greeting", rec["translation_key"])
		assert.NotContains(t, rec, "selector")
	})

	t.Run("development preset", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("translate"), logger.WithOutput(&buf))

		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
		assert.Contains(t, buf.String(), "development")
		assert.NotContains(t, buf.String(), "msg=")
	})

	t.Run("production preset", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("translate"), logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Warn("visible")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "visible", rec["msg"])
		assert.Equal(t, "production", rec["env"])
	})

	t.Run("color formatter", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithColorFormatter(), logger.WithOutput(&buf))

		log.Info("colored", logger.Component("cli"))
		assert.Contains(t, buf.String(), "colored")
		assert.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("nil values keep defaults", func(t *testing.T) {
		log := logger.New(logger.WithOutput(nil), logger.WithLevel(nil))
		assert.NotNil(t, log)
		assert.True(t, log.Enabled(t.Context(), slog.LevelInfo))
		assert.False(t, log.Enabled(t.Context(), slog.LevelDebug))
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
}
