package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/core/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Run("json output with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithProduction("totp-online"),
			logger.WithOutput(&buf),
		)
		log.Info("started", logger.Component("http"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "started", record["msg"])
		assert.Equal(t, "totp-online", record["service"])
		assert.Equal(t, "production", record["env"])
		assert.Equal(t, "http", record["component"])
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("development logs debug as text", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("totp-online"), logger.WithOutput(&buf))
		log.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("context values are extracted", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxKey{}),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")
		log.InfoContext(ctx, "handled")
		log.With("k", "v").InfoContext(context.Background(), "plain")

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		assert.Contains(t, string(lines[0]), `"request_id":"req-42"`)
		assert.NotContains(t, string(lines[1]), "request_id")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
