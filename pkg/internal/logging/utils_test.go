package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIfNil(t *testing.T) {
	// when:
	logger := logging.DefaultIfNil(nil)

	// then:
	require.NotNil(t, logger)
}

func TestNew(t *testing.T) {
	t.Run("silent when logging is off", func(t *testing.T) {
		// when:
		logger := logging.New(config.Default())

		// then:
		require.NotNil(t, logger)
		assert.NotPanics(t, func() { logger.Error("nothing should be written") })
	})

	t.Run("respects configured level", func(t *testing.T) {
		// given:
		cfg := config.Default()
		cfg.LogLevel = defs.LogLevelWarn
		cfg.LogHandler = defs.JSONHandler

		// when:
		logger := logging.New(cfg)

		// then:
		assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestSetDefault(t *testing.T) {
	t.Run("replace and restore the library logger", func(t *testing.T) {
		// given:
		previous := logging.Default()
		logger := slog.New(slog.DiscardHandler)

		// when:
		restore := logging.SetDefault(logger)

		// then:
		assert.Same(t, logger, logging.Default())
		assert.Same(t, logger, logging.DefaultIfNil(nil))

		// when:
		restore()

		// then:
		assert.Same(t, previous, logging.Default())
	})

	t.Run("configure from config", func(t *testing.T) {
		// given:
		cfg := config.Default()
		cfg.LogLevel = defs.LogLevelDebug

		// when:
		restore := logging.Configure(cfg)
		defer restore()

		// then:
		assert.True(t, logging.Default().Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("nil silences the library", func(t *testing.T) {
		// when:
		restore := logging.SetDefault(nil)
		defer restore()

		// then:
		require.NotNil(t, logging.Default())
	})
}
