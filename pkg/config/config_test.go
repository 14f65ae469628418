package config_test

import (
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when environment is empty", func(t *testing.T) {
		// when:
		cfg, err := config.Load()

		// then:
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		// given:
		t.Setenv("HTTPASSERT_SERIALIZER", "StdJSON")
		t.Setenv("HTTPASSERT_NUMBERS_FROM_STRINGS", "true")
		t.Setenv("HTTPASSERT_LOG_LEVEL", "DEBUG")

		// when:
		cfg, err := config.Load()

		// then:
		require.NoError(t, err)
		assert.Equal(t, defs.SerializerStdJSON, cfg.Serializer)
		assert.True(t, cfg.NumbersFromStrings)
		assert.True(t, cfg.CaseInsensitivePropertyNames)
		assert.Equal(t, defs.LogLevelDebug, cfg.LogLevel)
	})

	t.Run("invalid serializer falls back to defaults", func(t *testing.T) {
		// given:
		t.Setenv("HTTPASSERT_SERIALIZER", "xml")

		// when:
		cfg, err := config.Load()

		// then:
		require.Error(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}
