package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexterrain/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":5180", cfg.Addr())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(map[string]string{
		"PORT":            "8080",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "console",
		"CLIENT_ORIGIN":   "https://example.test",
		"REQUEST_TIMEOUT": "250ms",
		"MAX_GRID_CELLS":  "400",
		"EARLY_EXIT":      "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.LogConsole)
	assert.Equal(t, "https://example.test", cfg.ClientOrigin)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 400, cfg.MaxGridCells)
	assert.False(t, cfg.EarlyExit)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":            "http",
		"LOG_LEVEL":       "loud",
		"LOG_FORMAT":      "xml",
		"REQUEST_TIMEOUT": "-1s",
		"MAX_GRID_CELLS":  "0",
		"EARLY_EXIT":      "maybe",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			_, err := config.FromLookup(lookupFrom(map[string]string{k: v}))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
