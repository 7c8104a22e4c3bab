package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/possess/internal/config"
	apperr "github.com/KirkDiggler/possess/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 5.0, cfg.Possession.Range)
	assert.Equal(t, 1000.0, cfg.Possession.SelectionMaxDistance)
	assert.False(t, cfg.Level.LoopLevels)
	assert.Equal(t, time.Second, cfg.Level.StartingDuration)
	assert.Equal(t, "level_1", cfg.Level.FirstLevelName)
	assert.Equal(t, 20*time.Millisecond, cfg.Loop.FixedStep)
	assert.Equal(t, 5, cfg.Loop.MaxCatchup)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.ScenesFile)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"POSSESS_LOG_LEVEL":                         "debug",
		"POSSESS_LOG_FORMAT":                        "json",
		"POSSESS_POSSESSION_RANGE":                  "7.5",
		"POSSESS_LEVEL_LOOP":                        "true",
		"POSSESS_LEVEL_STARTING_DURATION":           "2s",
		"POSSESS_LOOP_FIXED_STEP":                   "10ms",
		"POSSESS_REDIS_URL":                         "redis://localhost:6379/0",
		"POSSESS_REDIS_CHANNEL":                     "game",
		"POSSESS_SCENES_FILE":                       "scenes.yaml",
		"POSSESS_POSSESSION_SELECTION_MAX_DISTANCE": "250",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 7.5, cfg.Possession.Range)
	assert.Equal(t, 250.0, cfg.Possession.SelectionMaxDistance)
	assert.True(t, cfg.Level.LoopLevels)
	assert.Equal(t, 2*time.Second, cfg.Level.StartingDuration)
	assert.Equal(t, 10*time.Millisecond, cfg.Loop.FixedStep)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "game", cfg.Redis.Channel)
	assert.Equal(t, "scenes.yaml", cfg.ScenesFile)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{name: "unparseable range", environ: map[string]string{"POSSESS_POSSESSION_RANGE": "far"}},
		{name: "zero range", environ: map[string]string{"POSSESS_POSSESSION_RANGE": "0"}},
		{name: "zero fixed step", environ: map[string]string{"POSSESS_LOOP_FIXED_STEP": "0s"}},
		{name: "negative starting duration", environ: map[string]string{"POSSESS_LEVEL_STARTING_DURATION": "-1s"}},
		{name: "no catchup", environ: map[string]string{"POSSESS_LOOP_MAX_CATCHUP": "0"}},
		{name: "relay without flush interval", environ: map[string]string{
			"POSSESS_REDIS_URL":            "redis://localhost:6379",
			"POSSESS_REDIS_FLUSH_INTERVAL": "0s",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFrom(tt.environ)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}
}
