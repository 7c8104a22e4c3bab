package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	apperr "github.com/KirkDiggler/possess/internal/errors"
	"github.com/KirkDiggler/possess/internal/logger"
)

// Prefix is prepended to every environment variable read by Load
const Prefix = "POSSESS_"

// Config holds all configuration for the simulation
type Config struct {
	Log        logger.Config    `envPrefix:"LOG_"`
	Possession PossessionConfig `envPrefix:"POSSESSION_"`
	Level      LevelConfig      `envPrefix:"LEVEL_"`
	Loop       LoopConfig       `envPrefix:"LOOP_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`

	// ScenesFile is an optional YAML scene manifest. The built-in manifest
	// is used when empty.
	ScenesFile string `env:"SCENES_FILE"`
}

// PossessionConfig tunes the possession controller
type PossessionConfig struct {
	Range                float64 `env:"RANGE" envDefault:"5"`
	SelectionMaxDistance float64 `env:"SELECTION_MAX_DISTANCE" envDefault:"1000"`
}

// LevelConfig tunes the level state machine
type LevelConfig struct {
	LoopLevels       bool          `env:"LOOP"`
	StartingDuration time.Duration `env:"STARTING_DURATION" envDefault:"1s"`
	FirstLevelName   string        `env:"FIRST_LEVEL_NAME" envDefault:"level_1"`
}

// LoopConfig tunes the tick driver
type LoopConfig struct {
	FixedStep     time.Duration `env:"FIXED_STEP" envDefault:"20ms"`
	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms"`
	MaxCatchup    int           `env:"MAX_CATCHUP" envDefault:"5"`
}

// RedisConfig holds the optional event relay settings. The relay is off
// when URL is empty.
type RedisConfig struct {
	URL           string        `env:"URL"`
	Channel       string        `env:"CHANNEL" envDefault:"possess:events"`
	FlushInterval time.Duration `env:"FLUSH_INTERVAL" envDefault:"100ms"`
}

// Enabled reports whether the relay should run
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// Load loads configuration from the process environment
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom loads configuration from environ, or from the process
// environment when environ is nil
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that the environment parser cannot express
func (c *Config) Validate() error {
	if c.Possession.Range <= 0 {
		return apperr.Validationf("possession range must be positive, got %v", c.Possession.Range)
	}
	if c.Possession.SelectionMaxDistance <= 0 {
		return apperr.Validationf("selection max distance must be positive, got %v", c.Possession.SelectionMaxDistance)
	}
	if c.Level.StartingDuration < 0 {
		return apperr.Validationf("level starting duration must not be negative, got %s", c.Level.StartingDuration)
	}
	if c.Loop.FixedStep <= 0 {
		return apperr.Validationf("fixed step must be positive, got %s", c.Loop.FixedStep)
	}
	if c.Loop.FrameInterval <= 0 {
		return apperr.Validationf("frame interval must be positive, got %s", c.Loop.FrameInterval)
	}
	if c.Loop.MaxCatchup < 1 {
		return apperr.Validationf("max catchup must be at least 1, got %d", c.Loop.MaxCatchup)
	}
	if c.Redis.Enabled() && c.Redis.Channel == "" {
		return apperr.Validationf("redis channel is required when the relay is enabled")
	}
	if c.Redis.Enabled() && c.Redis.FlushInterval <= 0 {
		return apperr.Validationf("redis flush interval must be positive, got %s", c.Redis.FlushInterval)
	}
	return nil
}
