package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration
type Config struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Format      string `env:"FORMAT" envDefault:"console"` // json or console
	Development bool   `env:"DEVELOPMENT"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// New builds a zap logger from cfg
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		// Per-tick diagnostics repeat; keep them all
		zapConfig.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	return zapConfig.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// Component returns l tagged with a component name, or a no-op logger when l is nil
func Component(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.With(zap.String("component", name))
}
