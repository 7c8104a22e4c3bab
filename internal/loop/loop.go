package loop

import (
	"context"
	"time"

	"github.com/KirkDiggler/possess/internal/clock"
	"go.uber.org/zap"
)

const (
	// DefaultFixedStep is the simulated duration of one fixed tick
	DefaultFixedStep = 20 * time.Millisecond
	// DefaultMaxCatchup bounds how many fixed ticks one frame may run
	DefaultMaxCatchup = 5
)

// FixedUpdater runs once per fixed tick. dt is always the fixed step.
type FixedUpdater interface {
	FixedUpdate(dt time.Duration)
}

// Updater runs once per frame with the scaled frame duration
type Updater interface {
	Update(dt time.Duration)
}

// FixedFunc adapts a function to FixedUpdater
type FixedFunc func(dt time.Duration)

func (f FixedFunc) FixedUpdate(dt time.Duration) { f(dt) }

// UpdateFunc adapts a function to Updater
type UpdateFunc func(dt time.Duration)

func (f UpdateFunc) Update(dt time.Duration) { f(dt) }

// Loop is the single update thread. Every registered updater runs on the
// goroutine that calls Advance or Run, so game code needs no locking.
type Loop struct {
	fixedStep    time.Duration
	maxCatchup   int
	scaler       clock.Scaler
	timeProvider clock.TimeProvider
	logger       *zap.Logger

	fixed    []FixedUpdater
	updaters []Updater

	accumulator time.Duration
	ticks       uint64
}

// Config holds configuration for the loop
type Config struct {
	Scaler       clock.Scaler       // Required
	FixedStep    time.Duration      // Optional, defaults to DefaultFixedStep
	MaxCatchup   int                // Optional, defaults to DefaultMaxCatchup
	TimeProvider clock.TimeProvider // Optional, defaults to the system clock
	Logger       *zap.Logger        // Optional
}

// New creates a loop with no updaters
func New(cfg *Config) *Loop {
	if cfg.Scaler == nil {
		panic("scaler is required")
	}

	l := &Loop{
		fixedStep:    cfg.FixedStep,
		maxCatchup:   cfg.MaxCatchup,
		scaler:       cfg.Scaler,
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
	}

	if l.fixedStep <= 0 {
		l.fixedStep = DefaultFixedStep
	}
	if l.maxCatchup < 1 {
		l.maxCatchup = DefaultMaxCatchup
	}
	if l.timeProvider == nil {
		l.timeProvider = &clock.RealTimeProvider{}
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	return l
}

// AddFixed registers fixed-tick updaters, run in registration order
func (l *Loop) AddFixed(updaters ...FixedUpdater) {
	l.fixed = append(l.fixed, updaters...)
}

// AddUpdate registers per-frame updaters, run in registration order
func (l *Loop) AddUpdate(updaters ...Updater) {
	l.updaters = append(l.updaters, updaters...)
}

// FixedStep returns the simulated duration of one fixed tick
func (l *Loop) FixedStep() time.Duration {
	return l.fixedStep
}

// Ticks returns how many fixed ticks have run
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Advance runs one frame covering elapsed real time and returns the number
// of fixed ticks it ran. Real time is scaled by the clock, so nothing
// accumulates while the clock is frozen.
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}

	scaled := time.Duration(float64(elapsed) * l.scaler.Scale())
	l.accumulator += scaled

	limit := l.fixedStep * time.Duration(l.maxCatchup)
	if l.accumulator > limit {
		l.logger.Debug("frame exceeded catchup limit",
			zap.Duration("behind", l.accumulator),
			zap.Duration("limit", limit))
		l.accumulator = limit
	}

	steps := 0
	for l.accumulator >= l.fixedStep {
		for _, u := range l.fixed {
			u.FixedUpdate(l.fixedStep)
		}
		l.accumulator -= l.fixedStep
		l.ticks++
		steps++
	}

	for _, u := range l.updaters {
		u.Update(scaled)
	}

	return steps
}

// Run advances the loop every interval until ctx is done
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = l.fixedStep
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := l.timeProvider.Now()
	l.logger.Info("loop started",
		zap.Duration("interval", interval),
		zap.Duration("fixed_step", l.fixedStep))

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", zap.Uint64("ticks", l.ticks))
			return nil
		case <-ticker.C:
			now := l.timeProvider.Now()
			l.Advance(now.Sub(last))
			last = now
		}
	}
}
