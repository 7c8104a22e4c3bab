package clock

//go:generate mockgen -destination=mock/mock_scaler.go -package=mockclock -source=clock.go

import (
	"sync"
	"time"
)

// Scaler controls how fast simulated time passes relative to real time.
// A scale of 0 freezes the simulation.
type Scaler interface {
	Scale() float64
	SetScale(scale float64)
}

// TimeProvider reads wall-clock time
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Clock is the process-wide time scale
type Clock struct {
	mu    sync.RWMutex
	scale float64
}

// New creates a clock running at normal speed
func New() *Clock {
	return &Clock{scale: 1}
}

// Scale returns the current time scale
func (c *Clock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// SetScale changes the time scale. Negative scales are clamped to 0.
func (c *Clock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = scale
}

// Frozen reports whether simulated time is stopped
func (c *Clock) Frozen() bool {
	return c.Scale() == 0
}
