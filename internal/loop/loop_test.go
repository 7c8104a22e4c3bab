package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/possess/internal/clock"
	mockclock "github.com/KirkDiggler/possess/internal/clock/mock"
	"github.com/KirkDiggler/possess/internal/loop"
)

type counter struct {
	fixed   []time.Duration
	updates []time.Duration
}

func (c *counter) FixedUpdate(dt time.Duration) { c.fixed = append(c.fixed, dt) }
func (c *counter) Update(dt time.Duration)      { c.updates = append(c.updates, dt) }

func newLoop(scaler clock.Scaler) (*loop.Loop, *counter) {
	l := loop.New(&loop.Config{
		Scaler:     scaler,
		FixedStep:  20 * time.Millisecond,
		MaxCatchup: 5,
	})
	c := &counter{}
	l.AddFixed(c)
	l.AddUpdate(c)
	return l, c
}

func TestAdvance_AccumulatesFixedSteps(t *testing.T) {
	l, c := newLoop(clock.New())

	assert.Equal(t, 2, l.Advance(50*time.Millisecond))
	assert.Equal(t, 1, l.Advance(10*time.Millisecond))
	assert.Equal(t, 0, l.Advance(5*time.Millisecond))

	assert.Equal(t, uint64(3), l.Ticks())
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 20 * time.Millisecond, 20 * time.Millisecond}, c.fixed)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 10 * time.Millisecond, 5 * time.Millisecond}, c.updates)
}

func TestAdvance_FrozenClock(t *testing.T) {
	clk := clock.New()
	clk.SetScale(0)
	l, c := newLoop(clk)

	assert.Equal(t, 0, l.Advance(time.Second))
	assert.Empty(t, c.fixed)
	assert.Equal(t, []time.Duration{0}, c.updates, "per-frame updaters still run while frozen")

	clk.SetScale(1)
	assert.Equal(t, 1, l.Advance(20*time.Millisecond), "frozen time never accumulated")
}

func TestAdvance_ScaledTime(t *testing.T) {
	clk := clock.New()
	clk.SetScale(0.5)
	l, _ := newLoop(clk)

	assert.Equal(t, 1, l.Advance(40*time.Millisecond))
}

func TestAdvance_CatchupIsBounded(t *testing.T) {
	l, c := newLoop(clock.New())

	assert.Equal(t, 5, l.Advance(time.Second))
	assert.Len(t, c.fixed, 5)
	assert.Equal(t, 0, l.Advance(0))
}

func TestAdvance_NegativeElapsed(t *testing.T) {
	l, c := newLoop(clock.New())

	assert.Equal(t, 0, l.Advance(-time.Second))
	assert.Equal(t, []time.Duration{0}, c.updates)
}

func TestAdvance_RegistrationOrder(t *testing.T) {
	l := loop.New(&loop.Config{Scaler: clock.New()})

	var calls []string
	l.AddUpdate(loop.UpdateFunc(func(time.Duration) { calls = append(calls, "update") }))
	l.AddFixed(
		loop.FixedFunc(func(time.Duration) { calls = append(calls, "fixed-a") }),
		loop.FixedFunc(func(time.Duration) { calls = append(calls, "fixed-b") }),
	)

	l.Advance(loop.DefaultFixedStep)

	assert.Equal(t, []string{"fixed-a", "fixed-b", "update"}, calls)
}

func TestNew_Defaults(t *testing.T) {
	l := loop.New(&loop.Config{Scaler: clock.New()})

	assert.Equal(t, loop.DefaultFixedStep, l.FixedStep())
	assert.Panics(t, func() { loop.New(&loop.Config{}) })
}

func TestRun_AdvancesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeProvider := mockclock.NewMockTimeProvider(ctrl)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timeProvider.EXPECT().Now().DoAndReturn(func() time.Time {
		now = now.Add(20 * time.Millisecond)
		return now
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := loop.New(&loop.Config{
		Scaler:       clock.New(),
		FixedStep:    20 * time.Millisecond,
		TimeProvider: timeProvider,
	})

	fixedTicks := 0
	l.AddFixed(loop.FixedFunc(func(time.Duration) {
		fixedTicks++
		if fixedTicks == 3 {
			cancel()
		}
	}))

	err := l.Run(ctx, time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, fixedTicks, 3)
	assert.Equal(t, uint64(fixedTicks), l.Ticks())
}
