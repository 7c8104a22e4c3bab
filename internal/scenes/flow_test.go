package scenes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/possess/internal/clock"
	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/loop"
	"github.com/KirkDiggler/possess/internal/registry"
	"github.com/KirkDiggler/possess/internal/scenes"
	"github.com/KirkDiggler/possess/internal/services/level"
	"github.com/KirkDiggler/possess/internal/services/menu"
	"github.com/KirkDiggler/possess/internal/services/player"
	"github.com/KirkDiggler/possess/internal/testutils"
)

// TestGameFlow drives the whole game through the bus: menu, three levels,
// and back to the menu
func TestGameFlow(t *testing.T) {
	bus := events.NewBus(nil)
	reg := registry.New()
	clk := clock.New()
	body := world.NewBody("player", world.Vector3{})

	manager := scenes.NewManager(&scenes.ManagerConfig{
		Bus:      bus,
		Registry: reg,
		Manifest: testutils.CreateTestManifest(3),
		Player:   body,
	})
	controller := player.NewController(&player.ControllerConfig{Bus: bus, Registry: reg, Body: body})
	machine := level.NewStateMachine(&level.StateMachineConfig{Bus: bus, Clock: clk})
	mainMenu := menu.New(&menu.Config{Bus: bus})

	manager.Enable()
	controller.Enable()
	machine.Enable()
	mainMenu.Enable()

	sim := loop.New(&loop.Config{Scaler: clk})
	sim.AddFixed(manager, loop.FixedFunc(func(time.Duration) { controller.FixedUpdate() }), machine)
	sim.AddUpdate(manager)

	require.NoError(t, manager.LoadByIndex(0))
	sim.Advance(0)
	assert.Equal(t, level.StateMainMenu, machine.State())
	assert.True(t, mainMenu.Visible())

	mainMenu.StartPressed()
	sim.Advance(0)
	assert.Equal(t, 1, manager.Current())
	assert.False(t, mainMenu.Visible())
	require.NotNil(t, controller.Primary(), "the nearest robot is possessed on start")
	assert.Equal(t, "worker-1", controller.Primary().GameObject().ID())

	bus.Broadcast(events.InputEvent{Input: input.TypeMoveForward})
	sim.Advance(time.Second)
	assert.Greater(t, body.Position().Z, 0.0, "the player body follows the possessed robot")

	bus.Broadcast(events.LevelCompletedEvent{SceneIndex: manager.Current(), RobotType: robot.TypeCleaner})
	sim.Advance(0)
	assert.Equal(t, 2, manager.Current())
	assert.Equal(t, robot.TypeCleaner, bus.RequestSpawningRobotType())
	assert.Equal(t, "worker-2", controller.Primary().GameObject().ID())

	bus.Broadcast(events.PlayerCaughtEvent{})
	sim.Advance(0)
	assert.Equal(t, 2, manager.Current())
	assert.Equal(t, uint64(4), manager.Sequence())

	bus.Broadcast(events.LevelCompletedEvent{SceneIndex: 2, RobotType: robot.TypeWorker})
	sim.Advance(0)
	bus.Broadcast(events.LevelCompletedEvent{SceneIndex: 3, RobotType: robot.TypeWorker})
	sim.Advance(0)

	assert.Equal(t, 0, manager.Current())
	assert.Equal(t, level.StateMainMenu, machine.State())
	assert.True(t, mainMenu.Visible())
	assert.Equal(t, 1.0, clk.Scale())
}
