package level

import (
	"time"

	"github.com/KirkDiggler/possess/internal/clock"
	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/events"
	"go.uber.org/zap"
)

// DefaultStartingDuration is the grace period after a level loads during
// which pausing is unavailable
const DefaultStartingDuration = time.Second

// State is the coarse phase of the game
type State int

const (
	StateMainMenu State = iota
	StateLevelStarting
	StateLevelActive
	StatePaused
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateLevelStarting:
		return "LevelStarting"
	case StateLevelActive:
		return "LevelActive"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// StateMachine sequences menu, level start, active play and pause. It owns
// the global time scale and the robot type the player spawns as.
type StateMachine struct {
	bus    *events.Bus
	clock  clock.Scaler
	logger *zap.Logger

	loopLevels       bool
	startingDuration time.Duration

	indices          scene.Indices
	state            State
	paused           bool
	pausingAvailable bool
	startingLeft     time.Duration
	spawnType        robot.Type

	subscriptions []events.Subscription
}

// StateMachineConfig holds configuration for the state machine
type StateMachineConfig struct {
	Bus   *events.Bus  // Required
	Clock clock.Scaler // Required

	// LoopLevels restarts at the first level after the last one instead of
	// returning to the main menu
	LoopLevels       bool
	StartingDuration time.Duration // Optional, defaults to DefaultStartingDuration
	Logger           *zap.Logger   // Optional
}

// NewStateMachine creates a level state machine in the main menu with
// unresolved scene indices
func NewStateMachine(cfg *StateMachineConfig) *StateMachine {
	if cfg.Bus == nil {
		panic("bus is required")
	}
	if cfg.Clock == nil {
		panic("clock is required")
	}

	m := &StateMachine{
		bus:              cfg.Bus,
		clock:            cfg.Clock,
		logger:           cfg.Logger,
		loopLevels:       cfg.LoopLevels,
		startingDuration: cfg.StartingDuration,
		indices:          scene.UnresolvedIndices(),
		state:            StateMainMenu,
		spawnType:        robot.TypeDefault,
	}

	if m.startingDuration <= 0 {
		m.startingDuration = DefaultStartingDuration
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	return m
}

// Enable queries the scene indices and subscribes to the bus
func (m *StateMachine) Enable() {
	if len(m.subscriptions) > 0 {
		return
	}

	m.refreshIndices()

	m.subscriptions = []events.Subscription{
		events.On(m.bus, func(e events.InputEvent) { m.OnInput(e.Input) }),
		events.On(m.bus, func(e events.SceneLoadedEvent) { m.OnSceneLoaded(e.SceneIndex) }),
		events.On(m.bus, func(e events.RequestPauseStateChangeEvent) { m.OnRequestPauseStateChange(e.Paused) }),
		events.On(m.bus, func(e events.LevelCompletedEvent) { m.OnLevelCompleted(e.SceneIndex, e.RobotType) }),
		events.On(m.bus, func(events.PlayerCaughtEvent) { m.OnPlayerCaught() }),
		events.On(m.bus, func(events.RequestLoadLevelEvent) { m.onLoadRequested() }),
		events.On(m.bus, func(events.RequestLoadLevelByNameEvent) { m.onLoadRequested() }),
		m.bus.RespondSpawningRobotType(m.SpawnType),
	}
}

// Disable removes every subscription made by Enable
func (m *StateMachine) Disable() {
	m.bus.UnsubscribeAll(m.subscriptions)
	m.subscriptions = nil
}

// State returns the current phase, StatePaused while the game is paused
func (m *StateMachine) State() State {
	if m.paused {
		return StatePaused
	}
	return m.state
}

// Paused reports whether simulated time is suspended by the state machine
func (m *StateMachine) Paused() bool {
	return m.paused
}

// PausingAvailable reports whether the pause toggle is currently honored
func (m *StateMachine) PausingAvailable() bool {
	return m.pausingAvailable
}

// SpawnType returns the robot type the player spawns as in the next level
func (m *StateMachine) SpawnType() robot.Type {
	return m.spawnType
}

// Indices returns the scene indices as last resolved
func (m *StateMachine) Indices() scene.Indices {
	return m.indices
}

func (m *StateMachine) refreshIndices() {
	m.indices = m.bus.RequestSceneIndices()
	if !m.indices.Resolved() {
		m.logger.Warn("scene indices unresolved", zap.Stringer("indices", m.indices))
	}
}

// OnSceneLoaded drives the transition for a freshly loaded scene
func (m *StateMachine) OnSceneLoaded(sceneIndex int) {
	if !m.indices.Resolved() {
		m.refreshIndices()
	}

	switch {
	case sceneIndex == m.indices.MainMenu:
		m.state = StateMainMenu
		m.startingLeft = 0
		m.resume()
	case sceneIndex == m.indices.FirstLevel:
		m.spawnType = robot.TypeDefault
		m.startLevel(sceneIndex)
	case sceneIndex > m.indices.FirstLevel:
		m.startLevel(sceneIndex)
	default:
		m.logger.Debug("loaded scene is neither menu nor level", zap.Int("scene_index", sceneIndex))
	}
}

func (m *StateMachine) startLevel(sceneIndex int) {
	m.state = StateLevelStarting
	m.startingLeft = m.startingDuration
	m.pausingAvailable = false

	m.logger.Info("level starting",
		zap.Int("scene_index", sceneIndex),
		zap.String("robot_type", string(m.spawnType)))

	m.bus.Broadcast(events.SpawnPlayerEvent{RobotType: m.spawnType})
	m.bus.Broadcast(events.InitializeGameEvent{})
	m.bus.Broadcast(events.StartGameEvent{})
	m.resume()
}

// FixedUpdate runs the level starting countdown
func (m *StateMachine) FixedUpdate(dt time.Duration) {
	if m.state != StateLevelStarting {
		return
	}

	m.startingLeft -= dt
	if m.startingLeft <= 0 {
		m.startingLeft = 0
		m.state = StateLevelActive
		m.pausingAvailable = true
		m.logger.Debug("level active")
	}
}

// OnInput toggles pause on the pause key
func (m *StateMachine) OnInput(in input.Type) {
	if in == input.TypePauseKeyDown {
		m.TogglePause()
	}
}

// TogglePause flips the pause state when pausing is available
func (m *StateMachine) TogglePause() {
	if !m.pausingAvailable {
		return
	}
	if m.paused {
		m.resume()
	} else {
		m.pause()
	}
}

// OnRequestPauseStateChange sets the pause state directly
func (m *StateMachine) OnRequestPauseStateChange(paused bool) {
	if paused == m.paused {
		return
	}
	if paused {
		m.pause()
	} else {
		m.resume()
	}
}

func (m *StateMachine) pause() {
	m.clock.SetScale(0)
	m.paused = true
	m.bus.Broadcast(events.PauseStateChangeEvent{Paused: true})
}

func (m *StateMachine) resume() {
	m.clock.SetScale(1)
	m.paused = false
	m.bus.Broadcast(events.PauseStateChangeEvent{Paused: false})
}

// OnLevelCompleted carries the finishing robot type into the next level
// and requests the next scene
func (m *StateMachine) OnLevelCompleted(sceneIndex int, lastPossessed robot.Type) {
	m.spawnType = lastPossessed.OrDefault()

	current := sceneIndex
	if current < 0 {
		current = m.bus.RequestCurrentSceneIndex()
	}
	if current == scene.Unresolved {
		m.logger.Warn("scene index not found, level advance skipped")
		return
	}

	switch {
	case current < m.indices.LastLevel:
		m.requestLoad(current + 1)
	case m.loopLevels:
		m.requestLoad(m.indices.FirstLevel)
	default:
		m.logger.Info("game completed, returning to main menu")
		m.requestLoad(m.indices.MainMenu)
	}
}

// OnPlayerCaught restarts the current scene
func (m *StateMachine) OnPlayerCaught() {
	current := m.bus.RequestCurrentSceneIndex()
	if current == scene.Unresolved {
		m.logger.Warn("scene index not found, restart skipped")
		return
	}
	m.requestLoad(current)
}

func (m *StateMachine) requestLoad(sceneIndex int) {
	m.logger.Debug("requesting level load", zap.Int("scene_index", sceneIndex))
	m.bus.Broadcast(events.RequestLoadLevelEvent{SceneIndex: sceneIndex})
}

func (m *StateMachine) onLoadRequested() {
	m.pausingAvailable = false
}
