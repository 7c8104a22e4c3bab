package scenes

import (
	"slices"
	"time"

	"github.com/KirkDiggler/possess/internal/config"
	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	apperr "github.com/KirkDiggler/possess/internal/errors"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/physics"
	"github.com/KirkDiggler/possess/internal/robots"
	"go.uber.org/zap"
)

// Registry receives the possessables of each loaded scene
type Registry interface {
	Register(p possession.Possessable) error
	Clear()
}

// Manager loads scenes from the build list. A load request only marks the
// scene as pending; the swap happens on the next Update so that nothing is
// torn down while a broadcast is still being delivered.
type Manager struct {
	bus      *events.Bus
	registry Registry
	manifest *config.Manifest
	player   *world.Body
	logger   *zap.Logger

	current  int
	pending  int
	sequence uint64
	robots   []*robots.Robot

	subscriptions []events.Subscription
}

// ManagerConfig holds configuration for the manager
type ManagerConfig struct {
	Bus      *events.Bus      // Required
	Registry Registry         // Required
	Manifest *config.Manifest // Required

	// Player is moved to the spawn point of every loaded scene. Optional.
	Player *world.Body
	Logger *zap.Logger // Optional
}

// NewManager creates a manager with no scene loaded
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg.Bus == nil {
		panic("bus is required")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.Manifest == nil {
		panic("manifest is required")
	}

	m := &Manager{
		bus:      cfg.Bus,
		registry: cfg.Registry,
		manifest: cfg.Manifest,
		player:   cfg.Player,
		logger:   cfg.Logger,
		current:  scene.Unresolved,
		pending:  scene.Unresolved,
	}

	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	return m
}

// Enable answers scene queries and listens for load requests
func (m *Manager) Enable() {
	if len(m.subscriptions) > 0 {
		return
	}

	m.subscriptions = []events.Subscription{
		events.On(m.bus, func(e events.RequestLoadLevelEvent) {
			if err := m.LoadByIndex(e.SceneIndex); err != nil {
				m.logger.Warn("load request rejected", zap.Error(err))
			}
		}),
		events.On(m.bus, func(e events.RequestLoadLevelByNameEvent) {
			if err := m.LoadByName(e.SceneName); err != nil {
				m.logger.Warn("load request rejected", zap.Error(err))
			}
		}),
		m.bus.RespondSceneIndices(func() scene.Indices { return m.manifest.Indices }),
		m.bus.RespondCurrentSceneIndex(m.Current),
	}
}

// Disable removes every subscription made by Enable
func (m *Manager) Disable() {
	m.bus.UnsubscribeAll(m.subscriptions)
	m.subscriptions = nil
}

// Current returns the index of the loaded scene, scene.Unresolved before
// the first load completes
func (m *Manager) Current() int {
	return m.current
}

// CurrentName returns the name of the loaded scene
func (m *Manager) CurrentName() string {
	if m.current < 0 {
		return ""
	}
	return m.manifest.Scenes[m.current].Name
}

// Sequence counts completed loads, reloads of the same scene included
func (m *Manager) Sequence() uint64 {
	return m.sequence
}

// Pending reports whether a load waits for the next Update
func (m *Manager) Pending() bool {
	return m.pending != scene.Unresolved
}

// LoadByIndex schedules the scene at index. A later request replaces an
// earlier one that has not completed.
func (m *Manager) LoadByIndex(index int) error {
	if index < 0 || index >= len(m.manifest.Scenes) {
		return apperr.InvalidArgumentf("scene index %d is outside the build list of %d scenes", index, len(m.manifest.Scenes))
	}

	m.pending = index
	m.logger.Debug("scene load scheduled",
		zap.Int("scene_index", index),
		zap.String("scene_name", m.manifest.Scenes[index].Name))
	return nil
}

// LoadByName schedules the scene with the given name
func (m *Manager) LoadByName(name string) error {
	index := slices.IndexFunc(m.manifest.Scenes, func(def config.SceneDefinition) bool {
		return def.Name == name
	})
	if index < 0 {
		return apperr.NotFoundf("scene %q not found", name)
	}
	return m.LoadByIndex(index)
}

// Update completes a pending load
func (m *Manager) Update(time.Duration) {
	if m.pending == scene.Unresolved {
		return
	}

	index := m.pending
	m.pending = scene.Unresolved
	m.swap(index)
}

func (m *Manager) swap(index int) {
	def := m.manifest.Scenes[index]

	for _, r := range m.robots {
		r.Destroy()
	}
	m.registry.Clear()

	m.robots = m.spawn(def)
	m.current = index
	m.sequence++

	if m.player != nil {
		m.player.SetPosition(def.Spawn)
	}

	m.logger.Info("scene loaded",
		zap.Int("scene_index", index),
		zap.String("scene_name", def.Name),
		zap.Int("robots", len(m.robots)),
		zap.Uint64("sequence", m.sequence))

	m.bus.Broadcast(events.SceneLoadedEvent{SceneIndex: index, SceneName: def.Name})
}

func (m *Manager) spawn(def config.SceneDefinition) []*robots.Robot {
	spawned := make([]*robots.Robot, 0, len(def.Robots))
	byID := make(map[string]*robots.Robot, len(def.Robots))

	for _, placement := range def.Robots {
		r := robots.New(&robots.Config{
			ID:             placement.ID,
			RobotType:      placement.Type,
			PossessionType: placement.PossessionType(),
			Position:       placement.Position,
			Logger:         m.logger,
		})
		spawned = append(spawned, r)
		byID[placement.ID] = r
	}

	for _, placement := range def.Robots {
		for _, target := range placement.Connections {
			if other, ok := byID[target]; ok {
				byID[placement.ID].Connect(other)
			}
		}
	}

	for _, r := range spawned {
		if err := m.registry.Register(r); err != nil {
			m.logger.Warn("failed to register robot",
				zap.String("robot_id", r.ID()),
				zap.Error(err))
		}
	}

	return spawned
}

// FixedUpdate moves every robot of the loaded scene
func (m *Manager) FixedUpdate(dt time.Duration) {
	for _, r := range m.robots {
		r.FixedUpdate(dt)
	}
}

// Robots returns the robots of the loaded scene in placement order
func (m *Manager) Robots() []*robots.Robot {
	return slices.Clone(m.robots)
}

// Colliders lists the selection colliders of the loaded scene
func (m *Manager) Colliders() []physics.Collider {
	colliders := make([]physics.Collider, 0, len(m.robots))
	for _, r := range m.robots {
		if r.Destroyed() {
			continue
		}
		colliders = append(colliders, r.Collider())
	}
	return colliders
}
