package menu

import (
	"github.com/KirkDiggler/possess/internal/events"
	"go.uber.org/zap"
)

// DefaultFirstLevelName is the scene the start button loads
const DefaultFirstLevelName = "level_1"

// Menu is the main menu. It only talks to the rest of the game through the bus.
type Menu struct {
	bus            *events.Bus
	firstLevelName string
	logger         *zap.Logger

	visible       bool
	subscriptions []events.Subscription
}

// Config holds configuration for the menu
type Config struct {
	Bus            *events.Bus // Required
	FirstLevelName string      // Optional, defaults to DefaultFirstLevelName
	Logger         *zap.Logger // Optional
}

// New creates a visible main menu
func New(cfg *Config) *Menu {
	if cfg.Bus == nil {
		panic("bus is required")
	}

	m := &Menu{
		bus:            cfg.Bus,
		firstLevelName: cfg.FirstLevelName,
		logger:         cfg.Logger,
		visible:        true,
	}

	if m.firstLevelName == "" {
		m.firstLevelName = DefaultFirstLevelName
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	return m
}

// Enable subscribes the menu to scene loads
func (m *Menu) Enable() {
	if len(m.subscriptions) > 0 {
		return
	}

	m.subscriptions = []events.Subscription{
		events.On(m.bus, func(e events.SceneLoadedEvent) { m.OnSceneLoaded(e.SceneIndex) }),
	}
}

// Disable removes every subscription made by Enable
func (m *Menu) Disable() {
	m.bus.UnsubscribeAll(m.subscriptions)
	m.subscriptions = nil
}

// Visible reports whether the menu is shown
func (m *Menu) Visible() bool {
	return m.visible
}

// StartPressed requests the first level by name
func (m *Menu) StartPressed() {
	if !m.visible {
		m.logger.Debug("start pressed while menu hidden")
		return
	}
	m.logger.Info("start pressed", zap.String("scene_name", m.firstLevelName))
	m.bus.Broadcast(events.RequestLoadLevelByNameEvent{SceneName: m.firstLevelName})
}

// QuitPressed asks the application to shut down
func (m *Menu) QuitPressed() {
	if !m.visible {
		m.logger.Debug("quit pressed while menu hidden")
		return
	}
	m.logger.Info("quit pressed")
	m.bus.Broadcast(events.RequestQuitEvent{})
}

// OnSceneLoaded shows the menu on the main menu scene and hides it elsewhere
func (m *Menu) OnSceneLoaded(sceneIndex int) {
	m.visible = sceneIndex == m.bus.RequestSceneIndices().MainMenu
}
