package menu_test

import (
	"testing"

	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/services/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*events.Bus, *menu.Menu, *[]events.Event) {
	t.Helper()

	indices := scene.Indices{MainMenu: 0, FirstLevel: 1, LastLevel: 2}
	bus := events.NewBus(&events.BusConfig{SceneIndices: &indices})

	var received []events.Event
	record := func(e events.Event) { received = append(received, e) }
	bus.Subscribe(events.RequestLoadLevelByName, record)
	bus.Subscribe(events.RequestQuit, record)

	m := menu.New(&menu.Config{Bus: bus, FirstLevelName: "level_intro"})
	m.Enable()
	t.Cleanup(m.Disable)

	return bus, m, &received
}

func TestMenu_StartRequestsFirstLevelByName(t *testing.T) {
	_, m, received := setup(t)

	m.StartPressed()

	require.Len(t, *received, 1)
	assert.Equal(t, events.RequestLoadLevelByNameEvent{SceneName: "level_intro"}, (*received)[0])
}

func TestMenu_QuitBroadcastsRequest(t *testing.T) {
	_, m, received := setup(t)

	m.QuitPressed()

	assert.Equal(t, []events.Event{events.RequestQuitEvent{}}, *received)
}

func TestMenu_Visibility(t *testing.T) {
	bus, m, received := setup(t)
	assert.True(t, m.Visible())

	bus.Broadcast(events.SceneLoadedEvent{SceneIndex: 1})
	assert.False(t, m.Visible())

	m.StartPressed()
	m.QuitPressed()
	assert.Empty(t, *received, "hidden menu ignores buttons")

	bus.Broadcast(events.SceneLoadedEvent{SceneIndex: 0})
	assert.True(t, m.Visible())
}

func TestMenu_DefaultsAndRequiredBus(t *testing.T) {
	bus := events.NewBus(nil)
	var got []events.Event
	events.On(bus, func(e events.RequestLoadLevelByNameEvent) { got = append(got, e) })

	menu.New(&menu.Config{Bus: bus}).StartPressed()

	assert.Equal(t, []events.Event{events.RequestLoadLevelByNameEvent{SceneName: menu.DefaultFirstLevelName}}, got)
	assert.Panics(t, func() { menu.New(&menu.Config{}) })
}

func TestMenu_Disable(t *testing.T) {
	bus, m, _ := setup(t)

	m.Disable()
	bus.Broadcast(events.SceneLoadedEvent{SceneIndex: 1})

	assert.True(t, m.Visible())
	assert.Equal(t, 0, bus.ListenerCount(events.SceneLoaded))
}
