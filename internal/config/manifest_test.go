package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/possess/internal/config"
	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	apperr "github.com/KirkDiggler/possess/internal/errors"
)

const validManifest = `
indices:
  main_menu: 0
  first_level: 1
  last_level: 2
scenes:
  - name: menu
  - name: lab
    spawn: {x: 1, y: 0, z: 1}
    robots:
      - id: w1
        type: worker
        position: {x: 2, y: 0, z: 0}
        connections: [door]
      - id: door
        possession: secondary
        position: {x: 10, y: 0, z: 0}
  - name: vault
`

func TestDefaultManifest_IsValid(t *testing.T) {
	m := config.DefaultManifest()

	require.NoError(t, m.Validate())
	assert.Equal(t, []string{"main_menu", "level_1", "level_2", "level_3"}, m.SceneNames())
}

func TestParseManifest(t *testing.T) {
	m, err := config.ParseManifest([]byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, scene.Indices{MainMenu: 0, FirstLevel: 1, LastLevel: 2}, m.Indices)
	require.Len(t, m.Scenes, 3)

	lab := m.Scenes[1]
	assert.Equal(t, world.Vec3(1, 0, 1), lab.Spawn)
	require.Len(t, lab.Robots, 2)
	assert.Equal(t, robot.TypeWorker, lab.Robots[0].Type)
	assert.Equal(t, possession.TypePrimary, lab.Robots[0].PossessionType())
	assert.Equal(t, []string{"door"}, lab.Robots[0].Connections)
	assert.Equal(t, possession.TypeSecondary, lab.Robots[1].PossessionType())
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty", yaml: ""},
		{name: "not yaml", yaml: "scenes: [unterminated"},
		{name: "unknown key", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b}]\nextra: 1\n"},
		{name: "no scenes", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\n"},
		{name: "missing indices", yaml: "scenes: [{name: a}, {name: b}]\n"},
		{name: "index outside build list", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 4}\nscenes: [{name: a}, {name: b}]\n"},
		{name: "levels reversed", yaml: "indices: {main_menu: 0, first_level: 2, last_level: 1}\nscenes: [{name: a}, {name: b}, {name: c}]\n"},
		{name: "menu inside levels", yaml: "indices: {main_menu: 1, first_level: 1, last_level: 2}\nscenes: [{name: a}, {name: b}, {name: c}]\n"},
		{name: "duplicate scene", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: a}]\n"},
		{name: "unnamed scene", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {}]\n"},
		{name: "robot without id", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b, robots: [{type: worker}]}]\n"},
		{name: "duplicate robot", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b, robots: [{id: r}, {id: r}]}]\n"},
		{name: "unknown robot type", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b, robots: [{id: r, type: tank}]}]\n"},
		{name: "unknown possession", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b, robots: [{id: r, possession: tertiary}]}]\n"},
		{name: "dangling connection", yaml: "indices: {main_menu: 0, first_level: 1, last_level: 1}\nscenes: [{name: a}, {name: b, robots: [{id: r, connections: [ghost]}]}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := config.ParseManifest([]byte(tt.yaml))

			assert.Nil(t, m)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	t.Run("empty path uses the built-in manifest", func(t *testing.T) {
		m, err := config.LoadManifest("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultManifest(), m)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o600))

		m, err := config.LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"menu", "lab", "vault"}, m.SceneNames())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("invalid file keeps the validation code", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenes.yaml")
		require.NoError(t, os.WriteFile(path, []byte("scenes: []\n"), 0o600))

		_, err := config.LoadManifest(path)
		assert.True(t, apperr.IsValidation(err))
	})
}
