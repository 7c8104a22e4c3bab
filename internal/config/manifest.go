package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	apperr "github.com/KirkDiggler/possess/internal/errors"
)

// Manifest is the build list: every scene in load order plus the indices
// the level state machine navigates by
type Manifest struct {
	Indices scene.Indices     `yaml:"indices"`
	Scenes  []SceneDefinition `yaml:"scenes"`
}

// SceneDefinition describes one scene of the build list
type SceneDefinition struct {
	Name   string           `yaml:"name"`
	Spawn  world.Vector3    `yaml:"spawn"`
	Robots []RobotPlacement `yaml:"robots"`
}

// RobotPlacement puts a robot into a scene. Connections name other robots
// of the same scene that can be possessed from this one at any range.
type RobotPlacement struct {
	ID          string        `yaml:"id"`
	Type        robot.Type    `yaml:"type"`
	Possession  string        `yaml:"possession"`
	Position    world.Vector3 `yaml:"position"`
	Connections []string      `yaml:"connections"`
}

// PossessionType returns the parsed possession type, primary when unset
func (p RobotPlacement) PossessionType() possession.Type {
	t, _ := possession.ParseType(p.Possession)
	return t
}

// DefaultManifest is the built-in build list: a menu and three levels
func DefaultManifest() *Manifest {
	return &Manifest{
		Indices: scene.Indices{MainMenu: 0, FirstLevel: 1, LastLevel: 3},
		Scenes: []SceneDefinition{
			{Name: "main_menu"},
			{
				Name:  "level_1",
				Spawn: world.Vec3(0, 0, 0),
				Robots: []RobotPlacement{
					{ID: "worker-1", Type: robot.TypeWorker, Position: world.Vec3(2, 0, 0)},
					{ID: "worker-2", Type: robot.TypeWorker, Position: world.Vec3(6, 0, 3), Connections: []string{"door-1"}},
					{ID: "door-1", Type: robot.TypeDefault, Possession: "secondary", Position: world.Vec3(14, 0, 3)},
				},
			},
			{
				Name:  "level_2",
				Spawn: world.Vec3(0, 0, 0),
				Robots: []RobotPlacement{
					{ID: "security-1", Type: robot.TypeSecurity, Position: world.Vec3(3, 0, 1), Connections: []string{"terminal-1"}},
					{ID: "cleaner-1", Type: robot.TypeCleaner, Position: world.Vec3(-4, 0, 2)},
					{ID: "terminal-1", Type: robot.TypeDefault, Possession: "secondary", Position: world.Vec3(12, 0, -6)},
				},
			},
			{
				Name:  "level_3",
				Spawn: world.Vec3(0, 0, 0),
				Robots: []RobotPlacement{
					{ID: "security-2", Type: robot.TypeSecurity, Position: world.Vec3(1, 0, 4)},
					{ID: "worker-3", Type: robot.TypeWorker, Position: world.Vec3(4, 0, -1)},
				},
			},
		},
	}
}

// LoadManifest reads the manifest at path, or returns the built-in one when
// path is empty
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotFoundf("scene manifest %s not found", path)
		}
		return nil, apperr.Wrapf(err, "failed to read scene manifest %s", path)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, apperr.Wrapf(err, "invalid scene manifest %s", path)
	}

	return manifest, nil
}

// ParseManifest decodes and validates a YAML manifest. Unknown keys are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	manifest := &Manifest{Indices: scene.UnresolvedIndices()}
	if err := decoder.Decode(manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.Validationf("manifest is empty")
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to decode manifest")
	}

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	return manifest, nil
}

// Validate checks the build list against its indices and every robot
// placement against its scene
func (m *Manifest) Validate() error {
	if len(m.Scenes) == 0 {
		return apperr.Validationf("manifest has no scenes")
	}

	idx := m.Indices
	if !idx.Resolved() {
		return apperr.Validationf("scene indices %s are incomplete", idx)
	}
	for _, i := range []int{idx.MainMenu, idx.FirstLevel, idx.LastLevel} {
		if i < 0 || i >= len(m.Scenes) {
			return apperr.Validationf("scene index %d is outside the build list of %d scenes", i, len(m.Scenes))
		}
	}
	if idx.FirstLevel > idx.LastLevel {
		return apperr.Validationf("first level %d is after last level %d", idx.FirstLevel, idx.LastLevel)
	}
	if idx.MainMenu >= idx.FirstLevel {
		return apperr.Validationf("main menu %d must come before the first level %d", idx.MainMenu, idx.FirstLevel)
	}

	names := make(map[string]bool, len(m.Scenes))
	for i, def := range m.Scenes {
		if def.Name == "" {
			return apperr.Validationf("scene %d has no name", i)
		}
		if names[def.Name] {
			return apperr.Validationf("duplicate scene name %q", def.Name)
		}
		names[def.Name] = true

		if err := def.validateRobots(); err != nil {
			return err
		}
	}

	return nil
}

func (d SceneDefinition) validateRobots() error {
	ids := make(map[string]bool, len(d.Robots))
	for _, r := range d.Robots {
		if r.ID == "" {
			return apperr.Validationf("scene %q has a robot without an id", d.Name)
		}
		if ids[r.ID] {
			return apperr.Validationf("scene %q has duplicate robot id %q", d.Name, r.ID)
		}
		ids[r.ID] = true

		if r.Type != "" && !r.Type.IsValid() {
			return apperr.Validationf("robot %q has unknown type %q", r.ID, r.Type)
		}
		if _, ok := possession.ParseType(r.Possession); !ok {
			return apperr.Validationf("robot %q has unknown possession type %q", r.ID, r.Possession)
		}
	}

	for _, r := range d.Robots {
		for _, target := range r.Connections {
			if !ids[target] {
				return apperr.Validationf("robot %q connects to unknown robot %q in scene %q", r.ID, target, d.Name)
			}
		}
	}

	return nil
}

// SceneNames returns the build list names in load order
func (m *Manifest) SceneNames() []string {
	names := make([]string, len(m.Scenes))
	for i, def := range m.Scenes {
		names[i] = def.Name
	}
	return names
}
