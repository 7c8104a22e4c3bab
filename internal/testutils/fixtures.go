package testutils

import (
	"fmt"

	"github.com/KirkDiggler/possess/internal/config"
	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/robots"
)

// CreateTestRobot creates a primary robot at position
func CreateTestRobot(id string, robotType robot.Type, position world.Vector3) *robots.Robot {
	return robots.New(&robots.Config{
		ID:        id,
		RobotType: robotType,
		Position:  position,
	})
}

// CreateTestSecondary creates a secondary robot at position
func CreateTestSecondary(id string, position world.Vector3) *robots.Robot {
	return robots.New(&robots.Config{
		ID:             id,
		PossessionType: possession.TypeSecondary,
		Position:       position,
	})
}

// CreateTestManifest creates a build list with a menu at index 0 followed
// by levels named level_1..level_n. Every level holds one worker two units
// from the spawn point.
func CreateTestManifest(levels int) *config.Manifest {
	m := &config.Manifest{
		Indices: scene.Indices{MainMenu: 0, FirstLevel: 1, LastLevel: levels},
		Scenes:  []config.SceneDefinition{{Name: "main_menu"}},
	}

	for i := 1; i <= levels; i++ {
		m.Scenes = append(m.Scenes, config.SceneDefinition{
			Name: fmt.Sprintf("level_%d", i),
			Robots: []config.RobotPlacement{
				{
					ID:       fmt.Sprintf("worker-%d", i),
					Type:     robot.TypeWorker,
					Position: world.Vec3(2, 0, 0),
				},
			},
		})
	}

	return m
}
