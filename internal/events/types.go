package events

import (
	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/world"
)

// Event is a payload delivered to the subscribers of its type.
// Events are plain values; subscribers must not hold on to them.
type Event interface {
	Type() EventType
}

// InitializeGameEvent resets per-level state before a level starts
type InitializeGameEvent struct{}

// StartGameEvent is broadcast once a level has been set up
type StartGameEvent struct{}

// SpawnPlayerEvent asks the spawner to create the player as RobotType
type SpawnPlayerEvent struct {
	RobotType robot.Type `json:"robot_type"`
}

// SceneLoadedEvent reports a finished scene swap
type SceneLoadedEvent struct {
	SceneIndex int    `json:"scene_index"`
	SceneName  string `json:"scene_name"`
}

// RequestLoadLevelEvent asks the scene loader to load a scene by build index
type RequestLoadLevelEvent struct {
	SceneIndex int `json:"scene_index"`
}

// RequestLoadLevelByNameEvent asks the scene loader to load a scene by name
type RequestLoadLevelByNameEvent struct {
	SceneName string `json:"scene_name"`
}

// LevelCompletedEvent carries the finished scene and the robot type the
// player controlled when finishing it
type LevelCompletedEvent struct {
	SceneIndex int        `json:"scene_index"`
	RobotType  robot.Type `json:"robot_type"`
}

// PlayerCaughtEvent reports a failed level
type PlayerCaughtEvent struct{}

// RequestQuitEvent asks the application to shut down
type RequestQuitEvent struct{}

// PauseStateChangeEvent announces the new pause state
type PauseStateChangeEvent struct {
	Paused bool `json:"paused"`
}

// RequestPauseStateChangeEvent asks for a specific pause state
type RequestPauseStateChangeEvent struct {
	Paused bool `json:"paused"`
}

// InputEvent carries one classified input
type InputEvent struct {
	Input input.Type `json:"input"`
}

// MouseInputEvent carries a raw pointer button transition in screen space
type MouseInputEvent struct {
	Button   input.MouseButton `json:"button"`
	Down     bool              `json:"down"`
	Position world.Vector3     `json:"position"`
}

// DisobeyingDetectedEvent reports a robot seen acting out of role
type DisobeyingDetectedEvent struct {
	RobotType robot.Type `json:"robot_type"`
}

// RoomEnteredEvent reports a robot entering a secured room
type RoomEnteredEvent struct {
	SecurityLevel int        `json:"security_level"`
	Allowed       bool       `json:"allowed"`
	RobotType     robot.Type `json:"robot_type"`
}

// DoorEnteredEvent reports a robot passing a secured door
type DoorEnteredEvent struct {
	SecurityLevel int        `json:"security_level"`
	Allowed       bool       `json:"allowed"`
	RobotType     robot.Type `json:"robot_type"`
}

// AlertStateChangeEvent announces a new alert state and the wanted robot type
type AlertStateChangeEvent struct {
	State       int        `json:"state"`
	WantedRobot robot.Type `json:"wanted_robot"`
}

// SecurityTierChangeEvent announces a new security tier
type SecurityTierChangeEvent struct {
	Tier int `json:"tier"`
}

func (InitializeGameEvent) Type() EventType          { return InitializeGame }
func (StartGameEvent) Type() EventType               { return StartGame }
func (SpawnPlayerEvent) Type() EventType             { return SpawnPlayer }
func (SceneLoadedEvent) Type() EventType             { return SceneLoaded }
func (RequestLoadLevelEvent) Type() EventType        { return RequestLoadLevel }
func (RequestLoadLevelByNameEvent) Type() EventType  { return RequestLoadLevelByName }
func (LevelCompletedEvent) Type() EventType          { return LevelCompleted }
func (PlayerCaughtEvent) Type() EventType            { return PlayerCaught }
func (RequestQuitEvent) Type() EventType             { return RequestQuit }
func (PauseStateChangeEvent) Type() EventType        { return PauseStateChange }
func (RequestPauseStateChangeEvent) Type() EventType { return RequestPauseStateChange }
func (InputEvent) Type() EventType                   { return Input }
func (MouseInputEvent) Type() EventType              { return MouseInput }
func (DisobeyingDetectedEvent) Type() EventType      { return DisobeyingDetected }
func (RoomEnteredEvent) Type() EventType             { return RoomEntered }
func (DoorEnteredEvent) Type() EventType             { return DoorEntered }
func (AlertStateChangeEvent) Type() EventType        { return AlertStateChange }
func (SecurityTierChangeEvent) Type() EventType      { return SecurityTierChange }
