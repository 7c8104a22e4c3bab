package events

// EventType identifies a broadcast kind
type EventType int

const (
	// Lifecycle
	InitializeGame EventType = iota
	StartGame
	SpawnPlayer
	SceneLoaded
	RequestLoadLevel
	RequestLoadLevelByName
	LevelCompleted
	PlayerCaught
	RequestQuit

	// Pause
	PauseStateChange
	RequestPauseStateChange

	// Input
	Input
	MouseInput

	// Security
	DisobeyingDetected
	RoomEntered
	DoorEntered
	AlertStateChange
	SecurityTierChange

	// Requests answered by a single responder
	RequestPlayerReference
	RequestSceneIndices
	RequestCurrentSceneIndex
	RequestSpawningRobotType
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"InitializeGame",
		"StartGame",
		"SpawnPlayer",
		"SceneLoaded",
		"RequestLoadLevel",
		"RequestLoadLevelByName",
		"LevelCompleted",
		"PlayerCaught",
		"RequestQuit",
		"PauseStateChange",
		"RequestPauseStateChange",
		"Input",
		"MouseInput",
		"DisobeyingDetected",
		"RoomEntered",
		"DoorEntered",
		"AlertStateChange",
		"SecurityTierChange",
		"RequestPlayerReference",
		"RequestSceneIndices",
		"RequestCurrentSceneIndex",
		"RequestSpawningRobotType",
	}
	if e < InitializeGame || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}

// IsRequest reports whether the kind is answered by a responder instead of
// being broadcast to subscribers
func (e EventType) IsRequest() bool {
	return e >= RequestPlayerReference && e <= RequestSpawningRobotType
}
