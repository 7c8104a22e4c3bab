package input

// Type is a pre-classified input delivered by the input layer
type Type int

const (
	TypeNone Type = iota
	TypeMoveForward
	TypeMoveBackward
	TypeMoveLeft
	TypeMoveRight
	TypeMoveRelease
	TypeActionKeyDown
	TypeActionKeyUp
	TypePossessKeyDown
	TypePauseKeyDown
)

// String returns the string representation of the input type
func (t Type) String() string {
	names := [...]string{
		"None",
		"MoveForward",
		"MoveBackward",
		"MoveLeft",
		"MoveRight",
		"MoveRelease",
		"ActionKeyDown",
		"ActionKeyUp",
		"PossessKeyDown",
		"PauseKeyDown",
	}
	if t < TypeNone || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}

// IsMovement reports whether the input steers the possessed entity
func (t Type) IsMovement() bool {
	return t >= TypeMoveForward && t <= TypeMoveRelease
}

// MouseButton identifies a pointer button
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// String returns the string representation of the mouse button
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}
