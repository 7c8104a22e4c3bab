package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	assert.Equal(t, "PossessKeyDown", TypePossessKeyDown.String())
	assert.Equal(t, "PauseKeyDown", TypePauseKeyDown.String())
	assert.Equal(t, "Unknown", Type(99).String())
	assert.Equal(t, "Unknown", Type(-1).String())
}

func TestType_IsMovement(t *testing.T) {
	tests := []struct {
		input    Type
		expected bool
	}{
		{TypeNone, false},
		{TypeMoveForward, true},
		{TypeMoveRight, true},
		{TypeMoveRelease, true},
		{TypeActionKeyDown, false},
		{TypePossessKeyDown, false},
		{TypePauseKeyDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.IsMovement())
		})
	}
}

func TestMouseButton_String(t *testing.T) {
	assert.Equal(t, "Left", MouseButtonLeft.String())
	assert.Equal(t, "Right", MouseButtonRight.String())
	assert.Equal(t, "Middle", MouseButtonMiddle.String())
	assert.Equal(t, "Unknown", MouseButton(7).String())
}
