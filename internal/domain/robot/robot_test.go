package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		robotType Type
		expected  bool
	}{
		{TypeDefault, true},
		{TypeWorker, true},
		{TypeSecurity, true},
		{TypeCleaner, true},
		{Type("toaster"), false},
		{Type(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.robotType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.robotType.IsValid())
		})
	}
}

func TestType_OrDefault(t *testing.T) {
	assert.Equal(t, TypeDefault, Type("").OrDefault())
	assert.Equal(t, TypeSecurity, TypeSecurity.OrDefault())
}
