package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	c := New()
	assert.Equal(t, 1.0, c.Scale())
	assert.False(t, c.Frozen())

	c.SetScale(0)
	assert.True(t, c.Frozen())

	c.SetScale(0.5)
	assert.Equal(t, 0.5, c.Scale())

	c.SetScale(-3)
	assert.Equal(t, 0.0, c.Scale())
}
