package physics_test

import (
	"testing"

	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/physics"
	mockphysics "github.com/KirkDiggler/possess/internal/physics/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLayerMask(t *testing.T) {
	mask := physics.Layer(0) | physics.Layer(3)

	assert.True(t, mask.Includes(0))
	assert.True(t, mask.Includes(3))
	assert.False(t, mask.Includes(1))
	assert.True(t, physics.LayerAll.Includes(31))
}

func TestCamera_ScreenToWorld(t *testing.T) {
	camera := physics.Camera{Origin: world.Vec3(-10, 0, -10), Height: 20, UnitsPerPixel: 0.5}

	assert.Equal(t, world.Vec3(-10, 0, -10), camera.ScreenToWorld(world.Vec3(0, 0, 0)))
	assert.Equal(t, world.Vec3(0, 0, -5), camera.ScreenToWorld(world.Vec3(20, 10, 0)))
}

func TestTopDownSelector_Raycast(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mockphysics.NewMockColliderSource(ctrl)

	camera := physics.Camera{Origin: world.Vec3(0, 0, 0), Height: 10, UnitsPerPixel: 1}
	selector := physics.NewTopDownSelector(camera, source)

	crate := world.NewBody("crate", world.Vec3(5, 0, 5))
	tallRobot := world.NewBody("tall", world.Vec3(5, 2, 5))
	farRobot := world.NewBody("far", world.Vec3(20, 0, 20))
	ghost := world.NewBody("ghost", world.Vec3(5, 4, 5))

	source.EXPECT().Colliders().Return([]physics.Collider{
		{Object: "crate", Transform: crate, Radius: 1, Layer: 0},
		{Object: "tall", Transform: tallRobot, Radius: 1, Layer: 1},
		{Object: "far", Transform: farRobot, Radius: 1, Layer: 1},
		{Object: "ghost", Transform: ghost, Radius: 1, Layer: 2},
		{Object: "detached", Transform: nil, Radius: 100, Layer: 1},
	}).AnyTimes()

	t.Run("nearest to camera wins", func(t *testing.T) {
		hit, ok := selector.Raycast(world.Vec3(5, 5, 0), physics.Layer(0)|physics.Layer(1), physics.DefaultMaxDistance)
		require.True(t, ok)
		assert.Equal(t, "tall", hit.Object)
		assert.Equal(t, world.Vec3(5, 2, 5), hit.Position)
		assert.InDelta(t, 8.0, hit.Distance, 1e-9)
	})

	t.Run("mask filters layers", func(t *testing.T) {
		hit, ok := selector.Raycast(world.Vec3(5, 5, 0), physics.Layer(0), physics.DefaultMaxDistance)
		require.True(t, ok)
		assert.Equal(t, "crate", hit.Object)
	})

	t.Run("max distance filters", func(t *testing.T) {
		_, ok := selector.Raycast(world.Vec3(5, 5, 0), physics.Layer(0), 9)
		assert.False(t, ok)
	})

	t.Run("nothing under cursor", func(t *testing.T) {
		_, ok := selector.Raycast(world.Vec3(12, 12, 0), physics.LayerAll, physics.DefaultMaxDistance)
		assert.False(t, ok)
	})

	t.Run("camera move", func(t *testing.T) {
		selector.SetCamera(physics.Camera{Origin: world.Vec3(15, 0, 15), Height: 10, UnitsPerPixel: 1})
		hit, ok := selector.Raycast(world.Vec3(5, 5, 0), physics.Layer(1), physics.DefaultMaxDistance)
		require.True(t, ok)
		assert.Equal(t, "far", hit.Object)
	})
}
