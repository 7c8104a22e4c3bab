package physics

//go:generate mockgen -destination=mock/mock_selector.go -package=mockphysics -source=selector.go

import (
	"math"
	"sync"

	"github.com/KirkDiggler/possess/internal/domain/world"
)

// DefaultMaxDistance bounds selection rays
const DefaultMaxDistance = 1000.0

// LayerMask selects which collider layers a query can hit
type LayerMask uint32

// LayerAll hits every layer
const LayerAll LayerMask = math.MaxUint32

// Layer returns the mask for a single layer
func Layer(n uint) LayerMask {
	return LayerMask(1) << n
}

// Includes reports whether the mask covers layer n
func (m LayerMask) Includes(n uint) bool {
	return m&Layer(n) != 0
}

// Hit is the nearest object found by a selection query
type Hit struct {
	// Object is whatever owns the collider. Callers probe it for capabilities.
	Object any
	// Position is the world position of the hit object
	Position world.Vector3
	// Distance along the ray
	Distance float64
}

// Selector resolves a screen point to the nearest object under it
type Selector interface {
	Raycast(screenPoint world.Vector3, mask LayerMask, maxDistance float64) (Hit, bool)
}

// Collider is a vertical cylinder standing on the ground plane
type Collider struct {
	Object    any
	Transform world.Transform
	Radius    float64
	Layer     uint
}

// ColliderSource lists the colliders currently in the world
type ColliderSource interface {
	Colliders() []Collider
}

// Camera maps screen coordinates onto the ground plane, looking straight down
type Camera struct {
	// Origin is the world point under screen (0, 0)
	Origin world.Vector3
	// Height of the camera above Origin
	Height float64
	// UnitsPerPixel converts screen pixels to world units
	UnitsPerPixel float64
}

// ScreenToWorld returns the ground point under a screen coordinate
func (c Camera) ScreenToWorld(screenPoint world.Vector3) world.Vector3 {
	return world.Vector3{
		X: c.Origin.X + screenPoint.X*c.UnitsPerPixel,
		Y: c.Origin.Y,
		Z: c.Origin.Z + screenPoint.Y*c.UnitsPerPixel,
	}
}

// TopDownSelector casts rays from a top-down camera against the colliders of
// a ColliderSource
type TopDownSelector struct {
	mu     sync.RWMutex
	camera Camera
	source ColliderSource
}

// NewTopDownSelector creates a selector for the given camera and world
func NewTopDownSelector(camera Camera, source ColliderSource) *TopDownSelector {
	if source == nil {
		panic("collider source is required")
	}
	return &TopDownSelector{
		camera: camera,
		source: source,
	}
}

// SetCamera moves the camera
func (s *TopDownSelector) SetCamera(camera Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = camera
}

// Raycast returns the collider whose top is nearest to the camera along the
// vertical ray through screenPoint
func (s *TopDownSelector) Raycast(screenPoint world.Vector3, mask LayerMask, maxDistance float64) (Hit, bool) {
	s.mu.RLock()
	camera := s.camera
	s.mu.RUnlock()

	ground := camera.ScreenToWorld(screenPoint)
	eyeY := camera.Origin.Y + camera.Height

	var best Hit
	found := false
	for _, col := range s.source.Colliders() {
		if !mask.Includes(col.Layer) || col.Transform == nil {
			continue
		}

		pos := col.Transform.Position()
		dx, dz := pos.X-ground.X, pos.Z-ground.Z
		if math.Sqrt(dx*dx+dz*dz) > col.Radius {
			continue
		}

		dist := eyeY - pos.Y
		if dist < 0 || dist > maxDistance {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Object: col.Object, Position: pos, Distance: dist}
			found = true
		}
	}

	return best, found
}
