package robots

import (
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/physics"
	"go.uber.org/zap"
)

const (
	// DefaultSpeed in world units per second
	DefaultSpeed = 3.0
	// DefaultRadius of a robot's selection collider
	DefaultRadius = 0.5
	// LayerRobots is the collider layer robots live on
	LayerRobots uint = 8
)

// Robot is a possessable machine placed in a scene
type Robot struct {
	mu             sync.RWMutex
	id             string
	robotType      robot.Type
	possessionType possession.Type
	position       world.Vector3
	heading        world.Vector3
	speed          float64
	radius         float64
	connected      []possession.Possessable
	possessed      bool
	acting         bool
	destroyed      bool
	logger         *zap.Logger
}

// Config holds configuration for a robot
type Config struct {
	ID             string          // Required
	RobotType      robot.Type      // Optional, defaults to robot.TypeDefault
	PossessionType possession.Type // Optional, defaults to primary
	Position       world.Vector3
	Speed          float64     // Optional
	Radius         float64     // Optional
	Logger         *zap.Logger // Optional
}

// New creates a robot
func New(cfg *Config) *Robot {
	if cfg == nil || cfg.ID == "" {
		panic("robot id is required")
	}

	r := &Robot{
		id:             cfg.ID,
		robotType:      cfg.RobotType.OrDefault(),
		possessionType: cfg.PossessionType,
		position:       cfg.Position,
		speed:          cfg.Speed,
		radius:         cfg.Radius,
		logger:         cfg.Logger,
	}
	if r.speed <= 0 {
		r.speed = DefaultSpeed
	}
	if r.radius <= 0 {
		r.radius = DefaultRadius
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.logger = r.logger.With(zap.String("robot_id", r.id))

	return r
}

func (r *Robot) ID() string                      { return r.id }
func (r *Robot) RobotType() robot.Type           { return r.robotType }
func (r *Robot) PossessionType() possession.Type { return r.possessionType }
func (r *Robot) Transform() world.Transform      { return r }
func (r *Robot) GameObject() world.GameObject    { return r }

// Position returns the robot's current position
func (r *Robot) Position() world.Vector3 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.position
}

// Possess flags the robot as player controlled
func (r *Robot) Possess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.possessed = true
	r.logger.Debug("possessed")
}

// Unpossess releases player control and stops the robot
func (r *Robot) Unpossess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.possessed = false
	r.heading = world.Vector3{}
	r.acting = false
	r.logger.Debug("unpossessed")
}

// Possessed reports whether the player controls the robot
func (r *Robot) Possessed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.possessed
}

// Acting reports whether the action key is held on the robot
func (r *Robot) Acting() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.acting
}

// Connect links other possessables that stay reachable while this robot is
// the primary possession
func (r *Robot) Connect(others ...possession.Possessable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connected = append(r.connected, others...)
}

// ConnectedPossessables returns the linked possessables
func (r *Robot) ConnectedPossessables() []possession.Possessable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.connected)
}

// GiveInput steers the robot while it is possessed
func (r *Robot) GiveInput(in input.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.possessed {
		r.logger.Debug("ignoring input while not possessed", zap.Stringer("input", in))
		return
	}

	switch in {
	case input.TypeMoveForward:
		r.heading.Z = 1
	case input.TypeMoveBackward:
		r.heading.Z = -1
	case input.TypeMoveLeft:
		r.heading.X = -1
	case input.TypeMoveRight:
		r.heading.X = 1
	case input.TypeMoveRelease:
		r.heading = world.Vector3{}
	case input.TypeActionKeyDown:
		r.acting = true
	case input.TypeActionKeyUp:
		r.acting = false
	default:
		r.logger.Debug("unhandled input", zap.Stringer("input", in))
	}
}

// FixedUpdate advances the robot along its heading
func (r *Robot) FixedUpdate(dt time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed || r.heading == (world.Vector3{}) {
		return
	}

	dir := r.heading
	if m := dir.Magnitude(); m > 1 {
		dir = dir.Scale(1 / m)
	}
	r.position = r.position.Add(dir.Scale(r.speed * dt.Seconds()))
}

// Destroy removes the robot from the world. Held references become stale.
func (r *Robot) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyed = true
	r.possessed = false
}

// Destroyed reports whether the robot was removed from the world
func (r *Robot) Destroyed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.destroyed
}

// Possessable lets a collider hit resolve back to the robot
func (r *Robot) Possessable() (possession.Possessable, bool) {
	return r, !r.Destroyed()
}

// Collider returns the selection collider for the robot
func (r *Robot) Collider() physics.Collider {
	return physics.Collider{
		Object:    r,
		Transform: r,
		Radius:    r.radius,
		Layer:     LayerRobots,
	}
}
