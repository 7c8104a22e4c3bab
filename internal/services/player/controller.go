package player

import (
	"slices"

	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/possession"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/physics"
	"go.uber.org/zap"
)

// DefaultPossessionRange is how far the player reaches without a connection
const DefaultPossessionRange = 5.0

// Controller owns the player's possessions: at most one primary, which the
// player body follows and forwards input to, plus any number of secondaries.
//
// The controller reacts to bus events and never calls the level state
// machine directly.
type Controller struct {
	bus           *events.Bus
	registry      possession.Registry
	body          *world.Body
	selector      physics.Selector
	selectionMask physics.LayerMask
	maxDistance   float64
	rangeLimit    float64
	logger        *zap.Logger

	primary          possession.Possessable
	primaryTransform world.Transform
	secondaries      []possession.Possessable

	subscriptions []events.Subscription
}

// ControllerConfig holds configuration for the controller
type ControllerConfig struct {
	Bus      *events.Bus         // Required
	Registry possession.Registry // Required
	Body     *world.Body         // Required

	// Selector resolves mouse clicks. Optional, clicks are ignored without it.
	Selector             physics.Selector
	SelectionMask        physics.LayerMask // Optional, defaults to every layer
	SelectionMaxDistance float64           // Optional, defaults to physics.DefaultMaxDistance

	PossessionRange float64     // Optional, defaults to DefaultPossessionRange
	Logger          *zap.Logger // Optional
}

// NewController creates a possession controller
func NewController(cfg *ControllerConfig) *Controller {
	if cfg.Bus == nil {
		panic("bus is required")
	}
	if cfg.Registry == nil {
		panic("registry is required")
	}
	if cfg.Body == nil {
		panic("body is required")
	}

	c := &Controller{
		bus:           cfg.Bus,
		registry:      cfg.Registry,
		body:          cfg.Body,
		selector:      cfg.Selector,
		selectionMask: cfg.SelectionMask,
		maxDistance:   cfg.SelectionMaxDistance,
		rangeLimit:    cfg.PossessionRange,
		logger:        cfg.Logger,
	}

	if c.selectionMask == 0 {
		c.selectionMask = physics.LayerAll
	}
	if c.maxDistance <= 0 {
		c.maxDistance = physics.DefaultMaxDistance
	}
	if c.rangeLimit <= 0 {
		c.rangeLimit = DefaultPossessionRange
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c
}

// Enable subscribes the controller to the bus
func (c *Controller) Enable() {
	if len(c.subscriptions) > 0 {
		return
	}

	c.subscriptions = []events.Subscription{
		events.On(c.bus, func(events.InitializeGameEvent) { c.OnInitializeGame() }),
		events.On(c.bus, func(events.StartGameEvent) { c.OnStartGame() }),
		events.On(c.bus, func(e events.InputEvent) { c.OnInput(e.Input) }),
		events.On(c.bus, func(e events.MouseInputEvent) { c.OnMouseInput(e.Button, e.Down, e.Position) }),
		c.bus.RespondPlayerReference(func() world.GameObject { return c.body }),
	}
}

// Disable removes every subscription made by Enable
func (c *Controller) Disable() {
	c.bus.UnsubscribeAll(c.subscriptions)
	c.subscriptions = nil
}

// Primary returns the primary possession, nil when none is held
func (c *Controller) Primary() possession.Possessable {
	return c.primary
}

// Secondaries returns a copy of the secondary possessions in acquisition order
func (c *Controller) Secondaries() []possession.Possessable {
	return slices.Clone(c.secondaries)
}

// Body returns the player's own body
func (c *Controller) Body() *world.Body {
	return c.body
}

// OnStartGame possesses the nearest robot when a level starts
func (c *Controller) OnStartGame() {
	if !c.TryPossessClosest() {
		c.logger.Info("level started without a possession")
	}
}

// TryPossessClosest possesses the registered entity nearest to the player,
// skipping the current primary. It fails when the registry is empty, when
// nothing but the current primary is registered, or when the nearest
// candidate is out of range.
func (c *Controller) TryPossessClosest() bool {
	candidates := c.registry.Possessables()
	if len(candidates) == 0 {
		c.logger.Warn("no possessables found")
		return false
	}

	origin := c.body.Position()

	var closest possession.Possessable
	closestDistance := 0.0
	for _, candidate := range candidates {
		if candidate == c.primary || possession.IsStale(candidate) {
			continue
		}

		distance := world.Distance(origin, candidate.Transform().Position())
		// Strict comparison, the first of equally distant candidates wins
		if closest == nil || distance < closestDistance {
			closest = candidate
			closestDistance = distance
		}
	}

	if closest == nil {
		c.logger.Debug("no possessable besides the current primary")
		return false
	}

	if closestDistance > c.rangeLimit {
		c.logger.Debug("closest possessable out of range",
			zap.String("entity_id", entityID(closest)),
			zap.Float64("distance", closestDistance),
			zap.Float64("range", c.rangeLimit))
		return false
	}

	return c.Possess(closest)
}

// Possess takes control of p according to its possession type. A new
// primary releases the previous one before being possessed itself.
func (c *Controller) Possess(p possession.Possessable) bool {
	if possession.IsStale(p) {
		c.logger.Warn("refusing to possess a stale entity")
		return false
	}

	switch p.PossessionType() {
	case possession.TypePrimary:
		if c.primary != nil {
			c.primary.Unpossess()
		}
		p.Possess()
		c.primary = p
		c.primaryTransform = p.Transform()
	case possession.TypeSecondary:
		p.Possess()
		c.secondaries = append(c.secondaries, p)
	default:
		c.logger.Warn("unknown possession type",
			zap.String("entity_id", entityID(p)),
			zap.Stringer("possession_type", p.PossessionType()))
		return false
	}

	c.logger.Debug("possessed",
		zap.String("entity_id", entityID(p)),
		zap.Stringer("possession_type", p.PossessionType()))

	return true
}

// OnMouseInput handles a pointer button transition. A left-button press
// selects the possessable under the cursor. Targets beyond possession range
// are still possessed when they are connected to the current primary.
func (c *Controller) OnMouseInput(button input.MouseButton, down bool, screenPoint world.Vector3) bool {
	if button != input.MouseButtonLeft || !down {
		return false
	}
	if c.selector == nil {
		return false
	}

	hit, ok := c.selector.Raycast(screenPoint, c.selectionMask, c.maxDistance)
	if !ok {
		return false
	}

	target, ok := possession.As(hit.Object)
	if !ok {
		return false
	}

	distance := world.Distance(hit.Position, c.body.Position())
	if distance <= c.rangeLimit {
		return c.Possess(target)
	}

	if c.primary == nil {
		c.logger.Debug("clicked possessable out of range with no primary held",
			zap.String("entity_id", entityID(target)),
			zap.Float64("distance", distance))
		return false
	}

	if possession.Contains(c.primary.ConnectedPossessables(), target) {
		return c.Possess(target)
	}

	c.logger.Debug("clicked possessable out of range",
		zap.String("entity_id", entityID(target)),
		zap.Float64("distance", distance),
		zap.Float64("range", c.rangeLimit))
	return false
}

// OnInput handles a classified input. The possess command is handled here,
// anything else goes to the primary possession, or nowhere when none is held.
func (c *Controller) OnInput(in input.Type) {
	if in == input.TypePossessKeyDown {
		c.TryPossessClosest()
		return
	}

	if c.primary == nil || possession.IsStale(c.primary) {
		return
	}
	c.primary.GiveInput(in)
}

// OnInitializeGame releases every secondary possession and forgets the primary
func (c *Controller) OnInitializeGame() {
	for _, p := range c.secondaries {
		if possession.IsStale(p) {
			continue
		}
		p.Unpossess()
	}

	c.secondaries = nil
	c.primary = nil
	c.primaryTransform = nil
}

// FixedUpdate moves the player body onto the primary possession
func (c *Controller) FixedUpdate() {
	if c.primary == nil || c.primaryTransform == nil {
		return
	}
	if possession.IsStale(c.primary) {
		return
	}
	c.body.SetPosition(c.primaryTransform.Position())
}

func entityID(p possession.Possessable) string {
	if obj := p.GameObject(); obj != nil {
		return obj.ID()
	}
	return ""
}
