package events

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/possess/internal/domain/robot"
	"github.com/KirkDiggler/possess/internal/domain/scene"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/KirkDiggler/possess/internal/uuid"
	"go.uber.org/zap"
)

// Handler receives a broadcast event
type Handler func(event Event)

// Subscription identifies a registered handler or responder so it can be removed
type Subscription struct {
	ID   string
	Type EventType
}

type subscriber struct {
	id      string
	handler Handler
}

// Bus dispatches typed events to subscribers and routes request-style
// queries to responders.
//
// Delivery is synchronous: Broadcast returns once every handler registered
// for the event type at the time of the call has run, in subscription order.
// Handlers may broadcast, subscribe and unsubscribe while being invoked.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]subscriber

	playerReference   []responder[world.GameObject]
	sceneIndices      []responder[scene.Indices]
	currentSceneIndex []responder[int]
	spawningRobotType []responder[robot.Type]

	playerLookup        func() world.GameObject
	defaultSceneIndices scene.Indices

	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// BusConfig holds configuration for the bus
type BusConfig struct {
	// PlayerLookup answers RequestPlayerReference when nothing responds.
	// Optional, the fallback answer is nil without it.
	PlayerLookup func() world.GameObject

	// SceneIndices answers RequestSceneIndices when nothing responds.
	// Optional, defaults to unresolved indices.
	SceneIndices *scene.Indices

	UUIDGenerator uuid.Generator // Optional, will use default if nil
	Logger        *zap.Logger    // Optional
}

// NewBus creates a new event bus
func NewBus(cfg *BusConfig) *Bus {
	if cfg == nil {
		cfg = &BusConfig{}
	}

	b := &Bus{
		subscribers:         make(map[EventType][]subscriber),
		playerLookup:        cfg.PlayerLookup,
		defaultSceneIndices: scene.UnresolvedIndices(),
		uuidGenerator:       cfg.UUIDGenerator,
		logger:              cfg.Logger,
	}

	if cfg.SceneIndices != nil {
		b.defaultSceneIndices = *cfg.SceneIndices
	}
	if b.uuidGenerator == nil {
		b.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	return b
}

// Subscribe adds a handler for an event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) Subscription {
	sub := Subscription{ID: b.uuidGenerator.New(), Type: eventType}
	if handler == nil {
		b.logger.Warn("ignoring nil handler", zap.Stringer("event", eventType))
		return sub
	}

	b.mu.Lock()
	b.subscribers[eventType] = append(b.subscribers[eventType], subscriber{id: sub.ID, handler: handler})
	b.mu.Unlock()

	b.logger.Debug("subscribed",
		zap.Stringer("event", eventType),
		zap.String("subscription_id", sub.ID))

	return sub
}

// Unsubscribe removes a handler or responder. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch sub.Type {
	case RequestPlayerReference:
		b.playerReference = removeResponder(b.playerReference, sub.ID)
	case RequestSceneIndices:
		b.sceneIndices = removeResponder(b.sceneIndices, sub.ID)
	case RequestCurrentSceneIndex:
		b.currentSceneIndex = removeResponder(b.currentSceneIndex, sub.ID)
	case RequestSpawningRobotType:
		b.spawningRobotType = removeResponder(b.spawningRobotType, sub.ID)
	default:
		subs := b.subscribers[sub.Type]
		idx := slices.IndexFunc(subs, func(s subscriber) bool { return s.id == sub.ID })
		if idx < 0 {
			return
		}
		// Rebuild rather than edit in place; in-flight broadcasts hold the old slice
		b.subscribers[sub.Type] = slices.Delete(slices.Clone(subs), idx, idx+1)
	}
}

// UnsubscribeAll removes every subscription in subs
func (b *Bus) UnsubscribeAll(subs []Subscription) {
	for _, sub := range subs {
		b.Unsubscribe(sub)
	}
}

// Broadcast delivers event to every handler subscribed to its type.
// Broadcasting with no subscribers, or a nil event, does nothing.
func (b *Bus) Broadcast(event Event) {
	if event == nil {
		return
	}

	subs := b.getSubscribers(event.Type())
	if len(subs) == 0 {
		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}

// getSubscribers returns the current subscriber list for an event type.
// The returned slice is never modified afterwards, Unsubscribe rebuilds it.
func (b *Bus) getSubscribers(eventType EventType) []subscriber {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.subscribers[eventType]
}

// ListenerCount returns the number of handlers for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch eventType {
	case RequestPlayerReference:
		return len(b.playerReference)
	case RequestSceneIndices:
		return len(b.sceneIndices)
	case RequestCurrentSceneIndex:
		return len(b.currentSceneIndex)
	case RequestSpawningRobotType:
		return len(b.spawningRobotType)
	default:
		return len(b.subscribers[eventType])
	}
}

// Clear removes all handlers and responders
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = make(map[EventType][]subscriber)
	b.playerReference = nil
	b.sceneIndices = nil
	b.currentSceneIndex = nil
	b.spawningRobotType = nil
}

// On subscribes a handler for one concrete event type, derived from E.
// E must be a value event type such as SceneLoadedEvent.
func On[E Event](b *Bus, handler func(E)) Subscription {
	var zero E
	return b.Subscribe(zero.Type(), func(event Event) {
		if typed, ok := event.(E); ok {
			handler(typed)
		}
	})
}
