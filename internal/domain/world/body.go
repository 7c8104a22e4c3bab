package world

import "sync"

// Body is the player's own presence in the world. It carries no behavior of
// its own; while the player holds a primary possession the body is moved to
// the possessed entity every fixed tick.
type Body struct {
	id       string
	mu       sync.RWMutex
	position Vector3
}

// NewBody creates a player body at the given position
func NewBody(id string, position Vector3) *Body {
	return &Body{
		id:       id,
		position: position,
	}
}

func (b *Body) ID() string { return b.id }

// Position returns the current body position
func (b *Body) Position() Vector3 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.position
}

// SetPosition teleports the body
func (b *Body) SetPosition(position Vector3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = position
}

// Transform returns the body itself, it is its own transform
func (b *Body) Transform() Transform { return b }

// Destroyed is always false, the body lives for the whole process
func (b *Body) Destroyed() bool { return false }
