package registry

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/possess/internal/domain/possession"
	apperr "github.com/KirkDiggler/possess/internal/errors"
)

// InMemory is an order-stable registry of the possessables alive in the
// current scene. The world registers entities on creation and unregisters
// them on destruction; controllers only read it.
type InMemory struct {
	mu           sync.RWMutex
	possessables []possession.Possessable
}

// New creates an empty registry
func New() *InMemory {
	return &InMemory{}
}

// Register appends p to the registry
func (r *InMemory) Register(p possession.Possessable) error {
	if p == nil {
		return apperr.InvalidArgumentf("possessable cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if possession.Contains(r.possessables, p) {
		return apperr.AlreadyExistsf("possessable %s already registered", describe(p))
	}

	r.possessables = append(slices.Clip(r.possessables), p)
	return nil
}

// Unregister removes p, keeping the order of the remaining entries
func (r *InMemory) Unregister(p possession.Possessable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.possessables, func(candidate possession.Possessable) bool {
		return candidate == p
	})
	if idx < 0 {
		return apperr.NotFoundf("possessable %s not registered", describe(p))
	}

	r.possessables = slices.Delete(slices.Clone(r.possessables), idx, idx+1)
	return nil
}

// Possessables returns the registered entities in registration order.
// The slice is shared; callers must not modify it.
func (r *InMemory) Possessables() []possession.Possessable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.possessables
}

// Contains reports whether p is registered
func (r *InMemory) Contains(p possession.Possessable) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return possession.Contains(r.possessables, p)
}

// Len returns the number of registered entities
func (r *InMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.possessables)
}

// Clear drops every entry, used when the world is swapped out
func (r *InMemory) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.possessables = nil
}

func describe(p possession.Possessable) string {
	if p == nil {
		return "<nil>"
	}
	if obj := p.GameObject(); obj != nil {
		return obj.ID()
	}
	return "<detached>"
}
