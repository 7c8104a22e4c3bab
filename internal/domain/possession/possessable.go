package possession

//go:generate mockgen -destination=mock/mock_possessable.go -package=mockpossession -source=possessable.go

import (
	"strings"

	"github.com/KirkDiggler/possess/internal/domain/input"
	"github.com/KirkDiggler/possess/internal/domain/world"
)

// Type decides how a possessed entity is held by the player
type Type int

const (
	// TypePrimary entities drive the player position and receive input.
	// Only one can be held at a time.
	TypePrimary Type = iota
	// TypeSecondary entities are held alongside the primary
	TypeSecondary
)

// String returns the string representation of the possession type
func (t Type) String() string {
	switch t {
	case TypePrimary:
		return "Primary"
	case TypeSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// ParseType reads a possession type by name, case-insensitively.
// An empty name is primary.
func ParseType(name string) (Type, bool) {
	switch strings.ToLower(name) {
	case "", "primary":
		return TypePrimary, true
	case "secondary":
		return TypeSecondary, true
	default:
		return TypePrimary, false
	}
}

// Possessable is the capability surface of an entity the player can control.
// Entities are owned by the world; holders keep non-owning references.
type Possessable interface {
	// Possess flags the entity as controlled by the player
	Possess()

	// Unpossess releases player control
	Unpossess()

	// PossessionType tells whether the entity is held as primary or secondary
	PossessionType() Type

	// ConnectedPossessables are reachable beyond possession range while
	// this entity is the primary possession
	ConnectedPossessables() []Possessable

	// GiveInput forwards a classified input for the entity to interpret
	GiveInput(in input.Type)

	// Transform exposes the live world position
	Transform() world.Transform

	// GameObject is the underlying world handle
	GameObject() world.GameObject
}

// Registry enumerates the entities currently eligible for possession.
// The returned slice is order-stable and must not be mutated by callers.
type Registry interface {
	Possessables() []Possessable
}

// Provider is implemented by world objects that carry a possessable
// component without being one themselves (e.g. a collider on a robot)
type Provider interface {
	Possessable() (Possessable, bool)
}

// As returns the possessable capability of obj, if it has one
func As(obj any) (Possessable, bool) {
	switch v := obj.(type) {
	case nil:
		return nil, false
	case Possessable:
		if IsStale(v) {
			return nil, false
		}
		return v, true
	case Provider:
		p, ok := v.Possessable()
		if !ok || IsStale(p) {
			return nil, false
		}
		return p, true
	default:
		return nil, false
	}
}

// IsStale reports whether p no longer refers to a live world object
func IsStale(p Possessable) bool {
	if p == nil {
		return true
	}
	obj := p.GameObject()
	return obj == nil || obj.Destroyed()
}

// Contains reports whether target is in list, by identity
func Contains(list []Possessable, target Possessable) bool {
	for _, p := range list {
		if p == target {
			return true
		}
	}
	return false
}
