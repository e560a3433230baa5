// pkg/entity/entity.go
package entity

import (
	"fmt"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// ID uniquely identifies an entity within its collection
type ID string

// NoID is the empty identifier, used for cleared references
const NoID ID = ""

// NewID builds an identifier from a kind prefix and a sequence number
func NewID(prefix string, seq uint64) ID {
	return ID(fmt.Sprintf("%s-%d", prefix, seq))
}

// Body holds the state every entity shares
type Body struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// Collider returns the entity's collision shape
func (b *Body) Collider() physics.Circle {
	return physics.Circle{Center: b.Position, Radius: b.Radius}
}

// Overlaps reports whether two bodies are in contact
func (b *Body) Overlaps(other *Body) bool {
	return b.Collider().Overlaps(other.Collider())
}

// Kinematics returns the body itself, so every kind embedding Body can be
// moved by generic code
func (b *Body) Kinematics() *Body {
	return b
}

// Movable is anything the integrator advances: gravity acts on it and its
// velocity is added to its position each tick.
type Movable interface {
	Kinematics() *Body
	Mass() float64
}

// Target is a hostile or asteroid that weapons can lock onto and damage
type Target interface {
	Kinematics() *Body
	Damage(amount float64) bool
}
