// pkg/entity/debris.go
package entity

import "github.com/infiniti1985/space-drifter/pkg/physics"

// Asteroid is a destructible rock
type Asteroid struct {
	Body
	Health        float64
	RockMass      float64
	Rotation      float64
	RotationSpeed float64
}

// Mass implements Movable
func (a *Asteroid) Mass() float64 {
	if a.RockMass <= 0 {
		return ShipMass
	}
	return a.RockMass
}

// Damage implements Target
func (a *Asteroid) Damage(amount float64) bool {
	a.Health -= amount
	return a.Health <= 0
}

// Debris is a short-lived fragment of a destroyed asteroid
type Debris struct {
	Body
	Life          int
	Rotation      float64
	RotationSpeed float64
}

// Mass implements Movable
func (d *Debris) Mass() float64 { return ShipMass }

// Resource is a crystal that fuels hyperjumps
type Resource struct {
	Body
}

// Mass implements Movable
func (r *Resource) Mass() float64 { return ShipMass }

// Attract pulls the resource toward the ship when it is inside the magnet
// range. The pull weakens linearly with distance and the resulting speed is
// damped and capped.
func (r *Resource) Attract(ship physics.Vector2D, magnetRange float64) {
	dist := r.Position.Distance(ship)
	if dist >= magnetRange {
		return
	}
	pull := ship.Sub(r.Position).Normalize().Scale(ResourceMagnetForce * (1 - dist/magnetRange))
	r.Velocity = r.Velocity.Add(pull).Scale(ResourceMagnetDamp).ClampLength(MaxResourceSpeed)
}

// MissilePickup restocks one homing missile
type MissilePickup struct {
	Body
}

// Mass implements Movable
func (p *MissilePickup) Mass() float64 { return ShipMass }

// ExplosionKind tells the presentation whether a destruction yielded loot
type ExplosionKind int

const (
	ExplosionDud ExplosionKind = iota
	ExplosionRich
)

// Explosion is a purely visual effect with a lifespan
type Explosion struct {
	ID       ID
	Position physics.Vector2D
	Radius   float64
	Life     int
	Kind     ExplosionKind
}
