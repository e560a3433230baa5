// pkg/engine/integrate.go
package engine

import (
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// movable lets the integrator walk a slice of any entity kind in place
type movable[T any] interface {
	*T
	entity.Movable
}

// pull applies one tick of gravity to a single body and returns the force
func pull(m entity.Movable, attractors []physics.Attractor) physics.Vector2D {
	b := m.Kinematics()
	force := physics.GravityForce(string(b.ID), b.Position, m.Mass(), attractors)
	b.Velocity = b.Velocity.Add(physics.VelocityDelta(force, m.Mass()))
	return force
}

func move(b *entity.Body) {
	b.Position = b.Position.Add(b.Velocity)
}

// drift applies gravity and moves every element of items
func drift[T any, P movable[T]](items []T, attractors []physics.Attractor) {
	for i := range items {
		m := P(&items[i])
		pull(m, attractors)
		move(m.Kinematics())
	}
}

// integrate applies gravity to every movable object and advances positions.
// The ship additionally runs its flight assist and resources are drawn
// toward the ship's magnet.
func (t *tick) integrate() {
	s := t.s
	attractors := s.attractors()

	ship := &s.Ship
	s.Gravity = pull(ship, attractors).Length()
	ship.Velocity = shipFlight.Coast(ship.Velocity, ship.Thrusting)
	move(&ship.Body)

	drift(s.Asteroids, attractors)
	for i := range s.Asteroids {
		s.Asteroids[i].Rotation += s.Asteroids[i].RotationSpeed
	}

	drift(s.Projectiles, attractors)
	drift(s.Missiles, attractors)
	drift(s.Hostiles, attractors)

	drift(s.Debris, attractors)
	for i := range s.Debris {
		d := &s.Debris[i]
		d.Rotation += d.RotationSpeed
		d.Life--
	}

	magnet := ship.MagnetRange()
	for i := range s.Resources {
		r := &s.Resources[i]
		pull(r, attractors)
		r.Attract(ship.Position, magnet)
		move(&r.Body)
	}

	drift(s.Pickups, attractors)
}

// upkeep recharges the cannon and counts down invulnerability
func (t *tick) upkeep() {
	ship := &t.s.Ship
	if limit := ship.MaxAmmo(); ship.Ammo < limit {
		ship.Ammo = min(ship.Ammo+entity.ShipAmmoRecharge, limit)
	}
	if ship.Invulnerable > 0 {
		ship.Invulnerable--
	}
}
