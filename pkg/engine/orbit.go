// pkg/engine/orbit.go
package engine

import (
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// advanceOrbits moves every orbiting body along its orbit. Bodies circling
// the star go first so moons inherit their parent's updated velocity.
func (t *tick) advanceOrbits() {
	star := &t.s.Star
	planets := t.s.Planets

	for i := range planets {
		if planets[i].Orbits(star.ID) {
			moveOnOrbit(&planets[i], star.Position, star.Velocity)
		}
	}

	for i := range planets {
		p := &planets[i]
		if p.Orbit == nil || p.Orbits(star.ID) {
			continue
		}
		parent := findCelestial(planets, entity.ID(p.Orbit.ParentID))
		if parent == nil {
			continue
		}
		moveOnOrbit(p, parent.Position, parent.Velocity)
	}
}

// moveOnOrbit advances a body's orbit and derives its position and velocity.
// The orbit is replaced, not mutated, so earlier states keep their own.
func moveOnOrbit(c *entity.Celestial, parentPos, parentVel physics.Vector2D) {
	o := c.Orbit.Advance()
	c.Orbit = &o
	c.Position = o.Position(parentPos)
	c.Velocity = o.Velocity(parentVel)
}

func findCelestial(bodies []entity.Celestial, id entity.ID) *entity.Celestial {
	for i := range bodies {
		if bodies[i].ID == id {
			return &bodies[i]
		}
	}
	return nil
}
