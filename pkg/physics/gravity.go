// pkg/physics/gravity.go
package physics

import "math"

// GravitationalConstant scales every attraction in the world
const GravitationalConstant = 0.1

// Attractor is a massive body whose gravity acts on movable objects
type Attractor struct {
	ID       string
	Position Vector2D
	Radius   float64
	Mass     float64
}

// GravityForce returns the net gravitational force on an object of the given
// mass at pos. An attractor sharing the object's id is skipped, and an
// attractor contributes nothing while the object is at or inside its radius.
func GravityForce(id string, pos Vector2D, mass float64, attractors []Attractor) Vector2D {
	var total Vector2D
	for _, body := range attractors {
		if id != "" && body.ID == id {
			continue
		}
		total = total.Add(attraction(pos, mass, body))
	}
	return total
}

// attraction is the pull of a single body, zero at or inside its surface
func attraction(pos Vector2D, mass float64, body Attractor) Vector2D {
	offset := body.Position.Sub(pos)
	dist := offset.Length()
	if dist <= body.Radius {
		return Vector2D{}
	}
	magnitude := GravitationalConstant * body.Mass * mass / (dist * dist)
	return offset.Normalize().Scale(magnitude)
}

// VelocityDelta converts a force into the velocity change it produces on a
// body of the given mass during one tick. Non-positive masses are treated as
// unit mass.
func VelocityDelta(force Vector2D, mass float64) Vector2D {
	if mass <= 0 {
		mass = 1
	}
	return force.Scale(1 / mass)
}

// CircularOrbitSpeed is the speed needed for a circular orbit of radius r
// around a body of mass m
func CircularOrbitSpeed(m, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(GravitationalConstant * m / r)
}
