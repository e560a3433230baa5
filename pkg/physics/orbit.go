// pkg/physics/orbit.go
package physics

import "math"

// Orbit describes a fixed circular Keplerian orbit around a parent body
type Orbit struct {
	ParentID        string
	Radius          float64
	Angle           float64
	AngularVelocity float64
}

// NewCircularOrbit builds an orbit whose angular velocity matches the
// circular orbit speed around a parent of the given mass
func NewCircularOrbit(parentID string, parentMass, radius, angle float64) Orbit {
	speed := CircularOrbitSpeed(parentMass, radius)
	w := 0.0
	if radius > 0 {
		w = speed / radius
	}
	return Orbit{ParentID: parentID, Radius: radius, Angle: angle, AngularVelocity: w}
}

// Advance returns the orbit one tick later. The angle accumulates without
// wrapping.
func (o Orbit) Advance() Orbit {
	o.Angle += o.AngularVelocity
	return o
}

// Position returns the orbiting body's position for the given parent position
func (o Orbit) Position(parent Vector2D) Vector2D {
	return Vector2D{
		X: parent.X + math.Cos(o.Angle)*o.Radius,
		Y: parent.Y + math.Sin(o.Angle)*o.Radius,
	}
}

// Velocity returns the parent's velocity plus the tangential orbital velocity
func (o Orbit) Velocity(parent Vector2D) Vector2D {
	speed := o.AngularVelocity * o.Radius
	return Vector2D{
		X: parent.X - math.Sin(o.Angle)*speed,
		Y: parent.Y + math.Cos(o.Angle)*speed,
	}
}
