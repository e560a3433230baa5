// pkg/entity/celestial.go
package entity

import "github.com/infiniti1985/space-drifter/pkg/physics"

// PlanetType is the visual and generation class of a body
type PlanetType string

const (
	Rocky    PlanetType = "rocky"
	GasGiant PlanetType = "gas_giant"
	Ice      PlanetType = "ice"
	Terran   PlanetType = "terran"
	Lava     PlanetType = "lava"
	Moon     PlanetType = "moon"
	Mars     PlanetType = "mars"
	Venus    PlanetType = "venus"
)

// Celestial is a star, planet or moon. Bodies with an orbit are moved by the
// orbit formula, never by integration.
type Celestial struct {
	Body
	Name       string
	BodyMass   float64
	PlanetType PlanetType
	HasRings   bool
	Orbit      *physics.Orbit
}

// Mass returns the body's gravitating mass
func (c *Celestial) Mass() float64 { return c.BodyMass }

// Attractor returns the body as a gravity source
func (c *Celestial) Attractor() physics.Attractor {
	return physics.Attractor{ID: string(c.ID), Position: c.Position, Radius: c.Radius, Mass: c.BodyMass}
}

// Orbits reports whether the body orbits the given parent
func (c *Celestial) Orbits(parent ID) bool {
	return c.Orbit != nil && c.Orbit.ParentID == string(parent)
}

// Station is a docking point with a shop and a mission board
type Station struct {
	Body
	Name string
}

// InReach reports whether a point is close enough to interact with the station
func (s *Station) InReach(p physics.Vector2D) bool {
	return s.Position.Distance(p) < s.Radius+StationReach
}

// Gate is the hyperspace gate that opens the star map
type Gate struct {
	Body
}
