// pkg/engine/state.go
package engine

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
	"github.com/infiniti1985/space-drifter/pkg/sector"
)

// Mode is the session's top-level state. Every mode except ModeFlying
// suspends the simulation.
type Mode int

const (
	ModeSplash Mode = iota
	ModeFlying
	ModeJumping
	ModeStation
	ModeStarMap
	ModeGameOver
)

// String returns the mode's name
func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModeFlying:
		return "flying"
	case ModeJumping:
		return "jumping"
	case ModeStation:
		return "station"
	case ModeStarMap:
		return "star_map"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one discrete snapshot of the world. Step never mutates a State it
// is given; it returns a new one with freshly allocated collections.
type State struct {
	SystemID string
	Level    int
	Mode     Mode

	Ship    entity.Ship
	Star    entity.Celestial
	Planets []entity.Celestial
	Station *entity.Station
	Gate    *entity.Gate

	Asteroids   []entity.Asteroid
	Hostiles    []entity.Hostile
	Projectiles []entity.Projectile
	Missiles    []entity.Missile
	Resources   []entity.Resource
	Pickups     []entity.MissilePickup
	Debris      []entity.Debris
	Explosions  []entity.Explosion

	Mission *entity.Mission

	// Gravity is the magnitude of the net gravitational force on the ship
	// during the last tick
	Gravity float64

	// GateArmed is cleared when the gate opens the star map and set again
	// once the ship is no longer touching the gate
	GateArmed bool

	// PirateSpawnRate is the per-tick spawn chance per threat level
	PirateSpawnRate float64

	NextID uint64
}

// Suspended reports whether Step leaves the state untouched
func (s *State) Suspended() bool {
	return s.Mode != ModeFlying
}

// Running reports whether the session has started and not ended
func (s *State) Running() bool {
	return s.Mode != ModeSplash && s.Mode != ModeGameOver
}

// NewState builds the state for entering a sector with the given ship. The
// ship is placed on the system's spawn orbit.
func NewState(systemID string, level int, content sector.Content, ship entity.Ship, spawnRate float64) State {
	ship.Position, ship.Velocity = SpawnOrbit(systemID, content.Star)
	return State{
		SystemID:        systemID,
		Level:           level,
		Mode:            ModeSplash,
		Ship:            ship,
		Star:            content.Star,
		Planets:         content.Planets,
		Station:         content.Station,
		Gate:            content.Gate,
		Asteroids:       content.Asteroids,
		GateArmed:       true,
		PirateSpawnRate: spawnRate,
	}
}

// SpawnOrbit returns the ship's arrival position and velocity: a circular
// orbit to the right of the star, moving up the screen
func SpawnOrbit(systemID string, star entity.Celestial) (physics.Vector2D, physics.Vector2D) {
	r := entity.SectorSpawnOrbit
	if systemID == sector.SolID {
		r = entity.SolSpawnOrbit
	}
	pos := star.Position.Add(physics.Vector2D{X: r})
	vel := physics.Vector2D{Y: -math.Sqrt(physics.GravitationalConstant * star.BodyMass / r)}
	return pos, vel
}

// clone returns a copy whose collections and mission can be mutated
// without affecting s
func (s *State) clone() State {
	c := *s
	c.Planets = slices.Clone(s.Planets)
	c.Asteroids = slices.Clone(s.Asteroids)
	c.Hostiles = slices.Clone(s.Hostiles)
	c.Projectiles = slices.Clone(s.Projectiles)
	c.Missiles = slices.Clone(s.Missiles)
	c.Resources = slices.Clone(s.Resources)
	c.Pickups = slices.Clone(s.Pickups)
	c.Debris = slices.Clone(s.Debris)
	c.Explosions = slices.Clone(s.Explosions)
	c.Mission = s.Mission.Clone()
	return c
}

// newID returns the next identifier with the given prefix
func (s *State) newID(prefix string) entity.ID {
	s.NextID++
	return entity.NewID(prefix, s.NextID)
}

// attractors returns the star and every planet as gravity sources
func (s *State) attractors() []physics.Attractor {
	out := make([]physics.Attractor, 0, len(s.Planets)+1)
	out = append(out, s.Star.Attractor())
	for i := range s.Planets {
		out = append(out, s.Planets[i].Attractor())
	}
	return out
}

// pirateCount counts hostiles that are not mission targets
func (s *State) pirateCount() int {
	n := 0
	for i := range s.Hostiles {
		if s.Hostiles[i].Kind == entity.Pirate {
			n++
		}
	}
	return n
}

// targetPosition finds a lockable target by id
func (s *State) targetPosition(id entity.ID) (physics.Vector2D, bool) {
	for i := range s.Asteroids {
		if s.Asteroids[i].ID == id {
			return s.Asteroids[i].Position, true
		}
	}
	for i := range s.Hostiles {
		if s.Hostiles[i].ID == id {
			return s.Hostiles[i].Position, true
		}
	}
	return physics.Vector2D{}, false
}

// hasHostile reports whether a hostile with the id is alive
func (s *State) hasHostile(id entity.ID) bool {
	return slices.ContainsFunc(s.Hostiles, func(h entity.Hostile) bool { return h.ID == id })
}

// nearestTarget returns the closest hostile or asteroid strictly within
// maxRange of p, or NoID
func (s *State) nearestTarget(p physics.Vector2D, maxRange float64) entity.ID {
	best := entity.NoID
	bestDist := math.Inf(1)
	consider := func(id entity.ID, pos physics.Vector2D) {
		d := p.Distance(pos)
		if d < bestDist && d < maxRange {
			best, bestDist = id, d
		}
	}
	for i := range s.Hostiles {
		consider(s.Hostiles[i].ID, s.Hostiles[i].Position)
	}
	for i := range s.Asteroids {
		consider(s.Asteroids[i].ID, s.Asteroids[i].Position)
	}
	return best
}

// edgePoint picks a random point on one of the four world edges, inset by
// the given margin
func edgePoint(rng *rand.Rand, inset float64) physics.Vector2D {
	edge := rng.IntN(4)
	along := rng.Float64() * entity.WorldSize
	switch edge {
	case 0:
		return physics.Vector2D{X: along, Y: inset}
	case 1:
		return physics.Vector2D{X: along, Y: entity.WorldSize - inset}
	case 2:
		return physics.Vector2D{X: inset, Y: along}
	default:
		return physics.Vector2D{X: entity.WorldSize - inset, Y: along}
	}
}
