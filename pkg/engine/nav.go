// pkg/engine/nav.go
package engine

import (
	"math"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// WaypointKind says what the navigation arrow points at
type WaypointKind int

const (
	WaypointStation WaypointKind = iota
	WaypointGate
	WaypointTarget
	WaypointAsteroid
	WaypointStar
)

// String returns the waypoint kind's name
func (k WaypointKind) String() string {
	switch k {
	case WaypointStation:
		return "station"
	case WaypointGate:
		return "gate"
	case WaypointTarget:
		return "target"
	case WaypointAsteroid:
		return "asteroid"
	case WaypointStar:
		return "star"
	default:
		return "unknown"
	}
}

// Waypoint is a point of interest for the HUD arrow
type Waypoint struct {
	Kind     WaypointKind
	ID       entity.ID
	Position physics.Vector2D
}

// NavTarget picks what the navigation arrow should point at. The current
// mission decides first; without one the arrow leads home to the station
// or, in systems without one, to the gate.
func NavTarget(s *State) (Waypoint, bool) {
	if s.Mode == ModeGameOver {
		return Waypoint{}, false
	}

	if m := s.Mission; m.Active() {
		switch m.Objective.Kind {
		case entity.ObjectiveHunt:
			if m.Objective.TargetSystem == s.SystemID {
				for i := range s.Hostiles {
					if h := &s.Hostiles[i]; h.ID == m.Objective.TargetID {
						return Waypoint{Kind: WaypointTarget, ID: h.ID, Position: h.Position}, true
					}
				}
				return Waypoint{}, false
			}
			return gateWaypoint(s)
		case entity.ObjectiveCollect:
			if st := s.Station; st != nil && m.Objective.Collected >= m.Objective.Amount {
				return Waypoint{Kind: WaypointStation, ID: st.ID, Position: st.Position}, true
			}
			return nearestAsteroid(s)
		}
	}
	return stationOrGate(s)
}

// StarMarker locates the system's star for the secondary HUD marker
func StarMarker(s *State) (Waypoint, bool) {
	if s.Mode == ModeGameOver {
		return Waypoint{}, false
	}
	return Waypoint{Kind: WaypointStar, ID: s.Star.ID, Position: s.Star.Position}, true
}

func stationOrGate(s *State) (Waypoint, bool) {
	if st := s.Station; st != nil {
		return Waypoint{Kind: WaypointStation, ID: st.ID, Position: st.Position}, true
	}
	return gateWaypoint(s)
}

func gateWaypoint(s *State) (Waypoint, bool) {
	if g := s.Gate; g != nil {
		return Waypoint{Kind: WaypointGate, ID: g.ID, Position: g.Position}, true
	}
	return Waypoint{}, false
}

func nearestAsteroid(s *State) (Waypoint, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range s.Asteroids {
		if d := s.Ship.Position.Distance(s.Asteroids[i].Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Waypoint{}, false
	}
	a := &s.Asteroids[best]
	return Waypoint{Kind: WaypointAsteroid, ID: a.ID, Position: a.Position}, true
}
