// pkg/render/hud.go
package render

import (
	"fmt"
	"math"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// Gauge thresholds, as fractions of the full gravity gauge
const (
	GravityWarnLevel   = 0.5
	GravityDangerLevel = 0.8
	DefaultRadarRange  = 3000.0
)

// GravityBand colors the gravity gauge
type GravityBand int

const (
	GravityCalm GravityBand = iota
	GravityWarn
	GravityDanger
)

// String returns the band name
func (b GravityBand) String() string {
	switch b {
	case GravityWarn:
		return "warn"
	case GravityDanger:
		return "danger"
	default:
		return "calm"
	}
}

// BlipKind classifies a radar contact
type BlipKind int

const (
	BlipAsteroid BlipKind = iota
	BlipPirate
	BlipTarget
	BlipPlanet
	BlipStation
	BlipGate
	BlipResource
)

// Blip is a radar contact relative to the ship
type Blip struct {
	Kind   BlipKind
	ID     entity.ID
	Offset physics.Vector2D
}

// HUD holds every value the heads-up display shows, derived from a state
type HUD struct {
	SystemID string
	Level    int
	Mode     engine.Mode

	Health      float64 // fraction of max health
	Ammo        float64 // fraction of max ammo
	Gravity     float64 // gauge fill in [0, 1]
	GravityBand GravityBand

	Crystals int
	Dollars  int
	Missiles int

	JumpReady      bool
	StationInRange bool
	Invulnerable   bool

	Nav         engine.Waypoint
	HasNav      bool
	NavBearing  float64
	NavDistance float64

	Star    engine.Waypoint
	HasStar bool

	Mission string
	Blips   []Blip
}

// NewHUD derives the display values from a state
func NewHUD(s *engine.State, radarRange float64) HUD {
	ship := &s.Ship
	gauge := math.Min(1, s.Gravity/entity.MaxGravityForHUD)

	h := HUD{
		SystemID:     s.SystemID,
		Level:        s.Level,
		Mode:         s.Mode,
		Health:       fraction(ship.Health, ship.MaxHealth()),
		Ammo:         fraction(ship.Ammo, ship.MaxAmmo()),
		Gravity:      gauge,
		GravityBand:  bandFor(gauge),
		Crystals:     ship.Crystals,
		Dollars:      ship.Dollars,
		Missiles:     ship.Missiles,
		JumpReady:    ship.Crystals >= entity.HyperjumpCost,
		Invulnerable: ship.IsInvulnerable(),
		Mission:      MissionSummary(s.Mission),
		Blips:        Radar(s, radarRange),
	}
	if st := s.Station; st != nil {
		h.StationInRange = st.InReach(ship.Position)
	}
	if wp, ok := engine.NavTarget(s); ok {
		h.Nav, h.HasNav = wp, true
		h.NavBearing = physics.Bearing(ship.Position, wp.Position)
		h.NavDistance = ship.Position.Distance(wp.Position)
	}
	h.Star, h.HasStar = engine.StarMarker(s)
	return h
}

func fraction(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, v/max))
}

func bandFor(gauge float64) GravityBand {
	switch {
	case gauge > GravityDangerLevel:
		return GravityDanger
	case gauge > GravityWarnLevel:
		return GravityWarn
	default:
		return GravityCalm
	}
}

// MissionSummary renders the mission line of the HUD
func MissionSummary(m *entity.Mission) string {
	if m == nil {
		return ""
	}
	switch {
	case m.Status == entity.MissionCompleted:
		return fmt.Sprintf("%s: complete", m.Title)
	case m.Objective.Kind == entity.ObjectiveCollect:
		return fmt.Sprintf("%s: %d/%d", m.Title, m.Objective.Collected, m.Objective.Amount)
	case m.Objective.Kind == entity.ObjectiveHunt:
		return fmt.Sprintf("%s: %s", m.Title, m.Objective.TargetSystem)
	default:
		return m.Title
	}
}

// Radar returns the contacts within radarRange of the ship
func Radar(s *engine.State, radarRange float64) []Blip {
	if radarRange <= 0 {
		return nil
	}
	center := s.Ship.Position
	qt := physics.NewQuadTree[Blip](physics.Rect{Center: center, Width: radarRange * 2, Height: radarRange * 2}, 8)
	add := func(kind BlipKind, id entity.ID, pos physics.Vector2D) {
		qt.Insert(pos, Blip{Kind: kind, ID: id, Offset: pos.Sub(center)})
	}

	for i := range s.Planets {
		add(BlipPlanet, s.Planets[i].ID, s.Planets[i].Position)
	}
	if st := s.Station; st != nil {
		add(BlipStation, st.ID, st.Position)
	}
	if g := s.Gate; g != nil {
		add(BlipGate, g.ID, g.Position)
	}
	for i := range s.Asteroids {
		add(BlipAsteroid, s.Asteroids[i].ID, s.Asteroids[i].Position)
	}
	for i := range s.Hostiles {
		kind := BlipPirate
		if s.Hostiles[i].Kind == entity.MissionTarget {
			kind = BlipTarget
		}
		add(kind, s.Hostiles[i].ID, s.Hostiles[i].Position)
	}
	for i := range s.Resources {
		add(BlipResource, s.Resources[i].ID, s.Resources[i].Position)
	}
	return qt.QueryRadius(center, radarRange)
}
