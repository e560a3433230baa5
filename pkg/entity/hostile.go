// pkg/entity/hostile.go
package entity

import "github.com/infiniti1985/space-drifter/pkg/physics"

// HostileKind distinguishes roaming pirates from named mission targets.
// Both follow the same AI rules.
type HostileKind int

const (
	Pirate HostileKind = iota
	MissionTarget
)

// String returns the kind's name
func (k HostileKind) String() string {
	switch k {
	case Pirate:
		return "pirate"
	case MissionTarget:
		return "mission_target"
	default:
		return "unknown"
	}
}

// AIState is the hostile's current behavior
type AIState int

const (
	AIIdle AIState = iota
	AIHunting
	AIAttacking
)

// Hostile is a pirate or mission target
type Hostile struct {
	Body
	Kind     HostileKind
	Name     string
	Angle    float64
	Health   float64
	AI       AIState
	LastShot float64
}

// NewPirate creates a pirate at rest
func NewPirate(id ID, position physics.Vector2D) Hostile {
	return Hostile{
		Body:   Body{ID: id, Position: position, Radius: PirateRadius},
		Kind:   Pirate,
		Health: PirateHealth,
		AI:     AIHunting,
	}
}

// NewMissionTarget creates a named bounty. It is tougher and slightly larger
// than a pirate.
func NewMissionTarget(id ID, name string, position physics.Vector2D) Hostile {
	return Hostile{
		Body:   Body{ID: id, Position: position, Radius: MissionTargetRadius},
		Kind:   MissionTarget,
		Name:   name,
		Health: MissionTargetHealth,
		AI:     AIHunting,
	}
}

// Mass implements Movable
func (h *Hostile) Mass() float64 { return ShipMass }

// Damage implements Target
func (h *Hostile) Damage(amount float64) bool {
	h.Health -= amount
	return h.Health <= 0
}

// Muzzle returns the spawn point for the hostile's shots
func (h *Hostile) Muzzle() physics.Vector2D {
	return h.Position.Add(physics.FromAngle(h.Angle, h.Radius+1))
}

// CanFire reports whether the hostile's cannon has cooled down at now (ms)
func (h *Hostile) CanFire(now float64) bool {
	return now-h.LastShot > PirateCooldown*FrameMs
}
