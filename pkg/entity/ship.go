// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// PlayerShipID is the singleton ship's identifier
const PlayerShipID ID = "player-ship"

// Ship is the player's vessel. It is never destroyed; health at or below
// zero ends the game instead.
type Ship struct {
	Body
	Angle        float64
	Health       float64
	Ammo         float64
	Crystals     int
	Dollars      int
	Missiles     int
	Thrusting    bool
	Invulnerable int
	Upgrades     Levels
	LastShot     float64 // ms timestamp of the last shot, -Inf before the first
}

// NewShip creates a ship with base upgrades at the given position
func NewShip(position, velocity physics.Vector2D) Ship {
	return Ship{
		Body: Body{
			ID:       PlayerShipID,
			Position: position,
			Velocity: velocity,
			Radius:   ShipRadius,
		},
		Angle:        -math.Pi / 2,
		Health:       ShipMaxHealth,
		Ammo:         ShipMaxAmmo,
		Dollars:      StartingDollars,
		Invulnerable: ShipInvulnerableFrames,
		Upgrades:     BaseLevels(),
		LastShot:     math.Inf(-1),
	}
}

// Mass implements Movable
func (s *Ship) Mass() float64 { return ShipMass }

// MaxHealth returns the hull-derived health cap
func (s *Ship) MaxHealth() float64 { return MaxHealthAt(s.Upgrades.Hull) }

// MaxAmmo returns the ammo capacity
func (s *Ship) MaxAmmo() float64 { return MaxAmmoAt(s.Upgrades.AmmoCap) }

// WeaponCooldown returns the cooldown between shots in frames
func (s *Ship) WeaponCooldown() float64 { return WeaponCooldownAt(s.Upgrades.Weapon) }

// ThrustPower returns the per-tick acceleration of the main drive
func (s *Ship) ThrustPower() float64 { return ThrustAt(s.Upgrades.Engine) }

// TurnSpeed returns the per-tick rotation in radians
func (s *Ship) TurnSpeed() float64 { return TurnSpeedAt(s.Upgrades.Engine) }

// MagnetRange returns the resource attraction radius
func (s *Ship) MagnetRange() float64 { return MagnetRangeAt(s.Upgrades.Magnet) }

// IsInvulnerable reports whether damage is currently suppressed
func (s *Ship) IsInvulnerable() bool { return s.Invulnerable > 0 }

// Muzzle returns the spawn point just ahead of the nose
func (s *Ship) Muzzle() physics.Vector2D {
	return s.Position.Add(physics.FromAngle(s.Angle, s.Radius+1))
}

// CanFire reports whether the cannon is loaded and cooled down at now (ms)
func (s *Ship) CanFire(now float64) bool {
	return s.Ammo >= 1 && now-s.LastShot > s.WeaponCooldown()*FrameMs
}

// TakeDamage subtracts damage from the hull
func (s *Ship) TakeDamage(amount float64) {
	s.Health -= amount
}

// Destroyed reports whether the hull has failed
func (s *Ship) Destroyed() bool { return s.Health <= 0 }

// CanAfford reports whether the ship carries at least the given dollars
func (s *Ship) CanAfford(cost int) bool { return s.Dollars >= cost }
