// pkg/entity/ship_test.go
package entity

import (
	"math"
	"testing"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

func TestNewShip(t *testing.T) {
	pos := physics.Vector2D{X: 5800, Y: 4000}
	vel := physics.Vector2D{X: 0, Y: -1}
	ship := NewShip(pos, vel)

	if ship.ID != PlayerShipID {
		t.Errorf("ID = %q, want %q", ship.ID, PlayerShipID)
	}
	if ship.Position != pos || ship.Velocity != vel {
		t.Errorf("unexpected kinematics %+v", ship.Body)
	}
	if ship.Health != ShipMaxHealth || ship.Ammo != ShipMaxAmmo {
		t.Errorf("health/ammo = %v/%v", ship.Health, ship.Ammo)
	}
	if ship.Dollars != 100 || ship.Missiles != 0 || ship.Crystals != 0 {
		t.Errorf("unexpected purse %d/%d/%d", ship.Dollars, ship.Missiles, ship.Crystals)
	}
	if ship.Invulnerable != ShipInvulnerableFrames {
		t.Errorf("Invulnerable = %d", ship.Invulnerable)
	}
	if ship.Angle != -math.Pi/2 {
		t.Errorf("Angle = %v", ship.Angle)
	}
	if ship.Upgrades != BaseLevels() {
		t.Errorf("Upgrades = %+v", ship.Upgrades)
	}
}

func TestShip_CanFire(t *testing.T) {
	cooldownMs := ProjectileCooldown * FrameMs

	tests := []struct {
		name     string
		ammo     float64
		lastShot float64
		now      float64
		expected bool
	}{
		{"first_shot", 20, math.Inf(-1), 0, true},
		{"cooling_down", 20, 1000, 1000 + cooldownMs - 1, false},
		{"cooled_down", 20, 1000, 1000 + cooldownMs + 1, true},
		{"fractional_ammo_below_one", 0.99, math.Inf(-1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(physics.Vector2D{}, physics.Vector2D{})
			ship.Ammo = tt.ammo
			ship.LastShot = tt.lastShot
			if got := ship.CanFire(tt.now); got != tt.expected {
				t.Errorf("CanFire() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestShip_DerivedStatsFollowLevels(t *testing.T) {
	ship := NewShip(physics.Vector2D{}, physics.Vector2D{})
	before := ship.ThrustPower()
	ship.Upgrades = ship.Upgrades.Raise(UpgradeEngine)
	if ship.ThrustPower() <= before {
		t.Error("engine upgrade should raise thrust immediately")
	}
	if ship.TurnSpeed() <= ShipTurnSpeed {
		t.Error("engine upgrade should raise turn speed immediately")
	}
}

func TestShip_Muzzle(t *testing.T) {
	ship := NewShip(physics.Vector2D{X: 100, Y: 100}, physics.Vector2D{})
	ship.Angle = 0
	want := physics.Vector2D{X: 100 + ShipRadius + 1, Y: 100}
	if got := ship.Muzzle(); math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Muzzle() = %v, want %v", got, want)
	}
}
