// pkg/entity/munitions_test.go
package entity

import (
	"math"
	"testing"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

func TestMissile_Steer(t *testing.T) {
	tests := []struct {
		name         string
		velocity     physics.Vector2D
		aim          physics.Vector2D
		expectedHead float64
	}{
		{"turn_is_capped", physics.Vector2D{X: 4, Y: 0}, physics.Vector2D{X: 0, Y: 100}, MissileTurnSpeed},
		{"snaps_when_nearly_aligned", physics.Vector2D{X: 4, Y: 0}, physics.Vector2D{X: 1000, Y: 10}, math.Atan2(10, 1000)},
		{"turns_clockwise", physics.Vector2D{X: 4, Y: 0}, physics.Vector2D{X: 0, Y: -100}, -MissileTurnSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMissile("hm-1", physics.Vector2D{}, tt.velocity, "asteroid-1")
			m.Steer(tt.aim)
			if math.Abs(m.Velocity.Angle()-tt.expectedHead) > 1e-9 {
				t.Errorf("heading = %v, want %v", m.Velocity.Angle(), tt.expectedHead)
			}
			if math.Abs(m.Velocity.Length()-MissileSpeed) > 1e-9 {
				t.Errorf("speed = %v, want %v", m.Velocity.Length(), MissileSpeed)
			}
		})
	}
}

func TestNewPlayerProjectile_InheritsShooterVelocity(t *testing.T) {
	p := NewPlayerProjectile("proj-1", physics.Vector2D{X: 13}, physics.Vector2D{X: 1, Y: 1}, 0)
	if p.Velocity != (physics.Vector2D{X: 1 + ProjectileSpeed, Y: 1}) {
		t.Errorf("Velocity = %v", p.Velocity)
	}
	if p.Hostile || p.Life != ProjectileLifespan || p.Radius != ProjectileRadius {
		t.Errorf("unexpected projectile %+v", p)
	}

	e := NewEnemyProjectile("eproj-1", physics.Vector2D{}, physics.Vector2D{}, math.Pi)
	if !e.Hostile || e.Radius != EnemyProjectileRadius {
		t.Errorf("unexpected enemy projectile %+v", e)
	}
}
