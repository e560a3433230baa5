// pkg/engine/control.go
package engine

import (
	"math"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

var shipFlight = physics.FlightModel{
	ManualBrake: entity.ShipManualBrake,
	AutoBrake:   entity.ShipAutoBrake,
	Damping:     entity.ShipDamping,
	StopSpeed:   entity.ShipStopSpeed,
}

// Missiles lock onto targets within twice the pirate attack range. Hostiles
// thrust once the ship is inside their extended detection range.
const (
	missileLockRange = entity.PirateAttackRange * 2
	pursuitRange     = entity.PirateDetectionRange * 1.5
)

// steerShip applies the held keys to the ship. Stats come from the current
// upgrade levels every tick.
func (t *tick) steerShip(in Input) {
	ship := &t.s.Ship
	ship.Thrusting = false

	if in.Thrust {
		ship.Velocity = physics.Thrust(ship.Velocity, ship.Angle, ship.ThrustPower())
		ship.Thrusting = true
	}
	if in.Brake {
		ship.Velocity = shipFlight.Brake(ship.Velocity)
	}
	if in.TurnLeft {
		ship.Angle -= ship.TurnSpeed()
	}
	if in.TurnRight {
		ship.Angle += ship.TurnSpeed()
	}

	if in.Fire && ship.CanFire(t.now) {
		t.fireCannon()
	}
	if in.Missile && ship.Missiles > 0 {
		t.launchMissile()
	}
}

func (t *tick) fireCannon() {
	ship := &t.s.Ship
	muzzle := ship.Muzzle()
	p := entity.NewPlayerProjectile(t.s.newID("proj"), muzzle, ship.Velocity, ship.Angle)
	t.s.Projectiles = append(t.s.Projectiles, p)
	ship.Ammo--
	ship.LastShot = t.now
	t.emit(event.ShotFired, muzzle)
}

// launchMissile fires at the nearest target in range. Without a target the
// missile stays in the rack and the key stays held.
func (t *tick) launchMissile() {
	ship := &t.s.Ship
	target := t.s.nearestTarget(ship.Position, missileLockRange)
	if target == entity.NoID {
		return
	}
	m := entity.NewMissile(t.s.newID("hm"), ship.Position, ship.Velocity, target)
	t.s.Missiles = append(t.s.Missiles, m)
	ship.Missiles--
	t.emit(event.MissileLaunched, ship.Position)
}

// runAI turns every hostile toward the ship, thrusts when the ship is near
// and fires when it is close and roughly ahead
func (t *tick) runAI() {
	target := t.s.Ship.Position

	for i := range t.s.Hostiles {
		h := &t.s.Hostiles[i]
		dist := h.Position.Distance(target)

		var diff float64
		h.Angle, diff = physics.TurnToward(h.Angle, physics.Bearing(h.Position, target), entity.PirateTurnSpeed)

		if dist >= pursuitRange {
			h.AI = entity.AIIdle
			continue
		}
		h.AI = entity.AIHunting
		h.Velocity = physics.Thrust(h.Velocity, h.Angle, entity.PirateThrust)

		if dist < entity.PirateAttackRange {
			h.AI = entity.AIAttacking
			if math.Abs(diff) < entity.PirateFireTolerance && h.CanFire(t.now) {
				p := entity.NewEnemyProjectile(t.s.newID("eproj"), h.Muzzle(), h.Velocity, h.Angle)
				t.s.Projectiles = append(t.s.Projectiles, p)
				h.LastShot = t.now
			}
		}
	}
}

// spawnPirates trickles pirates in from the world edges while the system is
// below its threat level
func (t *tick) spawnPirates() {
	level := t.s.Level
	if t.s.pirateCount() >= level || t.rng.Float64() >= t.s.PirateSpawnRate*float64(level) {
		return
	}
	pirate := entity.NewPirate(t.s.newID("pirate"), edgePoint(t.rng, 0))
	t.s.Hostiles = append(t.s.Hostiles, pirate)
}

// guideMissiles steers locked missiles. A missile whose target is gone
// loses its lock and flies on.
func (t *tick) guideMissiles() {
	for i := range t.s.Missiles {
		m := &t.s.Missiles[i]
		if !m.Locked() {
			continue
		}
		aim, ok := t.s.targetPosition(m.TargetID)
		if !ok {
			m.TargetID = entity.NoID
			continue
		}
		m.Steer(aim)
	}
}
