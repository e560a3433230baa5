// pkg/entity/munitions.go
package entity

import "github.com/infiniti1985/space-drifter/pkg/physics"

// Projectile is a straight-flying cannon round
type Projectile struct {
	Body
	Hostile bool // fired by a pirate or mission target
	Life    int
}

// NewPlayerProjectile fires from the muzzle along angle, inheriting the
// shooter's velocity
func NewPlayerProjectile(id ID, muzzle, shooterVel physics.Vector2D, angle float64) Projectile {
	return Projectile{
		Body: Body{
			ID:       id,
			Position: muzzle,
			Velocity: shooterVel.Add(physics.FromAngle(angle, ProjectileSpeed)),
			Radius:   ProjectileRadius,
		},
		Life: ProjectileLifespan,
	}
}

// NewEnemyProjectile is the hostile variant: slower and larger
func NewEnemyProjectile(id ID, muzzle, shooterVel physics.Vector2D, angle float64) Projectile {
	return Projectile{
		Body: Body{
			ID:       id,
			Position: muzzle,
			Velocity: shooterVel.Add(physics.FromAngle(angle, PirateProjectileSpeed)),
			Radius:   EnemyProjectileRadius,
		},
		Hostile: true,
		Life:    ProjectileLifespan,
	}
}

// Mass implements Movable
func (p *Projectile) Mass() float64 { return ShipMass }

// Missile is a homing missile locked onto a target id. An empty TargetID
// means the lock was lost and the missile flies straight.
type Missile struct {
	Body
	Life     int
	TargetID ID
}

// NewMissile launches from position with the launcher's velocity
func NewMissile(id ID, position, velocity physics.Vector2D, target ID) Missile {
	return Missile{
		Body: Body{
			ID:       id,
			Position: position,
			Velocity: velocity,
			Radius:   MissileRadius,
		},
		Life:     MissileLifespan,
		TargetID: target,
	}
}

// Mass implements Movable
func (m *Missile) Mass() float64 { return ShipMass }

// Locked reports whether the missile still tracks a target
func (m *Missile) Locked() bool { return m.TargetID != NoID }

// Steer turns the missile toward aim by at most the missile turn rate and
// sets its velocity to the fixed homing speed along the new heading.
func (m *Missile) Steer(aim physics.Vector2D) {
	heading := m.Velocity.Angle()
	next, _ := physics.TurnToward(heading, physics.Bearing(m.Position, aim), MissileTurnSpeed)
	m.Velocity = physics.FromAngle(next, MissileSpeed)
}
