// pkg/engine/collision.go
package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// resolveCombat runs the weapon passes and then the ship's contacts. Later
// passes see the destructions of earlier ones.
func (t *tick) resolveCombat() {
	t.projectileHits()
	t.missileHits()
	t.shipContacts()
}

// projectileHits tests each projectile against asteroids, then hostiles.
// The first overlap consumes the projectile. Only the player's rounds deal
// damage; hostile rounds are simply absorbed.
func (t *tick) projectileHits() {
	s := t.s
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		if t.projectileStrikesAsteroid(&p) || t.projectileStrikesHostile(&p) {
			s.Projectiles = slices.Delete(s.Projectiles, i, i+1)
		}
	}
}

func (t *tick) projectileStrikesAsteroid(p *entity.Projectile) bool {
	s := t.s
	for j := len(s.Asteroids) - 1; j >= 0; j-- {
		a := &s.Asteroids[j]
		if !p.Overlaps(&a.Body) {
			continue
		}
		if !p.Hostile && a.Damage(entity.ProjectileDamage) {
			t.destroyAsteroid(j)
		}
		return true
	}
	return false
}

func (t *tick) projectileStrikesHostile(p *entity.Projectile) bool {
	s := t.s
	for j := len(s.Hostiles) - 1; j >= 0; j-- {
		h := &s.Hostiles[j]
		if !p.Overlaps(&h.Body) {
			continue
		}
		if !p.Hostile && h.Damage(entity.ProjectileDamage) {
			t.destroyHostile(j, h.Radius*2, true)
		}
		return true
	}
	return false
}

// missileHits tests each missile against every hostile and asteroid. A
// missile detonates on whatever it touches first, locked target or not.
func (t *tick) missileHits() {
	s := t.s
	for i := len(s.Missiles) - 1; i >= 0; i-- {
		m := s.Missiles[i]
		if t.missileStrikes(&m) {
			s.Missiles = slices.Delete(s.Missiles, i, i+1)
		}
	}
}

func (t *tick) missileStrikes(m *entity.Missile) bool {
	s := t.s
	for j := len(s.Hostiles) - 1; j >= 0; j-- {
		h := &s.Hostiles[j]
		if !m.Overlaps(&h.Body) {
			continue
		}
		if h.Damage(entity.MissileDamage) {
			t.destroyHostile(j, h.Radius*1.5, false)
		}
		return true
	}
	for j := len(s.Asteroids) - 1; j >= 0; j-- {
		a := &s.Asteroids[j]
		if !m.Overlaps(&a.Body) {
			continue
		}
		if a.Damage(entity.MissileDamage) {
			t.destroyAsteroid(j)
		}
		return true
	}
	return false
}

// shipContacts damages the ship for everything it touches while it is not
// invulnerable. Any contact restarts the invulnerability window.
func (t *tick) shipContacts() {
	s := t.s
	ship := &s.Ship
	if ship.IsInvulnerable() {
		return
	}

	hit := false
	contact := func(other *entity.Body, damage float64, bounce bool) {
		if !ship.Overlaps(other) {
			return
		}
		ship.TakeDamage(damage)
		t.emit(event.Hit, ship.Position)
		hit = true
		if bounce {
			ship.Velocity = ship.Position.Sub(other.Position).Normalize().Scale(entity.ContactBounceSpeed)
		}
	}

	for i := range s.Asteroids {
		contact(&s.Asteroids[i].Body, entity.AsteroidContactDamage, true)
	}
	contact(&s.Star.Body, entity.CelestialContactDamage, false)
	for i := range s.Planets {
		contact(&s.Planets[i].Body, entity.CelestialContactDamage, false)
	}
	for i := range s.Hostiles {
		contact(&s.Hostiles[i].Body, entity.HostileContactDamage, true)
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if !p.Hostile || !ship.Overlaps(&p.Body) {
			continue
		}
		ship.TakeDamage(entity.EnemyProjectileDamage)
		t.emit(event.Hit, ship.Position)
		p.Life = 0
		hit = true
	}

	if hit {
		ship.Invulnerable = entity.ShipInvulnerableFrames
	}
}

// destroyAsteroid replaces the asteroid at index j with an explosion, a
// spray of debris and possibly a crystal
func (t *tick) destroyAsteroid(j int) {
	s := t.s
	a := s.Asteroids[j]

	rich := t.rng.Float64() < entity.CrystalDropChance
	kind := entity.ExplosionDud
	if rich {
		kind = entity.ExplosionRich
	}
	t.explode(a.Position, a.Radius, kind)

	fragments := int(math.Floor(a.Radius/4)) + 3
	for k := range fragments {
		angle := t.rng.Float64() * 2 * math.Pi
		speed := t.rng.Float64()*2 + 1
		radius := t.rng.Float64()*4 + 2
		life := 60 + int(t.rng.Float64()*60)
		rotation := t.rng.Float64() * 2 * math.Pi
		spin := t.rng.Float64()*0.1 - 0.05

		s.Debris = append(s.Debris, entity.Debris{
			Body: entity.Body{
				ID:       entity.ID(fmt.Sprintf("deb-%s-%d", a.ID, k)),
				Position: a.Position,
				Velocity: a.Velocity.Add(physics.FromAngle(angle, speed)),
				Radius:   radius,
			},
			Life:          life,
			Rotation:      rotation,
			RotationSpeed: spin,
		})
	}

	if rich {
		s.Resources = append(s.Resources, entity.Resource{Body: entity.Body{
			ID:       "res-" + a.ID,
			Position: a.Position,
			Velocity: a.Velocity,
			Radius:   entity.ResourceRadius,
		}})
	}

	s.Asteroids = slices.Delete(s.Asteroids, j, j+1)
}

// destroyHostile removes the hostile at index j. Pirates shot down by the
// cannon drop a missile; a hunted target completes its mission.
func (t *tick) destroyHostile(j int, blast float64, dropPickup bool) {
	s := t.s
	h := s.Hostiles[j]

	t.explode(h.Position, blast, entity.ExplosionRich)
	switch h.Kind {
	case entity.Pirate:
		if dropPickup {
			s.Pickups = append(s.Pickups, entity.MissilePickup{Body: entity.Body{
				ID:       "hm-pickup-" + h.ID,
				Position: h.Position,
				Velocity: h.Velocity,
				Radius:   entity.MissilePickupRadius,
			}})
		}
	case entity.MissionTarget:
		t.completeHunt(h.ID)
	}

	s.Hostiles = slices.Delete(s.Hostiles, j, j+1)
}

func (t *tick) completeHunt(target entity.ID) {
	s := t.s
	if s.Mission.Hunts(target) && s.Mission.Complete() {
		s.Mission.Reward.Pay(&s.Ship)
		t.emit(event.MissionComplete, s.Ship.Position)
	}
}

func (t *tick) explode(pos physics.Vector2D, radius float64, kind entity.ExplosionKind) {
	t.s.Explosions = append(t.s.Explosions, entity.Explosion{
		ID:       t.s.newID("expl"),
		Position: pos,
		Radius:   radius,
		Life:     entity.ExplosionLife,
		Kind:     kind,
	})
	t.emit(event.Explosion, pos)
}
