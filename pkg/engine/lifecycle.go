// pkg/engine/lifecycle.go
package engine

import (
	"slices"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
)

// checkGate opens the star map on the first tick the ship touches the gate.
// The latch re-arms once the ship has left it.
func (t *tick) checkGate() {
	s := t.s
	if s.Gate == nil {
		return
	}
	if !s.Ship.Overlaps(&s.Gate.Body) {
		s.GateArmed = true
		return
	}
	if s.GateArmed {
		s.GateArmed = false
		s.Mode = ModeStarMap
		t.emit(event.OpenStarMap, s.Gate.Position)
	}
}

// collectPickups scoops up every crystal and missile the ship touches. A
// crystal that fulfils a collection contract pays out immediately.
func (t *tick) collectPickups() {
	s := t.s
	ship := &s.Ship

	for i := len(s.Resources) - 1; i >= 0; i-- {
		if !ship.Overlaps(&s.Resources[i].Body) {
			continue
		}
		ship.Crystals++
		t.emit(event.Collected, ship.Position)
		s.Resources = slices.Delete(s.Resources, i, i+1)

		if s.Mission.RecordCollection() {
			s.Mission.Reward.Pay(ship)
			t.emit(event.MissionComplete, ship.Position)
		}
	}

	for i := len(s.Pickups) - 1; i >= 0; i-- {
		if !ship.Overlaps(&s.Pickups[i].Body) {
			continue
		}
		ship.Missiles++
		t.emit(event.Collected, ship.Position)
		s.Pickups = slices.Delete(s.Pickups, i, i+1)
	}
}

func (t *tick) checkGameOver() {
	if t.s.Ship.Destroyed() {
		t.s.Mode = ModeGameOver
		t.emit(event.Error, t.s.Ship.Position)
	}
}

// expire ages every timed entity by one tick and drops the spent ones.
// Debris is aged during integration.
func (t *tick) expire() {
	s := t.s
	s.Projectiles = age(s.Projectiles, func(p *entity.Projectile) *int { return &p.Life })
	s.Missiles = age(s.Missiles, func(m *entity.Missile) *int { return &m.Life })
	s.Explosions = age(s.Explosions, func(e *entity.Explosion) *int { return &e.Life })
	s.Debris = slices.DeleteFunc(s.Debris, func(d entity.Debris) bool { return d.Life <= 0 })
}

// age keeps the items whose life was positive before this tick and
// decrements their counter
func age[T any](items []T, life func(*T) *int) []T {
	out := items[:0]
	for i := range items {
		l := life(&items[i])
		alive := *l > 0
		*l--
		if alive {
			out = append(out, items[i])
		}
	}
	clear(items[len(out):])
	return out
}
