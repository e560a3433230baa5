// pkg/engine/step.go
package engine

import (
	"math/rand/v2"

	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// tick is the scratch space for one Step. It owns the new state and collects
// the effects the phases emit.
type tick struct {
	s       *State
	now     float64
	rng     *rand.Rand
	effects []event.Effect
}

func (t *tick) emit(typ event.Type, pos physics.Vector2D) {
	t.effects = append(t.effects, event.Effect{Type: typ, Position: pos})
}

// Step advances the world by one frame. now is the session clock in
// milliseconds and drives weapon cooldowns; rng supplies every random draw.
//
// While the state is suspended (splash, jumping, station menu, star map or
// game over) prev is returned unchanged with no effects. Otherwise the
// phases run in a fixed order: orbits, ship controls, hostile AI, pirate
// spawning, missile guidance, gravity and integration, ammo and
// invulnerability upkeep, combat, gate, pickups, game-over check and expiry.
func Step(prev State, in Input, now float64, rng *rand.Rand) (State, []event.Effect) {
	if prev.Suspended() {
		return prev, nil
	}

	next := prev.clone()
	t := &tick{s: &next, now: now, rng: rng}

	t.advanceOrbits()
	t.steerShip(in)
	t.runAI()
	t.spawnPirates()
	t.guideMissiles()
	t.integrate()
	t.upkeep()
	t.resolveCombat()
	t.checkGate()
	t.collectPickups()
	t.checkGameOver()
	t.expire()

	return next, t.effects
}
