// pkg/engine/step_test.go
package engine

import (
	"math"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

const tolerance = 1e-9

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 7))
}

// quietState is a flying state with a massless star far from the ship, so
// nothing moves unless a test puts it in motion.
func quietState() State {
	ship := entity.NewShip(physics.Vector2D{X: 1000, Y: 1000}, physics.Vector2D{})
	ship.Invulnerable = 0
	return State{
		SystemID: "test",
		Level:    1,
		Mode:     ModeFlying,
		Ship:     ship,
		Star: entity.Celestial{
			Body: entity.Body{ID: "star-test", Position: physics.Vector2D{X: 6000, Y: 6000}, Radius: 100},
		},
		GateArmed: true,
	}
}

func asteroidAt(id entity.ID, pos physics.Vector2D, radius, health float64) entity.Asteroid {
	return entity.Asteroid{
		Body:     entity.Body{ID: id, Position: pos, Radius: radius},
		Health:   health,
		RockMass: 5,
	}
}

func hasEffect(effects []event.Effect, typ event.Type) bool {
	return slices.ContainsFunc(effects, func(e event.Effect) bool { return e.Type == typ })
}

func countEffects(effects []event.Effect, typ event.Type) int {
	n := 0
	for _, e := range effects {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestStepSuspendedModesAreNoOps(t *testing.T) {
	modes := []Mode{ModeSplash, ModeJumping, ModeStation, ModeStarMap, ModeGameOver}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			prev := quietState()
			prev.Mode = mode
			prev.Asteroids = []entity.Asteroid{asteroidAt("a", prev.Ship.Position, 10, 20)}

			next, effects := Step(prev, Input{Thrust: true, Fire: true}, 5000, newRand())

			if !reflect.DeepEqual(next, prev) {
				t.Errorf("state changed while %s", mode)
			}
			if len(effects) != 0 {
				t.Errorf("got %d effects, want none", len(effects))
			}
		})
	}
}

func TestStepGameOverIsIdempotent(t *testing.T) {
	s := quietState()
	s.Ship.Health = 5
	s.Asteroids = []entity.Asteroid{asteroidAt("rock", s.Ship.Position.Add(physics.Vector2D{X: 5}), 10, 20)}

	over, effects := Step(s, Input{}, 0, newRand())
	if over.Mode != ModeGameOver {
		t.Fatalf("mode = %s, want game_over", over.Mode)
	}
	if !hasEffect(effects, event.Error) {
		t.Error("expected an error effect on game over")
	}

	for i := 0; i < 3; i++ {
		again, effects := Step(over, Input{Thrust: true}, float64(i)*1000, newRand())
		if !reflect.DeepEqual(again, over) {
			t.Fatalf("tick %d changed a finished game", i)
		}
		if len(effects) != 0 {
			t.Fatalf("tick %d emitted effects after game over", i)
		}
	}
}

func TestStepDoesNotMutatePrevious(t *testing.T) {
	prev := quietState()
	prev.Asteroids = []entity.Asteroid{asteroidAt("rock", physics.Vector2D{X: 2000, Y: 2000}, 10, 10)}
	prev.Projectiles = []entity.Projectile{
		entity.NewPlayerProjectile("p", physics.Vector2D{X: 2000, Y: 2000}, physics.Vector2D{}, 0),
	}
	prev.Mission = &entity.Mission{
		ID:        "m",
		Objective: entity.Objective{Kind: entity.ObjectiveCollect, Amount: 3},
		Status:    entity.MissionInProgress,
	}
	prev.Resources = []entity.Resource{{Body: entity.Body{ID: "r", Position: prev.Ship.Position, Radius: 5}}}
	snapshot := prev.clone()

	Step(prev, Input{Thrust: true, TurnLeft: true, Fire: true}, 1000, newRand())

	if !reflect.DeepEqual(prev, snapshot) {
		t.Error("Step mutated its input state")
	}
}

func TestAsteroidDestroyedByOneHit(t *testing.T) {
	s := quietState()
	pos := physics.Vector2D{X: 2000, Y: 2000}
	s.Asteroids = []entity.Asteroid{asteroidAt("rock", pos, 10, entity.ProjectileDamage)}
	p := entity.NewPlayerProjectile("shot", pos, physics.Vector2D{}, 0)
	p.Velocity = physics.Vector2D{}
	s.Projectiles = []entity.Projectile{p}

	next, effects := Step(s, Input{}, 0, newRand())

	if len(next.Asteroids) != 0 {
		t.Fatalf("asteroid survived with %d left", len(next.Asteroids))
	}
	if len(next.Projectiles) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	if len(next.Explosions) != 1 {
		t.Fatalf("got %d explosions, want 1", len(next.Explosions))
	}
	if want := 10/4 + 3; len(next.Debris) != want {
		t.Errorf("got %d debris, want %d", len(next.Debris), want)
	}
	for _, d := range next.Debris {
		if d.Radius < 2 || d.Radius >= 6 {
			t.Errorf("debris %s radius %v out of range", d.ID, d.Radius)
		}
	}
	rich := next.Explosions[0].Kind == entity.ExplosionRich
	if rich != (len(next.Resources) == 1) {
		t.Errorf("rich explosion = %v but %d resources dropped", rich, len(next.Resources))
	}
	if !hasEffect(effects, event.Explosion) {
		t.Error("expected an explosion effect")
	}
}

func TestHostileProjectilesDoNotDamageAsteroids(t *testing.T) {
	s := quietState()
	pos := physics.Vector2D{X: 2000, Y: 2000}
	s.Asteroids = []entity.Asteroid{asteroidAt("rock", pos, 10, 10)}
	p := entity.NewEnemyProjectile("eshot", pos, physics.Vector2D{}, 0)
	p.Velocity = physics.Vector2D{}
	s.Projectiles = []entity.Projectile{p}

	next, _ := Step(s, Input{}, 0, newRand())

	if len(next.Asteroids) != 1 || next.Asteroids[0].Health != 10 {
		t.Errorf("asteroid damaged by a hostile round: %+v", next.Asteroids)
	}
	if len(next.Projectiles) != 0 {
		t.Error("hostile round should be absorbed by the asteroid")
	}
}

func TestPirateKillDropsMissilePickup(t *testing.T) {
	s := quietState()
	pos := physics.Vector2D{X: 5000, Y: 1000}
	pirate := entity.NewPirate("pirate-1", pos)
	pirate.Health = entity.ProjectileDamage
	s.Hostiles = []entity.Hostile{pirate}
	p := entity.NewPlayerProjectile("shot", pos, physics.Vector2D{}, 0)
	p.Velocity = physics.Vector2D{}
	s.Projectiles = []entity.Projectile{p}

	next, effects := Step(s, Input{}, 0, newRand())

	if len(next.Hostiles) != 0 {
		t.Fatal("pirate survived")
	}
	if len(next.Pickups) != 1 || next.Pickups[0].ID != "hm-pickup-pirate-1" {
		t.Fatalf("pickups = %+v", next.Pickups)
	}
	if got := next.Explosions[0].Radius; !approx(got, entity.PirateRadius*2) {
		t.Errorf("explosion radius = %v, want %v", got, entity.PirateRadius*2)
	}
	if !hasEffect(effects, event.Explosion) {
		t.Error("expected an explosion effect")
	}
}

func TestMissileKillCompletesHunt(t *testing.T) {
	s := quietState()
	pos := physics.Vector2D{X: 5000, Y: 1000}
	s.Hostiles = []entity.Hostile{entity.NewMissionTarget("bounty", "Widow", pos)}
	s.Missiles = []entity.Missile{entity.NewMissile("hm-1", pos, physics.Vector2D{}, "bounty")}
	s.Mission = &entity.Mission{
		ID:        "hunt",
		Objective: entity.Objective{Kind: entity.ObjectiveHunt, TargetID: "bounty", TargetSystem: "test"},
		Reward:    entity.Reward{Dollars: 250, Missiles: 2},
		Status:    entity.MissionInProgress,
	}

	next, effects := Step(s, Input{}, 0, newRand())

	if len(next.Hostiles) != 0 || len(next.Missiles) != 0 {
		t.Fatalf("hostiles=%d missiles=%d, want both empty", len(next.Hostiles), len(next.Missiles))
	}
	if next.Mission.Status != entity.MissionCompleted {
		t.Errorf("mission status = %s", next.Mission.Status)
	}
	if got, want := next.Ship.Dollars, entity.StartingDollars+250; got != want {
		t.Errorf("dollars = %d, want %d", got, want)
	}
	if next.Ship.Missiles != 2 {
		t.Errorf("missiles = %d, want 2", next.Ship.Missiles)
	}
	if len(next.Pickups) != 0 {
		t.Error("mission targets never drop pickups")
	}
	if got := next.Explosions[0].Radius; !approx(got, entity.MissionTargetRadius*1.5) {
		t.Errorf("explosion radius = %v", got)
	}
	if countEffects(effects, event.MissionComplete) != 1 {
		t.Error("expected exactly one mission complete effect")
	}
	if s.Mission.Status != entity.MissionInProgress {
		t.Error("previous state's mission was modified")
	}
}

func TestMissileLosesLockWhenTargetGone(t *testing.T) {
	s := quietState()
	m := entity.NewMissile("hm-1", physics.Vector2D{X: 3000, Y: 3000}, physics.Vector2D{X: 3}, "ghost")
	s.Missiles = []entity.Missile{m}

	next, _ := Step(s, Input{}, 0, newRand())
	if next.Missiles[0].Locked() {
		t.Fatal("missile kept its lock on a missing target")
	}

	// Later targets nearby must not be re-acquired.
	next.Asteroids = []entity.Asteroid{asteroidAt("rock", physics.Vector2D{X: 3100, Y: 3100}, 10, 20)}
	after, _ := Step(next, Input{}, 0, newRand())
	got := after.Missiles[0]
	if got.Locked() {
		t.Error("missile re-acquired a target")
	}
	if got.Velocity != (physics.Vector2D{X: 3}) {
		t.Errorf("velocity = %+v, want unchanged heading", got.Velocity)
	}
	if !approx(got.Position.X, 3006) || !approx(got.Position.Y, 3000) {
		t.Errorf("position = %+v", got.Position)
	}
}

func TestMissileSteersTowardTarget(t *testing.T) {
	s := quietState()
	s.Asteroids = []entity.Asteroid{asteroidAt("rock", physics.Vector2D{X: 3000, Y: 2000}, 10, 20)}
	s.Missiles = []entity.Missile{entity.NewMissile("hm-1", physics.Vector2D{X: 3000, Y: 3000}, physics.Vector2D{X: 4}, "rock")}

	next, _ := Step(s, Input{}, 0, newRand())

	m := next.Missiles[0]
	if !approx(m.Velocity.Length(), entity.MissileSpeed) {
		t.Errorf("speed = %v, want %v", m.Velocity.Length(), entity.MissileSpeed)
	}
	if !approx(m.Velocity.Angle(), -entity.MissileTurnSpeed) {
		t.Errorf("heading = %v, want %v", m.Velocity.Angle(), -entity.MissileTurnSpeed)
	}
}

func TestCollectMissionCompletesOnTenthPickup(t *testing.T) {
	s := quietState()
	s.Mission = &entity.Mission{
		ID:        "collect",
		Objective: entity.Objective{Kind: entity.ObjectiveCollect, Amount: 10},
		Reward:    entity.Reward{Dollars: 100, Missiles: 1},
		Status:    entity.MissionInProgress,
	}
	startDollars := s.Ship.Dollars

	for k := 1; k <= 10; k++ {
		s.Resources = []entity.Resource{{Body: entity.Body{
			ID:       entity.NewID("res", uint64(k)),
			Position: s.Ship.Position,
			Radius:   entity.ResourceRadius,
		}}}
		var effects []event.Effect
		s, effects = Step(s, Input{}, 0, newRand())

		if s.Ship.Crystals != k {
			t.Fatalf("pickup %d: crystals = %d", k, s.Ship.Crystals)
		}
		if k < 10 {
			if s.Mission.Status != entity.MissionInProgress || s.Ship.Dollars != startDollars {
				t.Fatalf("pickup %d: mission paid early", k)
			}
			if hasEffect(effects, event.MissionComplete) {
				t.Fatalf("pickup %d: early mission complete effect", k)
			}
			continue
		}
		if s.Mission.Status != entity.MissionCompleted {
			t.Fatalf("mission status = %s after the tenth pickup", s.Mission.Status)
		}
		if s.Ship.Dollars != startDollars+100 || s.Ship.Missiles != 1 {
			t.Errorf("dollars=%d missiles=%d", s.Ship.Dollars, s.Ship.Missiles)
		}
		if !hasEffect(effects, event.MissionComplete) {
			t.Error("expected a mission complete effect")
		}
	}

	s.Resources = []entity.Resource{{Body: entity.Body{ID: "res-extra", Position: s.Ship.Position, Radius: entity.ResourceRadius}}}
	s, _ = Step(s, Input{}, 0, newRand())
	if s.Ship.Dollars != startDollars+100 {
		t.Error("reward paid twice")
	}
}

func TestOrbitDeterminism(t *testing.T) {
	s := quietState()
	const (
		radius = 500.0
		omega  = 0.01
		ticks  = 50
	)
	s.Planets = []entity.Celestial{
		{
			Body:  entity.Body{ID: "planet", Radius: 20},
			Orbit: &physics.Orbit{ParentID: "star-test", Radius: radius, AngularVelocity: omega},
		},
		{
			Body:  entity.Body{ID: "moon", Radius: 5},
			Orbit: &physics.Orbit{ParentID: "planet", Radius: 40, AngularVelocity: 0.05},
		},
	}

	for range ticks {
		s, _ = Step(s, Input{}, 0, newRand())
	}

	planet := s.Planets[0]
	if !approx(planet.Orbit.Angle, ticks*omega) {
		t.Errorf("angle = %v, want %v", planet.Orbit.Angle, ticks*omega)
	}
	want := s.Star.Position.Add(physics.Vector2D{X: radius * math.Cos(ticks*omega), Y: radius * math.Sin(ticks*omega)})
	if planet.Position.Distance(want) > 1e-6 {
		t.Errorf("planet at %+v, want %+v", planet.Position, want)
	}

	moon := s.Planets[1]
	wantMoon := planet.Position.Add(physics.Vector2D{X: 40 * math.Cos(ticks*0.05), Y: 40 * math.Sin(ticks*0.05)})
	if moon.Position.Distance(wantMoon) > 1e-6 {
		t.Errorf("moon at %+v, want %+v", moon.Position, wantMoon)
	}
}

func TestAmbientGravity(t *testing.T) {
	tests := []struct {
		name   string
		offset physics.Vector2D
		want   float64
	}{
		{"outside_the_star", physics.Vector2D{X: 1000}, physics.GravitationalConstant * 1e6 / 1e6},
		{"at_the_surface", physics.Vector2D{X: 100}, 0},
		{"inside_the_star", physics.Vector2D{X: 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := quietState()
			s.Star.BodyMass = 1e6
			s.Ship.Position = s.Star.Position.Add(tt.offset)
			s.Ship.Invulnerable = entity.ShipInvulnerableFrames

			next, _ := Step(s, Input{}, 0, newRand())
			if !approx(next.Gravity, tt.want) {
				t.Errorf("gravity = %v, want %v", next.Gravity, tt.want)
			}
		})
	}
}

func TestShipContactRestartsInvulnerability(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *State)
		wantDamage float64
		bounce     bool
	}{
		{
			name: "asteroid",
			setup: func(s *State) {
				s.Asteroids = []entity.Asteroid{asteroidAt("rock", s.Ship.Position.Add(physics.Vector2D{X: 5}), 10, 20)}
			},
			wantDamage: entity.AsteroidContactDamage,
			bounce:     true,
		},
		{
			name: "pirate",
			setup: func(s *State) {
				s.Hostiles = []entity.Hostile{entity.NewPirate("pirate", s.Ship.Position.Add(physics.Vector2D{X: 5}))}
			},
			wantDamage: entity.HostileContactDamage,
			bounce:     true,
		},
		{
			name: "planet",
			setup: func(s *State) {
				s.Planets = []entity.Celestial{{Body: entity.Body{ID: "planet", Position: s.Ship.Position.Add(physics.Vector2D{X: 5}), Radius: 30}}}
			},
			wantDamage: entity.CelestialContactDamage,
		},
		{
			name: "hostile_round",
			setup: func(s *State) {
				p := entity.NewEnemyProjectile("eshot", s.Ship.Position, physics.Vector2D{}, 0)
				p.Velocity = physics.Vector2D{}
				s.Projectiles = []entity.Projectile{p}
			},
			wantDamage: entity.EnemyProjectileDamage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := quietState()
			tt.setup(&s)

			next, effects := Step(s, Input{}, 0, newRand())

			if got := s.Ship.Health - next.Ship.Health; !approx(got, tt.wantDamage) {
				t.Errorf("damage = %v, want %v", got, tt.wantDamage)
			}
			if next.Ship.Invulnerable != entity.ShipInvulnerableFrames {
				t.Errorf("invulnerable = %d, want %d", next.Ship.Invulnerable, entity.ShipInvulnerableFrames)
			}
			if !hasEffect(effects, event.Hit) {
				t.Error("expected a hit effect")
			}
			if tt.bounce && !approx(next.Ship.Velocity.Length(), entity.ContactBounceSpeed) {
				t.Errorf("bounce speed = %v", next.Ship.Velocity.Length())
			}
			if tt.name == "hostile_round" && len(next.Projectiles) != 0 {
				t.Error("hostile round should be spent on hit")
			}

			again, effects := Step(next, Input{}, 0, newRand())
			if again.Ship.Health != next.Ship.Health || hasEffect(effects, event.Hit) {
				t.Error("invulnerable ship took damage")
			}
			if again.Ship.Invulnerable != entity.ShipInvulnerableFrames-1 {
				t.Errorf("invulnerable = %d after one more tick", again.Ship.Invulnerable)
			}
		})
	}
}

func TestGateOpensStarMapOnce(t *testing.T) {
	s := quietState()
	s.Gate = &entity.Gate{Body: entity.Body{ID: "gate", Position: s.Ship.Position, Radius: 100}}

	next, effects := Step(s, Input{}, 0, newRand())
	if next.Mode != ModeStarMap || next.GateArmed {
		t.Fatalf("mode=%s armed=%v, want star_map and disarmed", next.Mode, next.GateArmed)
	}
	if !hasEffect(effects, event.OpenStarMap) {
		t.Error("expected an open star map effect")
	}

	// Dismissed while still touching the gate: no second opening.
	next.Mode = ModeFlying
	next, effects = Step(next, Input{}, 0, newRand())
	if next.Mode != ModeFlying || hasEffect(effects, event.OpenStarMap) {
		t.Fatal("gate reopened while still overlapping")
	}

	next.Ship.Position = physics.Vector2D{X: 4000, Y: 4000}
	next, _ = Step(next, Input{}, 0, newRand())
	if !next.GateArmed {
		t.Error("gate should re-arm once the ship leaves it")
	}
}

func TestShipFiresWithCooldown(t *testing.T) {
	s := quietState()

	next, effects := Step(s, Input{Fire: true}, 1000, newRand())
	if len(next.Projectiles) != 1 {
		t.Fatalf("got %d projectiles, want 1", len(next.Projectiles))
	}
	if next.Projectiles[0].Hostile {
		t.Error("player round marked hostile")
	}
	if !approx(next.Ship.Ammo, entity.ShipMaxAmmo-1+entity.ShipAmmoRecharge) {
		t.Errorf("ammo = %v", next.Ship.Ammo)
	}
	if next.Ship.LastShot != 1000 {
		t.Errorf("last shot = %v", next.Ship.LastShot)
	}
	if !hasEffect(effects, event.ShotFired) {
		t.Error("expected a shot fired effect")
	}

	next, effects = Step(next, Input{Fire: true}, 1000+entity.FrameMs, newRand())
	if len(next.Projectiles) != 1 || hasEffect(effects, event.ShotFired) {
		t.Error("fired again before the cooldown elapsed")
	}

	next, _ = Step(next, Input{Fire: true}, 1000+entity.ProjectileCooldown*entity.FrameMs+1, newRand())
	if len(next.Projectiles) != 2 {
		t.Errorf("got %d projectiles after cooldown, want 2", len(next.Projectiles))
	}
}

func TestShipCannotFireWithoutAmmo(t *testing.T) {
	s := quietState()
	s.Ship.Ammo = 0.5

	next, effects := Step(s, Input{Fire: true}, 1000, newRand())
	if len(next.Projectiles) != 0 || hasEffect(effects, event.ShotFired) {
		t.Error("fired with less than one round")
	}
}

func TestMissileLaunchNeedsTargetInRange(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		launched bool
	}{
		{"in_range", 500, true},
		{"out_of_range", 1500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := quietState()
			s.Ship.Missiles = 1
			s.Asteroids = []entity.Asteroid{asteroidAt("rock", s.Ship.Position.Add(physics.Vector2D{X: tt.distance}), 10, 20)}

			next, effects := Step(s, Input{Missile: true}, 0, newRand())

			if got := len(next.Missiles) == 1; got != tt.launched {
				t.Fatalf("launched = %v, want %v", got, tt.launched)
			}
			if hasEffect(effects, event.MissileLaunched) != tt.launched {
				t.Error("missile launched effect mismatch")
			}
			if tt.launched {
				if next.Ship.Missiles != 0 {
					t.Errorf("missiles = %d, want 0", next.Ship.Missiles)
				}
				if next.Missiles[0].TargetID != "rock" {
					t.Errorf("target = %s", next.Missiles[0].TargetID)
				}
			}
		})
	}
}

func TestMissileLaunchPrefersNearestTarget(t *testing.T) {
	s := quietState()
	s.Ship.Missiles = 1
	s.Hostiles = []entity.Hostile{entity.NewPirate("pirate", s.Ship.Position.Add(physics.Vector2D{X: 900}))}
	s.Asteroids = []entity.Asteroid{asteroidAt("rock", s.Ship.Position.Add(physics.Vector2D{Y: 400}), 10, 20)}

	next, _ := Step(s, Input{Missile: true}, 0, newRand())
	if next.Missiles[0].TargetID != "rock" {
		t.Errorf("target = %s, want rock", next.Missiles[0].TargetID)
	}
}

func TestPirateAttacksShipAhead(t *testing.T) {
	s := quietState()
	pirate := entity.NewPirate("pirate", s.Ship.Position.Add(physics.Vector2D{X: 300}))
	pirate.Angle = math.Pi
	s.Hostiles = []entity.Hostile{pirate}

	next, effects := Step(s, Input{}, 10000, newRand())

	h := next.Hostiles[0]
	if h.AI != entity.AIAttacking {
		t.Errorf("ai = %v, want attacking", h.AI)
	}
	if h.LastShot != 10000 {
		t.Errorf("last shot = %v", h.LastShot)
	}
	if len(next.Projectiles) != 1 || !next.Projectiles[0].Hostile {
		t.Fatalf("projectiles = %+v", next.Projectiles)
	}
	if h.Velocity.X >= 0 {
		t.Error("pirate should thrust toward the ship")
	}
	if hasEffect(effects, event.ShotFired) {
		t.Error("hostile shots are silent")
	}
}

func TestPirateIdlesFarAway(t *testing.T) {
	s := quietState()
	s.Hostiles = []entity.Hostile{entity.NewPirate("pirate", s.Ship.Position.Add(physics.Vector2D{X: 2000}))}

	next, _ := Step(s, Input{}, 10000, newRand())

	h := next.Hostiles[0]
	if h.AI != entity.AIIdle {
		t.Errorf("ai = %v, want idle", h.AI)
	}
	if h.Velocity != (physics.Vector2D{}) {
		t.Errorf("idle pirate moved: %+v", h.Velocity)
	}
	if !approx(h.Angle, entity.PirateTurnSpeed) && !approx(h.Angle, -entity.PirateTurnSpeed) {
		t.Errorf("angle = %v, want a capped turn", h.Angle)
	}
}

func TestPiratesSpawnOnEdgesUpToLevel(t *testing.T) {
	s := quietState()
	s.Level = 2
	s.PirateSpawnRate = 1

	s, _ = Step(s, Input{}, 0, newRand())
	if len(s.Hostiles) != 1 {
		t.Fatalf("got %d pirates after one tick, want 1", len(s.Hostiles))
	}
	p := s.Hostiles[0].Position
	if p.X != 0 && p.Y != 0 && p.X != entity.WorldSize && p.Y != entity.WorldSize {
		t.Errorf("pirate spawned off the edge at %+v", p)
	}

	for range 5 {
		s, _ = Step(s, Input{}, 0, newRand())
	}
	if got := s.pirateCount(); got != 2 {
		t.Errorf("pirates = %d, want the threat level 2", got)
	}
}

func TestNoSpawnWithZeroRate(t *testing.T) {
	s := quietState()
	s.Level = 5

	for range 100 {
		s, _ = Step(s, Input{}, 0, newRand())
	}
	if len(s.Hostiles) != 0 {
		t.Errorf("got %d pirates with a zero spawn rate", len(s.Hostiles))
	}
}

func TestExpiry(t *testing.T) {
	s := quietState()
	p := entity.NewPlayerProjectile("p", physics.Vector2D{X: 3000, Y: 3000}, physics.Vector2D{}, 0)
	p.Life = 1
	s.Projectiles = []entity.Projectile{p}
	s.Explosions = []entity.Explosion{{ID: "e", Life: 1}}
	s.Debris = []entity.Debris{
		{Body: entity.Body{ID: "d1", Position: physics.Vector2D{X: 3000, Y: 3000}, Radius: 3}, Life: 1, RotationSpeed: 0.5},
		{Body: entity.Body{ID: "d2", Position: physics.Vector2D{X: 3000, Y: 3000}, Radius: 3}, Life: 2},
	}

	next, _ := Step(s, Input{}, 0, newRand())
	if len(next.Projectiles) != 1 || next.Projectiles[0].Life != 0 {
		t.Errorf("projectile with one tick left should survive this tick: %+v", next.Projectiles)
	}
	if len(next.Explosions) != 1 {
		t.Error("explosion with one tick left should survive this tick")
	}
	if len(next.Debris) != 1 || next.Debris[0].ID != "d2" {
		t.Errorf("debris = %+v", next.Debris)
	}

	next, _ = Step(next, Input{}, 0, newRand())
	if len(next.Projectiles) != 0 || len(next.Explosions) != 0 || len(next.Debris) != 0 {
		t.Errorf("leftovers: %d projectiles, %d explosions, %d debris",
			len(next.Projectiles), len(next.Explosions), len(next.Debris))
	}
}

func TestShipControls(t *testing.T) {
	t.Run("thrust", func(t *testing.T) {
		s := quietState()
		s.Ship.Angle = 0
		next, _ := Step(s, Input{Thrust: true}, 0, newRand())
		want := entity.ShipThrust * entity.ShipDamping
		if !approx(next.Ship.Velocity.X, want) || !next.Ship.Thrusting {
			t.Errorf("velocity = %+v thrusting=%v", next.Ship.Velocity, next.Ship.Thrusting)
		}
	})

	t.Run("turn", func(t *testing.T) {
		s := quietState()
		s.Ship.Angle = 0
		next, _ := Step(s, Input{TurnRight: true}, 0, newRand())
		if !approx(next.Ship.Angle, entity.ShipTurnSpeed) {
			t.Errorf("angle = %v", next.Ship.Angle)
		}
		next, _ = Step(next, Input{TurnLeft: true}, 0, newRand())
		if !approx(next.Ship.Angle, 0) {
			t.Errorf("angle = %v after turning back", next.Ship.Angle)
		}
	})

	t.Run("brake_stops_slow_ship", func(t *testing.T) {
		s := quietState()
		s.Ship.Velocity = physics.Vector2D{X: 0.01}
		next, _ := Step(s, Input{Brake: true}, 0, newRand())
		if next.Ship.Velocity != (physics.Vector2D{}) {
			t.Errorf("velocity = %+v, want zero", next.Ship.Velocity)
		}
	})

	t.Run("coasting_ship_slows", func(t *testing.T) {
		s := quietState()
		s.Ship.Velocity = physics.Vector2D{X: 2}
		next, _ := Step(s, Input{}, 0, newRand())
		want := (2 - entity.ShipAutoBrake) * entity.ShipDamping
		if !approx(next.Ship.Velocity.X, want) {
			t.Errorf("velocity = %v, want %v", next.Ship.Velocity.X, want)
		}
	})
}

func TestAmmoRegenerationIsCapped(t *testing.T) {
	s := quietState()
	s.Ship.Ammo = entity.ShipMaxAmmo - 0.01

	next, _ := Step(s, Input{}, 0, newRand())
	if next.Ship.Ammo != entity.ShipMaxAmmo {
		t.Errorf("ammo = %v, want %v", next.Ship.Ammo, entity.ShipMaxAmmo)
	}
}

func TestMissilePickupRestocks(t *testing.T) {
	s := quietState()
	s.Pickups = []entity.MissilePickup{{Body: entity.Body{ID: "hm-pickup-x", Position: s.Ship.Position, Radius: entity.MissilePickupRadius}}}

	next, effects := Step(s, Input{}, 0, newRand())
	if next.Ship.Missiles != 1 || len(next.Pickups) != 0 {
		t.Errorf("missiles=%d pickups=%d", next.Ship.Missiles, len(next.Pickups))
	}
	if !hasEffect(effects, event.Collected) {
		t.Error("expected a collected effect")
	}
}
