// cmd/drifter-sim/autopilot.go
package main

import (
	"math"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// Autopilot tuning
const (
	aimTolerance = 0.15 // radians
	thrustCone   = 0.6
	fireRange    = 700.0
	arriveRange  = 150.0
	cruiseSpeed  = 6.0
	starMargin   = 500.0
)

// Pilot flies the ship toward the current navigation target, shooting
// whatever hostile or asteroid lies ahead
type Pilot struct{}

// Decide returns the keys to hold for the next tick
func (Pilot) Decide(s *engine.State) engine.Input {
	var in engine.Input
	if s.Mode != engine.ModeFlying {
		return in
	}
	ship := &s.Ship

	goal, attacking := pickGoal(s)
	if away, ok := avoidStar(s); ok {
		goal, attacking = away, false
	}

	diff := physics.NormalizeAngle(physics.Bearing(ship.Position, goal) - ship.Angle)
	switch {
	case diff > aimTolerance:
		in.TurnRight = true
	case diff < -aimTolerance:
		in.TurnLeft = true
	}

	dist := ship.Position.Distance(goal)
	speed := ship.Velocity.Length()
	switch {
	case dist < arriveRange && speed > 1:
		in.Brake = true
	case math.Abs(diff) < thrustCone && speed < cruiseSpeed && dist > arriveRange:
		in.Thrust = true
	case speed > cruiseSpeed*1.5:
		in.Brake = true
	}

	aimed := math.Abs(diff) < aimTolerance && dist < fireRange
	if attacking && aimed && ship.Ammo >= 1 {
		in.Fire = true
	}
	if attacking && aimed && ship.Missiles > 0 && s.Mission.Active() {
		for i := range s.Hostiles {
			if s.Mission.Hunts(s.Hostiles[i].ID) {
				in.Missile = true
				break
			}
		}
	}
	return in
}

// pickGoal aims at the nearest hostile in range, then at the asteroid the
// navigation arrow names, then at any other waypoint
func pickGoal(s *engine.State) (physics.Vector2D, bool) {
	ship := &s.Ship
	best, found := fireRange, false
	var goal physics.Vector2D
	for i := range s.Hostiles {
		if d := ship.Position.Distance(s.Hostiles[i].Position); d < best {
			best, goal, found = d, s.Hostiles[i].Position, true
		}
	}
	if found {
		return goal, true
	}

	wp, ok := engine.NavTarget(s)
	if !ok {
		return ship.Position.Add(physics.FromAngle(ship.Angle, arriveRange*2)), false
	}
	return wp.Position, wp.Kind == engine.WaypointAsteroid || wp.Kind == engine.WaypointTarget
}

// avoidStar points away from the star when the ship drifts too close to it
func avoidStar(s *engine.State) (physics.Vector2D, bool) {
	ship := &s.Ship
	offset := ship.Position.Sub(s.Star.Position)
	if offset.Length() > s.Star.Radius+starMargin {
		return physics.Vector2D{}, false
	}
	return ship.Position.Add(offset.Normalize().Scale(starMargin)), true
}

// Dispatcher runs the menus the autopilot cannot fly through
type Dispatcher struct {
	game    *engine.Game
	visited map[string]bool
}

// NewDispatcher creates a dispatcher for a session
func NewDispatcher(game *engine.Game) *Dispatcher {
	return &Dispatcher{game: game, visited: map[string]bool{}}
}

// Act issues at most one command for the current mode and reports what it
// did, or "" when nothing was needed
func (d *Dispatcher) Act(s *engine.State) string {
	g := d.game
	d.visited[s.SystemID] = true

	switch s.Mode {
	case engine.ModeSplash:
		g.Start()
		return "start"
	case engine.ModeGameOver:
		g.Restart()
		g.Start()
		return "restart"
	case engine.ModeFlying:
		if d.wantsStation(s) && g.ToggleStation() == nil {
			return "dock"
		}
	case engine.ModeStation:
		if kind, ok := cheapestUpgrade(&s.Ship); ok && g.PurchaseUpgrade(kind) == nil {
			return "buy " + string(kind)
		}
		if !s.Mission.Active() {
			if offer, ok := d.nextMission(); ok && g.AcceptMission(offer) == nil {
				return "accept " + offer.ID
			}
		}
		g.CloseStation()
		return "undock"
	case engine.ModeStarMap:
		if dest, ok := d.destination(s); ok && g.RequestJump(dest) == nil {
			return "jump " + dest
		}
		g.CloseStarMap()
		return "close map"
	}
	return ""
}

// wantsStation reports whether docking would achieve anything
func (d *Dispatcher) wantsStation(s *engine.State) bool {
	if st := s.Station; st == nil || !st.InReach(s.Ship.Position) {
		return false
	}
	if _, ok := cheapestUpgrade(&s.Ship); ok {
		return true
	}
	return !s.Mission.Active() && len(d.game.MissionBoard()) > 0
}

// nextMission prefers collection work, which every system can serve
func (d *Dispatcher) nextMission() (entity.Mission, bool) {
	board := d.game.MissionBoard()
	for _, offer := range board {
		if offer.Kind == entity.ObjectiveCollect {
			return offer.Mission(), true
		}
	}
	if len(board) > 0 {
		return board[0].Mission(), true
	}
	return entity.Mission{}, false
}

// destination picks the unvisited neighbor with the lowest threat, falling
// back to any neighbor
func (d *Dispatcher) destination(s *engine.State) (string, bool) {
	if s.Ship.Crystals < entity.HyperjumpCost {
		return "", false
	}
	var pick string
	level := math.MaxInt
	for _, sys := range d.game.StarMap.Neighbors(s.SystemID) {
		if d.visited[sys.ID] {
			continue
		}
		if sys.Level < level {
			pick, level = sys.ID, sys.Level
		}
	}
	if pick == "" {
		if n := d.game.StarMap.Neighbors(s.SystemID); len(n) > 0 {
			pick = n[0].ID
		}
	}
	return pick, pick != ""
}

// cheapestUpgrade finds the least expensive upgrade the ship can afford
func cheapestUpgrade(ship *entity.Ship) (entity.UpgradeKind, bool) {
	var pick entity.UpgradeKind
	best := math.MaxInt
	for _, kind := range entity.UpgradeKinds {
		level := ship.Upgrades.Of(kind)
		if level >= entity.MaxUpgradeLevel {
			continue
		}
		if cost := entity.UpgradeCost(kind, level); ship.CanAfford(cost) && cost < best {
			pick, best = kind, cost
		}
	}
	return pick, pick != ""
}

// hold copies a decision into the shared input set
func hold(set *engine.InputSet, in engine.Input) {
	set.Set(engine.KeyThrust, in.Thrust)
	set.Set(engine.KeyBrake, in.Brake)
	set.Set(engine.KeyTurnLeft, in.TurnLeft)
	set.Set(engine.KeyTurnRight, in.TurnRight)
	set.Set(engine.KeyFire, in.Fire)
	set.Set(engine.KeyMissile, in.Missile)
}
