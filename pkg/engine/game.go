// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/infiniti1985/space-drifter/pkg/config"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/physics"
	"github.com/infiniti1985/space-drifter/pkg/sector"
	"github.com/infiniti1985/space-drifter/pkg/starmap"
)

// SectorProvider produces the static content of a system on entry
type SectorProvider interface {
	Generate(systemID string, level int, rng *rand.Rand) sector.Content
}

// Scheduler runs fn once after d. The default wraps time.AfterFunc.
type Scheduler func(d time.Duration, fn func())

// Option customizes a Game
type Option func(*Game)

// WithLogger sets the session logger
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed makes every random draw of the session reproducible
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithScheduler replaces the timer that completes hyperjumps
func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.schedule = s }
}

// WithSectors replaces the sector generator
func WithSectors(p SectorProvider) Option {
	return func(g *Game) { g.sectors = p }
}

// Game is a single-player session. It owns the current State, feeds it
// through Step once per frame and executes the commands the presentation
// issues (station purchases, missions, hyperjumps). Effects are published
// on EventBus after the state lock is released.
type Game struct {
	Config   *config.GameConfig
	EventBus *event.Bus
	Input    *InputSet
	StarMap  *starmap.Graph

	sectors  SectorProvider
	logger   *logging.Logger
	rng      *rand.Rand
	schedule Scheduler
	epoch    time.Time

	mu      sync.RWMutex
	state   State
	jumpSeq uint64
}

// NewGame creates a session in the splash state at the configured start
// system
func NewGame(cfg *config.GameConfig, opts ...Option) (*Game, error) {
	graph, err := starmap.New(cfg.StarMap)
	if err != nil {
		return nil, fmt.Errorf("invalid star map: %w", err)
	}
	if _, ok := graph.Lookup(cfg.StartSystem); !ok {
		return nil, fmt.Errorf("start system %q: %w", cfg.StartSystem, ErrUnknownSystem)
	}

	g := &Game{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		Input:    NewInputSet(),
		StarMap:  graph,
		logger:   logging.Discard(),
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		epoch:    time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.sectors == nil {
		g.sectors = sector.NewGenerator(graph)
	}

	g.state = g.freshState()
	return g, nil
}

// freshState builds the opening sector with a new ship. Callers hold mu or
// own g exclusively.
func (g *Game) freshState() State {
	start := g.Config.StartSystem
	level := g.StarMap.Level(start)
	content := g.sectors.Generate(start, level, g.rng)
	return NewState(start, level, content, entity.NewShip(physics.Vector2D{}, physics.Vector2D{}), g.Config.PirateSpawnRate)
}

// State returns the current snapshot. Its collections must be treated as
// read-only; the next tick replaces them rather than mutating them.
func (g *Game) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Now returns the session clock in milliseconds
func (g *Game) Now() float64 {
	return float64(time.Since(g.epoch)) / float64(time.Millisecond)
}

// Tick advances the simulation by one frame using the held keys
func (g *Game) Tick(now float64) State {
	in := g.Input.Snapshot()

	g.mu.Lock()
	wasOver := g.state.Mode == ModeGameOver
	next, effects := Step(g.state, in, now, g.rng)
	g.state = next
	g.mu.Unlock()

	if slices.ContainsFunc(effects, func(e event.Effect) bool { return e.Type == event.MissileLaunched }) {
		g.Input.Consume(KeyMissile)
	}
	if !wasOver && next.Mode == ModeGameOver {
		g.logger.Info(context.Background(), "ship destroyed",
			"system", next.SystemID,
			"dollars", next.Ship.Dollars,
			"crystals", next.Ship.Crystals,
		)
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GameOver, Source: g})
	}
	g.publish(effects)
	return next
}

func (g *Game) publish(effects []event.Effect) {
	for _, e := range effects {
		g.EventBus.Publish(event.NewEffectEvent(g, e))
	}
}

// Start leaves the splash screen
func (g *Game) Start() {
	g.mu.Lock()
	if g.state.Mode != ModeSplash {
		g.mu.Unlock()
		return
	}
	g.state.Mode = ModeFlying
	system := g.state.SystemID
	g.mu.Unlock()

	g.logger.Info(context.Background(), "session started", "system", system)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// Restart abandons the session and returns to the splash screen with a new
// ship at the start system. A pending hyperjump is cancelled.
func (g *Game) Restart() {
	g.mu.Lock()
	g.jumpSeq++
	g.state = g.freshState()
	pos := g.state.Ship.Position
	g.mu.Unlock()

	g.Input.Reset()
	g.logger.Info(context.Background(), "session restarted", "system", g.Config.StartSystem)
	g.publish([]event.Effect{{Type: event.Confirm, Position: pos}})
}

// MissionBoard lists the missions stations offer
func (g *Game) MissionBoard() []config.MissionConfig {
	return g.Config.Missions
}

// AcceptMission replaces the current mission and closes the station menu
func (g *Game) AcceptMission(m entity.Mission) error {
	g.mu.Lock()
	if !g.state.Running() {
		g.mu.Unlock()
		return ErrNotRunning
	}
	m.Status = entity.MissionInProgress
	m.Objective.Collected = 0
	g.state.Mission = &m
	if g.state.Mode == ModeStation {
		g.state.Mode = ModeFlying
	}
	pos := g.state.Ship.Position
	g.mu.Unlock()

	g.logger.Info(context.Background(), "mission accepted",
		"mission", m.ID,
		"objective", string(m.Objective.Kind),
	)
	g.publish([]event.Effect{{Type: event.Confirm, Position: pos}})
	return nil
}

// PurchaseUpgrade buys the next level of an upgrade. Raising the hull also
// repairs the ship to its new maximum.
func (g *Game) PurchaseUpgrade(kind entity.UpgradeKind) error {
	if !slices.Contains(entity.UpgradeKinds, kind) {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, kind)
	}

	g.mu.Lock()
	if !g.state.Running() {
		g.mu.Unlock()
		return ErrNotRunning
	}
	ship := &g.state.Ship
	pos := ship.Position
	level := ship.Upgrades.Of(kind)
	cost := entity.UpgradeCost(kind, level)

	var err error
	switch {
	case level >= entity.MaxUpgradeLevel:
		err = ErrMaxLevel
	case !ship.CanAfford(cost):
		err = ErrInsufficientFunds
	default:
		ship.Dollars -= cost
		ship.Upgrades = ship.Upgrades.Raise(kind)
		if kind == entity.UpgradeHull {
			ship.Health = ship.MaxHealth()
		}
	}
	g.mu.Unlock()

	if err != nil {
		g.publish([]event.Effect{{Type: event.Error, Position: pos}})
		return err
	}
	g.logger.Info(context.Background(), "upgrade purchased",
		"upgrade", string(kind),
		"level", level+1,
		"cost", cost,
	)
	g.publish([]event.Effect{{Type: event.Confirm, Position: pos}})
	return nil
}

// ToggleStation opens the station menu while the ship is in reach of the
// station, or closes it if it is open
func (g *Game) ToggleStation() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state.Mode {
	case ModeStation:
		g.state.Mode = ModeFlying
		return nil
	case ModeFlying:
		st := g.state.Station
		if st == nil || !st.InReach(g.state.Ship.Position) {
			return ErrStationOutOfRange
		}
		g.state.Mode = ModeStation
		return nil
	default:
		return ErrNotRunning
	}
}

// CloseStation leaves the station menu
func (g *Game) CloseStation() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Mode == ModeStation {
		g.state.Mode = ModeFlying
	}
}

// CloseStarMap dismisses the star map and nudges the ship away from the gate
// so the gate does not reopen it on the next tick
func (g *Game) CloseStarMap() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Mode != ModeStarMap {
		return
	}
	g.state.Mode = ModeFlying
	if gate := g.state.Gate; gate != nil {
		ship := &g.state.Ship
		away := ship.Position.Sub(gate.Position).Normalize().Scale(entity.GateNudge)
		ship.Velocity = ship.Velocity.Add(away)
	}
}

// RequestJump starts a hyperjump to a neighboring system. The crystals are
// spent immediately; the sector is swapped in after the configured delay.
func (g *Game) RequestJump(destination string) error {
	g.mu.Lock()
	fail := func(err error) error {
		pos := g.state.Ship.Position
		g.mu.Unlock()
		g.publish([]event.Effect{{Type: event.Error, Position: pos}})
		return err
	}

	switch g.state.Mode {
	case ModeJumping:
		return fail(ErrJumpInProgress)
	case ModeFlying, ModeStarMap:
	default:
		g.mu.Unlock()
		return ErrNotRunning
	}
	if _, ok := g.StarMap.Lookup(destination); !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownSystem, destination)
	}
	if !g.StarMap.Connected(g.state.SystemID, destination) {
		return fail(ErrNotConnected)
	}
	if g.state.Ship.Crystals < entity.HyperjumpCost {
		return fail(ErrInsufficientResources)
	}

	origin := g.state.SystemID
	g.state.Ship.Crystals -= entity.HyperjumpCost
	g.state.Mode = ModeJumping
	g.state.GateArmed = true
	g.jumpSeq++
	seq := g.jumpSeq
	pos := g.state.Ship.Position
	g.mu.Unlock()

	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())
	g.logger.Info(ctx, "hyperjump initiated", "from", origin, "to", destination)
	g.publish([]event.Effect{{Type: event.Jump, Position: pos}})

	g.schedule(g.Config.JumpDelay, func() { g.completeJump(ctx, seq, destination) })
	return nil
}

// completeJump swaps in the destination sector. The ship keeps its
// upgrades, money, crystals, missiles and mission. A stale continuation
// (cancelled by Restart) does nothing.
func (g *Game) completeJump(ctx context.Context, seq uint64, destination string) {
	g.mu.Lock()
	if seq != g.jumpSeq || g.state.Mode != ModeJumping {
		g.mu.Unlock()
		g.logger.Debug(ctx, "stale hyperjump ignored", "to", destination)
		return
	}

	level := g.StarMap.Level(destination)
	content := g.sectors.Generate(destination, level, g.rng)

	prev := g.state
	next := NewState(destination, level, content, prev.Ship, prev.PirateSpawnRate)
	next.Ship.Invulnerable = entity.ShipInvulnerableFrames
	next.Mission = prev.Mission
	next.NextID = prev.NextID
	next.Mode = ModeFlying

	spawned := false
	if m := next.Mission; m.HuntsIn(destination) && !next.hasHostile(m.Objective.TargetID) {
		target := entity.NewMissionTarget(m.Objective.TargetID, m.Objective.TargetName, edgePoint(g.rng, entity.HostileSpawnInset))
		next.Hostiles = append(next.Hostiles, target)
		spawned = true
	}
	g.state = next
	g.mu.Unlock()

	g.logger.Info(ctx, "hyperjump complete",
		"system", destination,
		"level", level,
		"mission_target_spawned", spawned,
	)
	g.EventBus.Publish(event.NewSectorEvent(g, destination, level))
}
