// cmd/drifter-sim/main.go
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/infiniti1985/space-drifter/pkg/config"
	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "drifter.yaml", "Path to configuration file")
	ticks := flag.Int("ticks", 36000, "Number of frames to simulate")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	gameConfig := config.DefaultConfig()
	if _, err := os.Stat(*configPath); err == nil {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
	}
	if err := config.ApplyEnvironment(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	clock := &SimClock{}
	game, err := engine.NewGame(gameConfig,
		engine.WithLogger(logger),
		engine.WithSeed(*seed),
		engine.WithScheduler(clock.Schedule),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	summary := Simulate(game, clock, *ticks, render.NewNullRenderer(logger))
	logger.Info(ctx, "Simulation finished",
		"seed", *seed,
		"ticks", summary.Ticks,
		"system", summary.FinalSystem,
		"systems_visited", summary.SystemsVisited,
		"deaths", summary.Deaths,
		"dollars", summary.Dollars,
		"crystals", summary.Crystals,
		"commands", summary.Commands,
		"effects", summary.Effects,
	)
}

// SimClock runs scheduled callbacks in simulated frames instead of wall time
type SimClock struct {
	tick    int
	pending []timer
}

type timer struct {
	due int
	fn  func()
}

// Schedule queues fn to run once d of simulated time has passed
func (c *SimClock) Schedule(d time.Duration, fn func()) {
	frames := int(float64(d/time.Millisecond) / entity.FrameMs)
	c.pending = append(c.pending, timer{due: c.tick + frames, fn: fn})
}

// Advance moves to the next frame and fires every callback now due
func (c *SimClock) Advance() {
	c.tick++
	var due []timer
	kept := c.pending[:0]
	for _, t := range c.pending {
		if t.due <= c.tick {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	c.pending = kept
	for _, t := range due {
		t.fn()
	}
}

// Now is the simulated time in milliseconds
func (c *SimClock) Now() float64 {
	return float64(c.tick) * entity.FrameMs
}

// Summary describes a finished run
type Summary struct {
	Ticks          int
	FinalSystem    string
	SystemsVisited int
	Deaths         int
	Dollars        int
	Crystals       int
	Commands       int
	Effects        map[event.Type]int
}

// Simulate flies the session with the autopilot for the given number of
// frames, drawing every frame to r
func Simulate(game *engine.Game, clock *SimClock, ticks int, r render.Renderer) Summary {
	sum := Summary{Effects: map[event.Type]int{}}
	subs := game.EventBus.SubscribeAll(event.EffectTypes, func(e event.Event) {
		sum.Effects[e.GetType()]++
	})
	defer func() {
		for _, s := range subs {
			s.Cancel()
		}
	}()
	over := game.EventBus.Subscribe(event.GameOver, func(event.Event) { sum.Deaths++ })
	defer over.Cancel()

	pilot := Pilot{}
	dispatcher := NewDispatcher(game)
	s := game.State()

	for i := 0; i < ticks; i++ {
		if cmd := dispatcher.Act(&s); cmd != "" {
			sum.Commands++
			s = game.State()
		}
		hold(game.Input, pilot.Decide(&s))

		clock.Advance()
		s = game.Tick(clock.Now())
		hud := render.NewHUD(&s, render.DefaultRadarRange)
		render.Frame(r, &s, &hud)
	}

	sum.Ticks = ticks
	sum.FinalSystem = s.SystemID
	sum.SystemsVisited = len(dispatcher.visited)
	sum.Dollars = s.Ship.Dollars
	sum.Crystals = s.Ship.Crystals
	return sum
}
