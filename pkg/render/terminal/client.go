// pkg/render/terminal/client.go
package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

const frameInterval = time.Second / 60

// Client runs a session in the terminal: it polls keys, ticks the game at
// 60 Hz and draws each frame.
type Client struct {
	game     *engine.Game
	screen   tcell.Screen
	renderer *Renderer
	holds    *HoldTracker
	logger   *logging.Logger
	radar    float64
}

// NewClient creates a client drawing to screen. The screen must already be
// initialized.
func NewClient(game *engine.Game, screen tcell.Screen, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		game:     game,
		screen:   screen,
		renderer: NewRenderer(screen, game.Config.Display.TerminalScale),
		holds:    NewHoldTracker(game.Input),
		logger:   logger,
		radar:    render.DefaultRadarRange,
	}
}

// OpenScreen creates and initializes the terminal screen
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run drives the session until the player quits or ctx is cancelled
func (c *Client) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !c.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			c.holds.Expire()
			c.game.Tick(c.game.Now())
			c.draw()
		}
	}
}

func (c *Client) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}

// handleKey applies one key press. It returns false when the player quits.
func (c *Client) handleKey(key tcell.Key, ch rune) bool {
	if key == tcell.KeyCtrlC || (key == tcell.KeyRune && ch == 'q') {
		return false
	}
	if key == tcell.KeyRune && ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}

	ctx := context.Background()
	mode := c.game.State().Mode
	switch {
	case key == tcell.KeyEnter:
		if mode == engine.ModeGameOver {
			c.holds.Release()
		}
		c.apply(ctx, render.CommandConfirm)
	case key == tcell.KeyEscape:
		c.apply(ctx, render.CommandBack)
	case key == tcell.KeyRune && ch == 'e':
		c.apply(ctx, render.CommandInteract)
	case key == tcell.KeyRune && ch >= '1' && ch <= '9' && mode != engine.ModeFlying:
		if _, err := render.Choose(c.game, int(ch-'1')); err != nil {
			c.logger.Debug(ctx, "menu action rejected", "choice", string(ch), "error", err.Error())
		}
	case mode == engine.ModeFlying:
		if k, ok := bindingFor(key, ch); ok {
			c.holds.Press(k)
		}
	}
	return true
}

func (c *Client) apply(ctx context.Context, cmd render.Command) {
	err := render.Apply(c.game, cmd)
	if err != nil && !errors.Is(err, engine.ErrStationOutOfRange) {
		c.logger.Warn(ctx, "command failed", "error", err.Error())
	}
}

// draw renders the current state with any overlay for its mode
func (c *Client) draw() {
	s := c.game.State()
	hud := render.NewHUD(&s, c.radar)
	c.renderer.SetCenter(s.Ship.Position)

	render.Frame(&overlayRenderer{Renderer: c.renderer, draw: func() {
		if title, lines, ok := render.Overlay(c.game, &s); ok {
			c.renderer.Overlay(title, lines)
		}
	}}, &s, &hud)
}

// overlayRenderer draws the mode overlay after the HUD and before the frame
// is shown
type overlayRenderer struct {
	*Renderer
	draw func()
}

func (o *overlayRenderer) Present() {
	o.draw()
	o.Renderer.Present()
}
