// pkg/render/engo/input.go
package engo

import (
	"context"
	"errors"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

// Button names registered with engo
const (
	ButtonThrust    = "thrust"
	ButtonBrake     = "brake"
	ButtonTurnLeft  = "turnLeft"
	ButtonTurnRight = "turnRight"
	ButtonFire      = "fire"
	ButtonMissile   = "missile"
	ButtonConfirm   = "confirm"
	ButtonBack      = "back"
	ButtonInteract  = "interact"
	ButtonQuit      = "quit"
	ButtonZoomIn    = "zoomIn"
	ButtonZoomOut   = "zoomOut"
	ButtonResetZoom = "resetZoom"
)

// flightButtons are held controls, copied to the game's input every frame
var flightButtons = []struct {
	button string
	key    engine.Key
}{
	{ButtonThrust, engine.KeyThrust},
	{ButtonBrake, engine.KeyBrake},
	{ButtonTurnLeft, engine.KeyTurnLeft},
	{ButtonTurnRight, engine.KeyTurnRight},
	{ButtonFire, engine.KeyFire},
	{ButtonMissile, engine.KeyMissile},
}

// menuKeys select menu items one through nine
var menuKeys = []engo.Key{
	engo.KeyOne, engo.KeyTwo, engo.KeyThree, engo.KeyFour, engo.KeyFive,
	engo.KeySix, engo.KeySeven, engo.KeyEight, engo.KeyNine,
}

// Controls reads the state of named buttons
type Controls interface {
	Down(name string) bool
	JustPressed(name string) bool
	Scroll() float32
}

// engoControls reads engo's global input manager
type engoControls struct{}

func (engoControls) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoControls) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }
func (engoControls) Scroll() float32              { return engo.Input.Mouse.ScrollY }

// menuButton names the button for menu item i, counting from zero
func menuButton(i int) string {
	return "menu" + string(rune('1'+i))
}

// SetupInputBindings registers the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonBrake, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonTurnRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonMissile, engo.KeyF)

	engo.Input.RegisterButton(ButtonConfirm, engo.KeyEnter)
	engo.Input.RegisterButton(ButtonBack, engo.KeyEscape)
	engo.Input.RegisterButton(ButtonInteract, engo.KeyE)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyQ)

	engo.Input.RegisterButton(ButtonZoomIn, engo.KeyEquals)
	engo.Input.RegisterButton(ButtonZoomOut, engo.KeyDash)
	engo.Input.RegisterButton(ButtonResetZoom, engo.KeyR)

	for i, k := range menuKeys {
		engo.Input.RegisterButton(menuButton(i), k)
	}
}

// InputSystem turns button state into flight input and menu commands
type InputSystem struct {
	game     *engine.Game
	controls Controls
	logger   *logging.Logger
	quit     func()
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game, controls Controls, logger *logging.Logger) *InputSystem {
	if logger == nil {
		logger = logging.Discard()
	}
	return &InputSystem{
		game:     game,
		controls: controls,
		logger:   logger,
		quit:     engo.Exit,
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update applies this frame's input to the game
func (is *InputSystem) Update(dt float32) {
	ctx := context.Background()
	if is.controls.JustPressed(ButtonQuit) {
		is.quit()
		return
	}

	mode := is.game.State().Mode
	is.command(ctx, ButtonConfirm, render.CommandConfirm)
	is.command(ctx, ButtonBack, render.CommandBack)
	is.command(ctx, ButtonInteract, render.CommandInteract)

	if mode == engine.ModeStation || mode == engine.ModeStarMap {
		for i := range menuKeys {
			if !is.controls.JustPressed(menuButton(i)) {
				continue
			}
			if _, err := render.Choose(is.game, i); err != nil {
				is.logger.Debug(ctx, "menu action rejected", "choice", i+1, "error", err.Error())
			}
			break
		}
	}

	flying := is.game.State().Mode == engine.ModeFlying
	for _, b := range flightButtons {
		is.game.Input.Set(b.key, flying && is.controls.Down(b.button))
	}
}

func (is *InputSystem) command(ctx context.Context, button string, cmd render.Command) {
	if !is.controls.JustPressed(button) {
		return
	}
	err := render.Apply(is.game, cmd)
	if err != nil && !errors.Is(err, engine.ErrStationOutOfRange) {
		is.logger.Warn(ctx, "command failed", "button", button, "error", err.Error())
	}
}
