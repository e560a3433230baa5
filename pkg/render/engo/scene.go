// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

// GameScene runs a session in an engo window
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem

	system string
}

// NewGameScene creates a new game scene
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{game: game, logger: logger}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "SpaceDrifter"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup builds the world's systems (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error(context.Background(), "unexpected updater", nil)
		return
	}

	common.SetBackground(color.Black)
	common.CameraBounds = engo.AABB{Max: engo.Point{X: entity.WorldSize, Y: entity.WorldSize}}
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	assets := NewAssetManager()
	if err := assets.LoadAssets(); err != nil {
		scene.logger.Warn(context.Background(), "assets unavailable, drawing shapes", "error", err.Error())
	}

	controls := engoControls{}
	scene.attach(renderSystem, assets, controls)

	world.AddSystem(scene.input)
	world.AddSystem(&SimulationSystem{scene: scene})
	world.AddSystem(scene.camera)
	world.AddSystem(scene.hud)

	scene.logger.Info(context.Background(), "scene ready",
		"width", engo.GameWidth(),
		"height", engo.GameHeight(),
	)
}

// attach wires the scene's systems to a sprite sink
func (scene *GameScene) attach(sink SpriteSink, assets *AssetManager, controls Controls) {
	scene.hud = NewHUDSystem(scene.game, sink, assets.Font())
	scene.renderer = NewEngoRenderer(sink, assets, scene.hud)
	scene.camera = NewCameraSystem(controls)
	scene.input = NewInputSystem(scene.game, controls, scene.logger)
}

// Frame advances the game to the current time and draws it
func (scene *GameScene) Frame() engine.State {
	s := scene.game.Tick(scene.game.Now())
	hud := render.NewHUD(&s, scene.hud.radar)
	render.Frame(scene.renderer, &s, &hud)

	if s.SystemID != scene.system {
		scene.system = s.SystemID
		scene.camera.Snap(s.Ship.Position)
	} else {
		scene.camera.SetTarget(s.Ship.Position)
	}
	return s
}

// Exit is called when the window closes (required by Engo)
func (scene *GameScene) Exit() {
	scene.logger.Info(context.Background(), "window closed", "system", scene.system)
}

// SimulationSystem ticks and draws the game once per engo update
type SimulationSystem struct {
	scene *GameScene
}

// Update satisfies the ecs.System interface
func (f *SimulationSystem) Update(dt float32) { f.scene.Frame() }

// Remove satisfies the ecs.System interface
func (f *SimulationSystem) Remove(ecs.BasicEntity) {}

// Run opens a window and blocks until it is closed
func Run(game *engine.Game, logger *logging.Logger) {
	d := game.Config.Display
	engo.Run(engo.RunOptions{
		Title:      "Space Drifter",
		Width:      d.Width,
		Height:     d.Height,
		Fullscreen: d.Fullscreen,
		VSync:      true,
	}, NewGameScene(game, logger))
}
