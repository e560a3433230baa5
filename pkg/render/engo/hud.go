// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

// HUD layout in window pixels
const (
	hudMargin   = 10
	lineHeight  = 20
	barWidth    = 160
	barHeight   = 10
	radarSize   = 180
	blipSize    = 4
	overlayTop  = 160
	overlayLeft = 120
	layerHUD    = 1000
)

var (
	hudColor     = color.NRGBA{220, 230, 255, 255}
	calmColor    = color.NRGBA{80, 220, 120, 255}
	warnColor    = color.NRGBA{240, 210, 60, 255}
	dangerColor  = color.NRGBA{240, 60, 50, 255}
	panelColor   = color.NRGBA{0, 0, 0, 160}
	blipPlanet   = color.NRGBA{90, 140, 220, 255}
	blipStation  = color.NRGBA{80, 220, 120, 255}
	blipGate     = color.NRGBA{170, 90, 255, 255}
	blipHostile  = color.NRGBA{240, 60, 50, 255}
	blipTarget   = color.NRGBA{255, 40, 160, 255}
	blipResource = color.NRGBA{80, 240, 240, 255}
)

// BandColor colors the gravity gauge
func BandColor(b render.GravityBand) color.NRGBA {
	switch b {
	case render.GravityDanger:
		return dangerColor
	case render.GravityWarn:
		return warnColor
	default:
		return calmColor
	}
}

func blipColor(k render.BlipKind) color.NRGBA {
	switch k {
	case render.BlipPlanet:
		return blipPlanet
	case render.BlipStation:
		return blipStation
	case render.BlipGate:
		return blipGate
	case render.BlipPirate:
		return blipHostile
	case render.BlipTarget:
		return blipTarget
	case render.BlipResource:
		return blipResource
	default:
		return rockColor
	}
}

// panelLines formats the status panel
func panelLines(h *render.HUD) []string {
	lines := []string{
		fmt.Sprintf("%s  threat %d", h.SystemID, h.Level),
		fmt.Sprintf("hull %3.0f%%", h.Health*100),
		fmt.Sprintf("ammo %3.0f%%", h.Ammo*100),
		fmt.Sprintf("grav %s", h.GravityBand),
		fmt.Sprintf("$%d  crystals %d  missiles %d", h.Dollars, h.Crystals, h.Missiles),
	}
	if h.JumpReady {
		lines = append(lines, "jump ready")
	}
	if h.Mission != "" {
		lines = append(lines, h.Mission)
	}
	if h.HasNav {
		deg := math.Mod(h.NavBearing*180/math.Pi+450, 360)
		lines = append(lines, fmt.Sprintf("nav %s %03.0f° %.0f", h.Nav.Kind, deg, h.NavDistance))
	}
	if h.StationInRange {
		lines = append(lines, "[E] dock")
	}
	return lines
}

// radarPoint maps a contact offset to window pixels inside the radar panel
// whose top-left corner is origin
func radarPoint(offset engo.Point, radarRange float32, origin engo.Point) engo.Point {
	scale := radarSize / (2 * radarRange)
	return engo.Point{
		X: origin.X + radarSize/2 + offset.X*scale,
		Y: origin.Y + radarSize/2 + offset.Y*scale,
	}
}

// HUDSystem draws the status panel, gauges, radar and mode overlay in window
// space
type HUDSystem struct {
	game  *engine.Game
	sink  SpriteSink
	font  *common.Font
	radar float64

	current render.HUD
	shown   bool
	lines   []string
	overlay []string

	texts []*sprite
	bars  []*sprite
	blips []*sprite
	panel *sprite
}

// NewHUDSystem creates a HUD. Without a font only the gauges and radar are
// drawn.
func NewHUDSystem(game *engine.Game, sink SpriteSink, font *common.Font) *HUDSystem {
	return &HUDSystem{
		game:  game,
		sink:  sink,
		font:  font,
		radar: render.DefaultRadarRange,
	}
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Show sets the values drawn on the next update
func (hud *HUDSystem) Show(h *render.HUD) {
	hud.current = *h
	hud.shown = true
}

// Lines returns the panel text of the last update
func (hud *HUDSystem) Lines() []string {
	return hud.lines
}

// OverlayLines returns the overlay text of the last update, title first
func (hud *HUDSystem) OverlayLines() []string {
	return hud.overlay
}

// Update redraws the HUD from the last values shown
func (hud *HUDSystem) Update(dt float32) {
	if !hud.shown {
		return
	}
	h := &hud.current

	hud.lines = panelLines(h)
	hud.overlay = hud.overlay[:0]
	s := hud.game.State()
	if title, body, ok := render.Overlay(hud.game, &s); ok {
		hud.overlay = append(append(hud.overlay, title, ""), body...)
	}

	hud.syncTexts()
	hud.syncBars(h)
	hud.syncRadar(h)
}

func (hud *HUDSystem) syncTexts() {
	type placed struct {
		text string
		at   engo.Point
	}
	var all []placed
	for i, l := range hud.lines {
		all = append(all, placed{l, engo.Point{X: hudMargin, Y: hudMargin + float32(i*lineHeight)}})
	}
	for i, l := range hud.overlay {
		all = append(all, placed{l, engo.Point{X: overlayLeft, Y: overlayTop + float32(i*lineHeight)}})
	}
	if hud.font == nil {
		return
	}

	for len(hud.texts) < len(all) {
		sp := &sprite{BasicEntity: ecs.NewBasic()}
		sp.RenderComponent.Color = hudColor
		styleSprite(&sp.RenderComponent, layerHUD+1, common.TextHUDShader)
		hud.sink.Add(&sp.BasicEntity, &sp.RenderComponent, &sp.SpaceComponent)
		hud.texts = append(hud.texts, sp)
	}
	for i, sp := range hud.texts {
		if i >= len(all) {
			sp.RenderComponent.Hidden = true
			continue
		}
		if t, ok := sp.RenderComponent.Drawable.(common.Text); !ok || t.Text != all[i].text {
			sp.RenderComponent.Drawable = common.Text{Font: hud.font, Text: all[i].text}
		}
		sp.RenderComponent.Hidden = false
		sp.SpaceComponent.Position = all[i].at
	}
}

// hudRect returns a window-space rectangle sprite, creating it on first use
func (hud *HUDSystem) hudRect(pool *[]*sprite, i int) *sprite {
	for len(*pool) <= i {
		sp := &sprite{BasicEntity: ecs.NewBasic()}
		sp.RenderComponent.Drawable = common.Rectangle{}
		styleSprite(&sp.RenderComponent, layerHUD, common.HUDShader)
		hud.sink.Add(&sp.BasicEntity, &sp.RenderComponent, &sp.SpaceComponent)
		*pool = append(*pool, sp)
	}
	return (*pool)[i]
}

// syncBars draws the hull, ammo and gravity gauges beside their labels
func (hud *HUDSystem) syncBars(h *render.HUD) {
	gauges := []struct {
		fill float64
		tint color.Color
	}{
		{h.Health, calmColor},
		{h.Ammo, hudColor},
		{h.Gravity, BandColor(h.GravityBand)},
	}
	for i, g := range gauges {
		sp := hud.hudRect(&hud.bars, i)
		sp.RenderComponent.Color = g.tint
		sp.SpaceComponent.Position = engo.Point{X: hudMargin + 110, Y: hudMargin + float32((i+1)*lineHeight) + 4}
		sp.SpaceComponent.Width = float32(g.fill) * barWidth
		sp.SpaceComponent.Height = barHeight
	}
}

// syncRadar draws one dot per contact in the top-right corner
func (hud *HUDSystem) syncRadar(h *render.HUD) {
	origin := engo.Point{X: engo.GameWidth() - radarSize - hudMargin, Y: hudMargin}
	if hud.panel == nil {
		var pool []*sprite
		hud.panel = hud.hudRect(&pool, 0)
		hud.panel.RenderComponent.Color = panelColor
		hud.panel.SpaceComponent.Width = radarSize
		hud.panel.SpaceComponent.Height = radarSize
	}
	hud.panel.SpaceComponent.Position = origin

	for i, b := range h.Blips {
		sp := hud.hudRect(&hud.blips, i)
		p := radarPoint(engo.Point{X: float32(b.Offset.X), Y: float32(b.Offset.Y)}, float32(hud.radar), origin)
		sp.RenderComponent.Color = blipColor(b.Kind)
		sp.RenderComponent.Hidden = false
		sp.SpaceComponent.Position = engo.Point{X: p.X - blipSize/2, Y: p.Y - blipSize/2}
		sp.SpaceComponent.Width = blipSize
		sp.SpaceComponent.Height = blipSize
	}
	for _, sp := range hud.blips[len(h.Blips):] {
		sp.RenderComponent.Hidden = true
	}
}
