// pkg/render/terminal/screen.go
package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

// Rows reserved for the HUD at the top and bottom of the screen
const (
	hudTop    = 2
	hudBottom = 1
)

var (
	styleSpace     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStar      = styleSpace.Foreground(tcell.ColorYellow).Bold(true)
	stylePlanet    = styleSpace.Foreground(tcell.ColorBlue)
	styleStation   = styleSpace.Foreground(tcell.ColorGreen).Bold(true)
	styleGate      = styleSpace.Foreground(tcell.ColorPurple).Bold(true)
	styleRock      = styleSpace.Foreground(tcell.ColorGray)
	styleCrystal   = styleSpace.Foreground(tcell.ColorAqua)
	stylePickup    = styleSpace.Foreground(tcell.ColorOrange)
	styleHostile   = styleSpace.Foreground(tcell.ColorRed)
	styleShot      = styleSpace.Foreground(tcell.ColorWhite)
	styleShip      = styleSpace.Foreground(tcell.ColorWhite).Bold(true)
	styleBlink     = styleSpace.Foreground(tcell.ColorGray)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleCalm      = styleHUD.Foreground(tcell.ColorGreen)
	styleWarn      = styleHUD.Foreground(tcell.ColorYellow)
	styleDanger    = styleHUD.Foreground(tcell.ColorRed).Bold(true)
	styleExplosion = styleSpace.Foreground(tcell.ColorOrangeRed)
)

// Renderer draws the world onto a tcell screen, centered on the ship. One
// cell spans scale world units across and twice that down, which keeps
// circles round on a typical terminal font.
type Renderer struct {
	screen tcell.Screen
	scale  float64
	center physics.Vector2D
	width  int
	height int
}

// NewRenderer creates a renderer drawing to screen
func NewRenderer(screen tcell.Screen, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{screen: screen, scale: scale}
}

// SetCenter sets the world point drawn at the middle of the play area
func (r *Renderer) SetCenter(pos physics.Vector2D) {
	r.center = pos
}

// worldToScreen converts world coordinates to screen cells
func (r *Renderer) worldToScreen(pos physics.Vector2D) (int, int) {
	playHeight := r.height - hudTop - hudBottom
	x := int(math.Floor((pos.X-r.center.X)/r.scale + float64(r.width)/2))
	y := int(math.Floor((pos.Y-r.center.Y)/(r.scale*2)+float64(playHeight)/2)) + hudTop
	return x, y
}

func (r *Renderer) inPlay(x, y int) bool {
	return x >= 0 && x < r.width && y >= hudTop && y < r.height-hudBottom
}

func (r *Renderer) plot(pos physics.Vector2D, ch rune, style tcell.Style) {
	x, y := r.worldToScreen(pos)
	if r.inPlay(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// disc fills a body's footprint, or a single cell when it is smaller than one
func (r *Renderer) disc(pos physics.Vector2D, radius float64, ch rune, style tcell.Style) {
	rx := int(radius / r.scale)
	ry := int(radius / (r.scale * 2))
	if rx == 0 && ry == 0 {
		r.plot(pos, ch, style)
		return
	}
	cx, cy := r.worldToScreen(pos)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / math.Max(float64(rx), 1)
			ny := float64(dy) / math.Max(float64(ry), 1)
			if nx*nx+ny*ny > 1 {
				continue
			}
			if x, y := cx+dx, cy+dy; r.inPlay(x, y) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

// text writes s starting at x, y, clipped to the screen width
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// Clear implements render.Renderer
func (r *Renderer) Clear() {
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', styleSpace)
}

// Present implements render.Renderer
func (r *Renderer) Present() {
	r.screen.Show()
}

// RenderCelestial implements render.Renderer
func (r *Renderer) RenderCelestial(c *entity.Celestial) {
	if c.Orbit == nil {
		r.disc(c.Position, c.Radius, '*', styleStar)
		return
	}
	r.disc(c.Position, c.Radius, 'O', stylePlanet)
}

// RenderStation implements render.Renderer
func (r *Renderer) RenderStation(s *entity.Station) {
	r.disc(s.Position, s.Radius, '#', styleStation)
}

// RenderGate implements render.Renderer
func (r *Renderer) RenderGate(g *entity.Gate) {
	r.disc(g.Position, g.Radius, '@', styleGate)
}

// RenderAsteroid implements render.Renderer
func (r *Renderer) RenderAsteroid(a *entity.Asteroid) {
	r.disc(a.Position, a.Radius, '%', styleRock)
}

// RenderDebris implements render.Renderer
func (r *Renderer) RenderDebris(d *entity.Debris) {
	r.plot(d.Position, ',', styleRock)
}

// RenderResource implements render.Renderer
func (r *Renderer) RenderResource(res *entity.Resource) {
	r.plot(res.Position, '$', styleCrystal)
}

// RenderPickup implements render.Renderer
func (r *Renderer) RenderPickup(p *entity.MissilePickup) {
	r.plot(p.Position, '+', stylePickup)
}

// RenderHostile implements render.Renderer
func (r *Renderer) RenderHostile(h *entity.Hostile) {
	ch := 'x'
	if h.Kind == entity.MissionTarget {
		ch = 'X'
	}
	r.plot(h.Position, ch, styleHostile)
}

// RenderProjectile implements render.Renderer
func (r *Renderer) RenderProjectile(p *entity.Projectile) {
	style := styleShot
	if p.Hostile {
		style = styleHostile
	}
	r.plot(p.Position, '.', style)
}

// RenderMissile implements render.Renderer
func (r *Renderer) RenderMissile(m *entity.Missile) {
	r.plot(m.Position, '!', stylePickup)
}

// RenderExplosion implements render.Renderer
func (r *Renderer) RenderExplosion(e *entity.Explosion) {
	r.disc(e.Position, e.Radius, '*', styleExplosion)
}

// RenderShip implements render.Renderer
func (r *Renderer) RenderShip(s *entity.Ship) {
	style := styleShip
	if s.IsInvulnerable() && s.Invulnerable%20 < 10 {
		style = styleBlink
	}
	r.plot(s.Position, headingGlyph(s.Angle), style)
}

// headingGlyph picks an arrow for the nearest of eight directions. Screen y
// grows downward, like world y.
func headingGlyph(angle float64) rune {
	glyphs := []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	octant := int(math.Round(physics.NormalizeAngle(angle)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return glyphs[octant]
}

// RenderHUD implements render.Renderer
func (r *Renderer) RenderHUD(h *render.HUD) {
	for y := 0; y < hudTop; y++ {
		r.text(0, y, strings.Repeat(" ", r.width), styleHUD)
	}
	r.text(0, r.height-1, strings.Repeat(" ", r.width), styleHUD)

	x := r.text(0, 0, fmt.Sprintf(" %s L%d  HP %s  AMMO %s  ", h.SystemID, h.Level, bar(h.Health, 10), bar(h.Ammo, 10)), styleHUD)
	x = r.text(x, 0, "GRAV ", styleHUD)
	r.text(x, 0, bar(h.Gravity, 8), gravityStyle(h.GravityBand))

	line := fmt.Sprintf(" $%d  crystals %d  missiles %d", h.Dollars, h.Crystals, h.Missiles)
	if h.JumpReady {
		line += "  [JUMP READY]"
	}
	if h.Mission != "" {
		line += "  " + h.Mission
	}
	r.text(0, 1, line, styleHUD)

	status := ""
	if h.HasNav {
		status = fmt.Sprintf(" nav %s %s %.0f", h.Nav.Kind, compass(h.NavBearing), h.NavDistance)
	}
	if h.StationInRange {
		status += "  [E] dock"
	}
	status += fmt.Sprintf("  radar %d", len(h.Blips))
	r.text(0, r.height-1, status, styleHUD)

	if h.HasNav {
		r.arrow(h.NavBearing, '>', styleCalm)
	}
}

// arrow marks a bearing on the rim of the play area
func (r *Renderer) arrow(bearing float64, ch rune, style tcell.Style) {
	playHeight := r.height - hudTop - hudBottom
	cx, cy := float64(r.width)/2, float64(hudTop)+float64(playHeight)/2
	rx, ry := float64(r.width)/2-2, float64(playHeight)/2-1
	if rx <= 0 || ry <= 0 {
		return
	}
	x := int(cx + math.Cos(bearing)*rx)
	y := int(cy + math.Sin(bearing)*ry)
	if r.inPlay(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func gravityStyle(b render.GravityBand) tcell.Style {
	switch b {
	case render.GravityDanger:
		return styleDanger
	case render.GravityWarn:
		return styleWarn
	default:
		return styleCalm
	}
}

// bar renders a fraction as a fixed-width gauge
func bar(fraction float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, fraction)) * float64(width)))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// compass names the nearest of eight directions, north up
func compass(bearing float64) string {
	names := []string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}
	octant := int(math.Round(physics.NormalizeAngle(bearing)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return names[octant]
}

// Overlay draws a centered box of lines over the play area
func (r *Renderer) Overlay(title string, lines []string) {
	w := len(title)
	for _, l := range lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(lines) + 4
	x0 := max(0, (r.width-w)/2)
	y0 := max(hudTop, (r.height-h)/2)

	for y := y0; y < y0+h && y < r.height; y++ {
		r.text(x0, y, strings.Repeat(" ", w), styleHUD)
	}
	r.text(x0+2, y0+1, title, styleHUD.Bold(true))
	for i, l := range lines {
		r.text(x0+2, y0+3+i, l, styleHUD)
	}
}
