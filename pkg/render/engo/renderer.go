// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
	"github.com/infiniti1985/space-drifter/pkg/render"
)

// Draw layers, back to front
const (
	layerCelestial float32 = iota
	layerStructure
	layerDebris
	layerBody
	layerShot
	layerShip
	layerExplosion
)

// Sprite sizes in world units for things drawn smaller than their hit circle
const (
	shipSize    = 24
	hostileSize = 22
	targetSize  = 32
	missileSize = 12
	pickupSize  = 12
	crystalSize = 6
	debrisSize  = 4
	minShotSize = 3
)

// SpriteSink is where sprite entities live. *common.RenderSystem is one.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// sprite is one drawn entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements render.Renderer by keeping one engo entity per game
// entity. Entities not drawn between Clear and Present are removed.
type EngoRenderer struct {
	sink   SpriteSink
	assets *AssetManager
	hud    *HUDSystem

	sprites map[entity.ID]*sprite
	drawn   map[entity.ID]bool
}

// NewEngoRenderer creates a renderer adding sprites to sink. hud may be nil.
func NewEngoRenderer(sink SpriteSink, assets *AssetManager, hud *HUDSystem) *EngoRenderer {
	if assets == nil {
		assets = NewAssetManager()
	}
	return &EngoRenderer{
		sink:    sink,
		assets:  assets,
		hud:     hud,
		sprites: make(map[entity.ID]*sprite),
		drawn:   make(map[entity.ID]bool),
	}
}

// Clear implements render.Renderer
func (r *EngoRenderer) Clear() {
	clear(r.drawn)
}

// Present implements render.Renderer. It drops the sprites of entities that
// were not drawn this frame.
func (r *EngoRenderer) Present() {
	for id, sp := range r.sprites {
		if !r.drawn[id] {
			r.sink.Remove(sp.BasicEntity)
			delete(r.sprites, id)
		}
	}
}

// Len returns the number of live sprites
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

// place creates or updates the sprite for id, centered on pos
func (r *EngoRenderer) place(id entity.ID, d common.Drawable, tint color.Color, pos physics.Vector2D, size, angle float64, layer float32) *sprite {
	r.drawn[id] = true

	sp, ok := r.sprites[id]
	if !ok {
		sp = &sprite{BasicEntity: ecs.NewBasic()}
		styleSprite(&sp.RenderComponent, layer, nil)
		r.sprites[id] = sp
		defer r.sink.Add(&sp.BasicEntity, &sp.RenderComponent, &sp.SpaceComponent)
	}

	sp.RenderComponent.Drawable = d
	sp.RenderComponent.Color = tint
	sp.SpaceComponent.Width = float32(size)
	sp.SpaceComponent.Height = float32(size)
	sp.SpaceComponent.Rotation = float32(angle * 180 / math.Pi)
	sp.SpaceComponent.SetCenter(engo.Point{X: float32(pos.X), Y: float32(pos.Y)})
	return sp
}

// styleSprite sets draw order and shader. Both notify engo's render system
// through the mailbox, which exists only while the engine runs.
func styleSprite(rc *common.RenderComponent, layer float32, shader common.Shader) {
	if engo.Mailbox == nil {
		return
	}
	rc.SetZIndex(layer)
	if shader != nil {
		rc.SetShader(shader)
	}
}

// disc draws a filled circle covering a body's footprint
func (r *EngoRenderer) disc(id entity.ID, tint color.Color, pos physics.Vector2D, radius float64, layer float32) {
	r.place(id, common.Circle{}, tint, pos, 2*radius, 0, layer)
}

// textured draws a generated sprite, or a triangle before textures load
func (r *EngoRenderer) textured(id entity.ID, kind SpriteKind, pos physics.Vector2D, size, angle float64, layer float32) {
	if d, ok := r.assets.Sprite(kind); ok {
		r.place(id, d, color.White, pos, size, angle, layer)
		return
	}
	// engo's triangle points up, heading zero points along +x
	r.place(id, common.Triangle{}, spriteTints[kind], pos, size, angle+math.Pi/2, layer)
}

// RenderCelestial implements render.Renderer
func (r *EngoRenderer) RenderCelestial(c *entity.Celestial) {
	tint := starColor
	if c.Orbit != nil {
		tint = PlanetColor(c.PlanetType)
	}
	r.disc(c.ID, tint, c.Position, c.Radius, layerCelestial)
}

// RenderStation implements render.Renderer
func (r *EngoRenderer) RenderStation(s *entity.Station) {
	r.textured(s.ID, SpriteStation, s.Position, 2*s.Radius, 0, layerStructure)
}

// RenderGate implements render.Renderer
func (r *EngoRenderer) RenderGate(g *entity.Gate) {
	r.textured(g.ID, SpriteGate, g.Position, 2*g.Radius, 0, layerStructure)
}

// RenderAsteroid implements render.Renderer
func (r *EngoRenderer) RenderAsteroid(a *entity.Asteroid) {
	r.disc(a.ID, rockColor, a.Position, a.Radius, layerBody)
}

// RenderDebris implements render.Renderer
func (r *EngoRenderer) RenderDebris(d *entity.Debris) {
	r.place(d.ID, common.Rectangle{}, debrisColor, d.Position, debrisSize, 0, layerDebris)
}

// RenderResource implements render.Renderer
func (r *EngoRenderer) RenderResource(res *entity.Resource) {
	r.place(res.ID, common.Rectangle{}, crystalColor, res.Position, crystalSize, math.Pi/4, layerDebris)
}

// RenderPickup implements render.Renderer
func (r *EngoRenderer) RenderPickup(p *entity.MissilePickup) {
	r.textured(p.ID, SpritePickup, p.Position, pickupSize, 0, layerDebris)
}

// RenderHostile implements render.Renderer
func (r *EngoRenderer) RenderHostile(h *entity.Hostile) {
	if h.Kind == entity.MissionTarget {
		r.textured(h.ID, SpriteTarget, h.Position, targetSize, h.Angle, layerBody)
		return
	}
	r.textured(h.ID, SpritePirate, h.Position, hostileSize, h.Angle, layerBody)
}

// RenderProjectile implements render.Renderer
func (r *EngoRenderer) RenderProjectile(p *entity.Projectile) {
	tint := shotColor
	if p.Hostile {
		tint = hostileShot
	}
	r.place(p.ID, common.Circle{}, tint, p.Position, math.Max(2*p.Radius, minShotSize), 0, layerShot)
}

// RenderMissile implements render.Renderer
func (r *EngoRenderer) RenderMissile(m *entity.Missile) {
	r.textured(m.ID, SpriteMissile, m.Position, missileSize, m.Velocity.Angle(), layerShot)
}

// RenderExplosion implements render.Renderer
func (r *EngoRenderer) RenderExplosion(e *entity.Explosion) {
	tint := explosionDud
	if e.Kind == entity.ExplosionRich {
		tint = explosionRich
	}
	r.disc(e.ID, tint, e.Position, e.Radius, layerExplosion)
}

// RenderShip implements render.Renderer. The ship blinks while invulnerable.
func (r *EngoRenderer) RenderShip(s *entity.Ship) {
	r.textured(s.ID, SpriteShip, s.Position, shipSize, s.Angle, layerShip)
	sp := r.sprites[s.ID]
	sp.RenderComponent.Hidden = s.IsInvulnerable() && s.Invulnerable%20 >= 10
}

// RenderHUD implements render.Renderer
func (r *EngoRenderer) RenderHUD(h *render.HUD) {
	if r.hud != nil {
		r.hud.Show(h)
	}
}
