// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/logging"
)

// Renderer draws one frame of a state. Calls for a frame arrive between
// Clear and Present in back-to-front order.
type Renderer interface {
	Clear()
	RenderCelestial(c *entity.Celestial)
	RenderStation(s *entity.Station)
	RenderGate(g *entity.Gate)
	RenderAsteroid(a *entity.Asteroid)
	RenderDebris(d *entity.Debris)
	RenderResource(r *entity.Resource)
	RenderPickup(p *entity.MissilePickup)
	RenderHostile(h *entity.Hostile)
	RenderProjectile(p *entity.Projectile)
	RenderMissile(m *entity.Missile)
	RenderExplosion(e *entity.Explosion)
	RenderShip(s *entity.Ship)
	RenderHUD(h *HUD)
	Present()
}

// Frame draws the whole state with r
func Frame(r Renderer, s *engine.State, hud *HUD) {
	r.Clear()
	r.RenderCelestial(&s.Star)
	for i := range s.Planets {
		r.RenderCelestial(&s.Planets[i])
	}
	if s.Station != nil {
		r.RenderStation(s.Station)
	}
	if s.Gate != nil {
		r.RenderGate(s.Gate)
	}
	for i := range s.Asteroids {
		r.RenderAsteroid(&s.Asteroids[i])
	}
	for i := range s.Debris {
		r.RenderDebris(&s.Debris[i])
	}
	for i := range s.Resources {
		r.RenderResource(&s.Resources[i])
	}
	for i := range s.Pickups {
		r.RenderPickup(&s.Pickups[i])
	}
	for i := range s.Hostiles {
		r.RenderHostile(&s.Hostiles[i])
	}
	for i := range s.Projectiles {
		r.RenderProjectile(&s.Projectiles[i])
	}
	for i := range s.Missiles {
		r.RenderMissile(&s.Missiles[i])
	}
	for i := range s.Explosions {
		r.RenderExplosion(&s.Explosions[i])
	}
	r.RenderShip(&s.Ship)
	r.RenderHUD(hud)
	r.Present()
}

// NullRenderer logs what it would draw. The headless runner uses it.
type NullRenderer struct {
	logger *logging.Logger
	frames int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns the number of presented frames
func (d *NullRenderer) Frames() int { return d.frames }

// Clear implements Renderer.
func (d *NullRenderer) Clear() {}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.frames++
}

// RenderCelestial implements Renderer.
func (d *NullRenderer) RenderCelestial(c *entity.Celestial) {
	d.logger.Debug(context.Background(), "RenderCelestial called",
		"body_id", string(c.ID),
		"name", c.Name,
		"planet_type", string(c.PlanetType),
	)
}

// RenderStation implements Renderer.
func (d *NullRenderer) RenderStation(s *entity.Station) {
	d.logger.Debug(context.Background(), "RenderStation called", "station_id", string(s.ID))
}

// RenderGate implements Renderer.
func (d *NullRenderer) RenderGate(g *entity.Gate) {}

// RenderAsteroid implements Renderer.
func (d *NullRenderer) RenderAsteroid(a *entity.Asteroid) {}

// RenderDebris implements Renderer.
func (d *NullRenderer) RenderDebris(*entity.Debris) {}

// RenderResource implements Renderer.
func (d *NullRenderer) RenderResource(*entity.Resource) {}

// RenderPickup implements Renderer.
func (d *NullRenderer) RenderPickup(*entity.MissilePickup) {}

// RenderHostile implements Renderer.
func (d *NullRenderer) RenderHostile(h *entity.Hostile) {
	d.logger.Debug(context.Background(), "RenderHostile called",
		"hostile_id", string(h.ID),
		"kind", h.Kind.String(),
		"health", h.Health,
	)
}

// RenderProjectile implements Renderer.
func (d *NullRenderer) RenderProjectile(*entity.Projectile) {}

// RenderMissile implements Renderer.
func (d *NullRenderer) RenderMissile(m *entity.Missile) {
	d.logger.Debug(context.Background(), "RenderMissile called",
		"missile_id", string(m.ID),
		"target_id", string(m.TargetID),
	)
}

// RenderExplosion implements Renderer.
func (d *NullRenderer) RenderExplosion(*entity.Explosion) {}

// RenderShip implements Renderer.
func (d *NullRenderer) RenderShip(s *entity.Ship) {
	d.logger.Debug(context.Background(), "RenderShip called",
		"ship_id", string(s.ID),
		"health", s.Health,
		"crystals", s.Crystals,
	)
}

// RenderHUD implements Renderer.
func (d *NullRenderer) RenderHUD(h *HUD) {
	d.logger.Debug(context.Background(), "RenderHUD called",
		"system", h.SystemID,
		"gravity_band", h.GravityBand.String(),
		"blips", len(h.Blips),
	)
}
