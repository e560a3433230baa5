// pkg/sector/sector.go
package sector

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/physics"
	"github.com/infiniti1985/space-drifter/pkg/starmap"
)

// SolID is the home system with hand-placed content
const SolID = "sol"

// Content is the static generated content of one sector
type Content struct {
	Star      entity.Celestial
	Planets   []entity.Celestial
	Asteroids []entity.Asteroid
	Station   *entity.Station
	Gate      *entity.Gate
}

// Generator builds sector content. Sol is fixed up to random orbit phases;
// every other system is procedural and scales with its threat level.
type Generator struct {
	graph *starmap.Graph
}

// NewGenerator creates a generator that names planets after the systems in
// graph. A nil graph names them "Unknown".
func NewGenerator(graph *starmap.Graph) *Generator {
	return &Generator{graph: graph}
}

// Generate returns the content for systemID at the given threat level
func (g *Generator) Generate(systemID string, level int, rng *rand.Rand) Content {
	if systemID == SolID {
		return generateSol(rng)
	}
	return g.generateProcedural(systemID, level, rng)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

func worldCenter() physics.Vector2D {
	return physics.Vector2D{X: entity.WorldSize / 2, Y: entity.WorldSize / 2}
}

func newGate(systemID string) *entity.Gate {
	return &entity.Gate{Body: entity.Body{
		ID:       entity.ID("hyperspace-gate-" + systemID),
		Position: physics.Vector2D{X: 800, Y: entity.WorldSize / 2},
		Radius:   100,
	}}
}

// orbiting places a body on a circular orbit around parent at a random phase
func orbiting(rng *rand.Rand, parent *entity.Celestial, body entity.Celestial, orbitRadius float64) entity.Celestial {
	orbit := physics.NewCircularOrbit(string(parent.ID), parent.BodyMass, orbitRadius, between(rng, 0, 2*math.Pi))
	body.Position = orbit.Position(parent.Position)
	body.Velocity = orbit.Velocity(parent.Velocity)
	body.Orbit = &orbit
	return body
}

func newAsteroid(id entity.ID, rng *rand.Rand, pos, vel physics.Vector2D, radius, spin float64) entity.Asteroid {
	return entity.Asteroid{
		Body:          entity.Body{ID: id, Position: pos, Velocity: vel, Radius: radius},
		Health:        radius,
		RockMass:      radius,
		Rotation:      between(rng, 0, 2*math.Pi),
		RotationSpeed: between(rng, -spin, spin),
	}
}

type solPlanet struct {
	key         string
	name        string
	orbitRadius float64
	radius      float64
	mass        float64
	kind        entity.PlanetType
}

var solPlanets = []solPlanet{
	{"mercury", "Mercury", 800, 15, 1500, entity.Rocky},
	{"venus", "Venus", 1200, 25, 2500, entity.Venus},
	{"earth", "Earth", 1700, 30, 3000, entity.Terran},
	{"mars", "Mars", 2200, 22, 2200, entity.Mars},
	{"jupiter", "Jupiter", 3400, 70, 70000, entity.GasGiant},
}

func generateSol(rng *rand.Rand) Content {
	star := entity.Celestial{
		Body:     entity.Body{ID: "star-sol", Position: worldCenter(), Radius: 120},
		Name:     "Sol",
		BodyMass: 150000,
	}

	planets := make([]entity.Celestial, 0, len(solPlanets)+1)
	var earth entity.Celestial
	for _, p := range solPlanets {
		body := orbiting(rng, &star, entity.Celestial{
			Body:       entity.Body{ID: entity.ID("planet-sol-" + p.key), Radius: p.radius},
			Name:       p.name,
			BodyMass:   p.mass,
			PlanetType: p.kind,
		}, p.orbitRadius)
		if p.key == "earth" {
			earth = body
		}
		planets = append(planets, body)
	}
	planets = append(planets, orbiting(rng, &earth, entity.Celestial{
		Body:       entity.Body{ID: "planet-sol-moon", Radius: 8},
		Name:       "Moon",
		BodyMass:   80,
		PlanetType: entity.Moon,
	}, 80))

	asteroids := make([]entity.Asteroid, 0, 70)
	for i := 0; i < 70; i++ {
		orbitRadius := between(rng, 2600, 3000)
		angle := between(rng, 0, 2*math.Pi)
		speed := physics.CircularOrbitSpeed(star.BodyMass, orbitRadius)
		pos := star.Position.Add(physics.FromAngle(angle, orbitRadius))
		vel := physics.Vector2D{
			X: -math.Sin(angle)*speed + between(rng, -0.3, 0.3),
			Y: math.Cos(angle)*speed + between(rng, -0.3, 0.3),
		}
		asteroids = append(asteroids, newAsteroid(entity.ID(fmt.Sprintf("asteroid-sol-%d", i)), rng, pos, vel, between(rng, 8, 25), 0.02))
	}

	return Content{
		Star:      star,
		Planets:   planets,
		Asteroids: asteroids,
		Station: &entity.Station{
			Body: entity.Body{
				ID:       "ranger-station-erebus",
				Position: physics.Vector2D{X: entity.WorldSize - 800, Y: entity.WorldSize / 2},
				Radius:   50,
			},
			Name: "Erebus Station",
		},
		Gate: newGate(SolID),
	}
}

type planetClass struct {
	kind     entity.PlanetType
	weight   float64
	minR     float64
	maxR     float64
	minOrbit float64
	maxOrbit float64
}

var planetClasses = []planetClass{
	{entity.Rocky, 4, 25, 55, 1600, entity.WorldSize/2 - 400},
	{entity.Ice, 3, 25, 50, 3200, entity.WorldSize/2 - 400},
	{entity.GasGiant, 2, 60, 90, 3600, entity.WorldSize/2 - 600},
	{entity.Lava, 1, 20, 40, 1200, 2400},
	{entity.Moon, 4, 12, 25, 1600, entity.WorldSize/2 - 400},
	{entity.Terran, 0.5, 30, 45, 2000, 3600},
}

// pickClass draws a planet class by weight
func pickClass(rng *rand.Rand) planetClass {
	total := 0.0
	for _, c := range planetClasses {
		total += c.weight
	}
	r := rng.Float64() * total
	for _, c := range planetClasses {
		if r < c.weight {
			return c
		}
		r -= c.weight
	}
	return planetClasses[0]
}

func (g *Generator) systemName(id string) string {
	if g.graph != nil {
		if s, ok := g.graph.Lookup(id); ok {
			return s.Name
		}
	}
	return "Unknown"
}

func (g *Generator) generateProcedural(systemID string, level int, rng *rand.Rand) Content {
	lv := float64(level)
	star := entity.Celestial{
		Body:     entity.Body{ID: entity.NewID("star", uint64(level)), Position: worldCenter(), Radius: between(rng, 100, 150)},
		Name:     g.systemName(systemID),
		BodyMass: between(rng, 120000, 180000),
	}

	count := int(math.Floor(between(rng, 1, 4+lv*0.5)))
	planets := make([]entity.Celestial, 0, count)
	for i := 0; i < count; i++ {
		class := pickClass(rng)
		radius := between(rng, class.minR, class.maxR)
		body := entity.Celestial{
			Body:       entity.Body{ID: entity.ID(fmt.Sprintf("planet-%d-%d", level, i)), Radius: radius},
			Name:       fmt.Sprintf("%s %d", star.Name, i+1),
			BodyMass:   radius * 100,
			PlanetType: class.kind,
		}
		switch class.kind {
		case entity.GasGiant:
			body.HasRings = rng.Float64() < 0.7
		case entity.Ice:
			body.HasRings = rng.Float64() < 0.1
		}
		planets = append(planets, orbiting(rng, &star, body, between(rng, class.minOrbit, class.maxOrbit)))
	}

	n := int(math.Floor(between(rng, 20, 40+lv*4)))
	asteroids := make([]entity.Asteroid, 0, n)
	for len(asteroids) < n {
		pos := physics.Vector2D{X: between(rng, 0, entity.WorldSize), Y: between(rng, 0, entity.WorldSize)}
		if pos.Distance(star.Position) < star.Radius+800 {
			continue
		}
		vel := physics.Vector2D{X: between(rng, -0.5, 0.5), Y: between(rng, -0.5, 0.5)}
		id := entity.ID(fmt.Sprintf("asteroid-%d-%d", level, len(asteroids)))
		asteroids = append(asteroids, newAsteroid(id, rng, pos, vel, between(rng, 10, 30), 0.02))
	}

	return Content{
		Star:      star,
		Planets:   planets,
		Asteroids: asteroids,
		Gate:      newGate(systemID),
	}
}
