// pkg/sector/sector_test.go
package sector

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/starmap"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	graph, err := starmap.New(starmap.Default())
	if err != nil {
		t.Fatalf("starmap: %v", err)
	}
	return NewGenerator(graph)
}

func TestGenerate_Sol(t *testing.T) {
	g := newTestGenerator(t)
	c := g.Generate(SolID, 1, rand.New(rand.NewPCG(1, 1)))

	if c.Star.ID != "star-sol" || c.Star.BodyMass != 150000 || c.Star.Radius != 120 {
		t.Errorf("unexpected star %+v", c.Star)
	}
	if len(c.Planets) != 6 {
		t.Fatalf("got %d planets, want 6", len(c.Planets))
	}
	if len(c.Asteroids) != 70 {
		t.Errorf("got %d asteroids, want 70", len(c.Asteroids))
	}
	if c.Station == nil || c.Station.Name != "Erebus Station" || c.Station.ID != "ranger-station-erebus" {
		t.Errorf("unexpected station %+v", c.Station)
	}
	if c.Gate == nil || c.Gate.Radius != 100 {
		t.Errorf("unexpected gate %+v", c.Gate)
	}

	moon := c.Planets[len(c.Planets)-1]
	if !moon.Orbits("planet-sol-earth") {
		t.Errorf("moon orbits %+v, want earth", moon.Orbit)
	}
	for _, p := range c.Planets[:5] {
		if !p.Orbits(c.Star.ID) {
			t.Errorf("%s should orbit the star", p.Name)
		}
		dist := p.Position.Distance(c.Star.Position)
		if math.Abs(dist-p.Orbit.Radius) > 1e-6 {
			t.Errorf("%s at distance %v, orbit radius %v", p.Name, dist, p.Orbit.Radius)
		}
	}
	for _, a := range c.Asteroids {
		d := a.Position.Distance(c.Star.Position)
		if d < 2600-1e-9 || d > 3000+1e-9 {
			t.Errorf("belt asteroid %s at radius %v", a.ID, d)
		}
		if a.Health != a.Radius || a.RockMass != a.Radius {
			t.Errorf("asteroid %s health/mass should equal radius", a.ID)
		}
	}
}

func TestGenerate_Procedural(t *testing.T) {
	g := newTestGenerator(t)

	for seed := uint64(1); seed <= 20; seed++ {
		c := g.Generate("tau-ceti", 3, rand.New(rand.NewPCG(seed, seed)))

		if c.Station != nil {
			t.Fatal("procedural systems have no station")
		}
		if c.Gate == nil || c.Gate.ID != "hyperspace-gate-tau-ceti" {
			t.Fatalf("unexpected gate %+v", c.Gate)
		}
		if c.Star.ID != "star-3" {
			t.Errorf("star id = %s", c.Star.ID)
		}
		if c.Star.Radius < 100 || c.Star.Radius > 150 {
			t.Errorf("star radius %v out of range", c.Star.Radius)
		}
		if n := len(c.Planets); n < 1 || n > 5 {
			t.Errorf("planet count %d out of range", n)
		}
		if n := len(c.Asteroids); n < 20 || n >= 52 {
			t.Errorf("asteroid count %d out of range", n)
		}
		for i, p := range c.Planets {
			if p.BodyMass != p.Radius*100 {
				t.Errorf("planet %s mass %v, radius %v", p.ID, p.BodyMass, p.Radius)
			}
			if want := entity.ID("planet-3-" + string(rune('0'+i))); p.ID != want {
				t.Errorf("planet id %s, want %s", p.ID, want)
			}
		}
		for _, a := range c.Asteroids {
			if a.Position.Distance(c.Star.Position) < c.Star.Radius+800 {
				t.Errorf("asteroid %s spawned too close to the star", a.ID)
			}
		}
	}
}

func TestGenerate_PlanetNamesFollowSystem(t *testing.T) {
	g := newTestGenerator(t)
	c := g.Generate("sirius", 5, rand.New(rand.NewPCG(7, 7)))
	if c.Planets[0].Name != "Sirius 1" {
		t.Errorf("first planet named %q", c.Planets[0].Name)
	}

	anon := NewGenerator(nil).Generate("sirius", 5, rand.New(rand.NewPCG(7, 7)))
	if anon.Planets[0].Name != "Unknown 1" {
		t.Errorf("unnamed generator produced %q", anon.Planets[0].Name)
	}
}

func TestPickClass_Distribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	counts := map[entity.PlanetType]int{}
	for i := 0; i < 14500; i++ {
		counts[pickClass(rng).kind]++
	}
	if counts[entity.Rocky] <= counts[entity.Terran] || counts[entity.Moon] <= counts[entity.Lava] {
		t.Errorf("weights not respected: %v", counts)
	}
}
