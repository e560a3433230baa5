// pkg/starmap/starmap.go
package starmap

import (
	"fmt"
	"slices"

	"github.com/infiniti1985/space-drifter/pkg/physics"
)

// System is a node on the star map
type System struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Position    physics.Vector2D `yaml:"position"`
	Level       int              `yaml:"level"`
	Description string           `yaml:"description"`
}

// Connection is an undirected hyperspace lane
type Connection [2]string

// Data is the serialized form of a star map
type Data struct {
	Systems     []System     `yaml:"systems"`
	Connections []Connection `yaml:"connections"`
}

// Graph is an indexed, read-only star map
type Graph struct {
	systems   []System
	byID      map[string]int
	neighbors map[string][]string
}

// New indexes star map data. Duplicate system ids and lanes that reference
// unknown systems are rejected.
func New(data Data) (*Graph, error) {
	g := &Graph{
		systems:   slices.Clone(data.Systems),
		byID:      make(map[string]int, len(data.Systems)),
		neighbors: make(map[string][]string, len(data.Systems)),
	}

	for i, s := range g.systems {
		if _, dup := g.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate system id %q", s.ID)
		}
		g.byID[s.ID] = i
	}

	for _, c := range data.Connections {
		a, b := c[0], c[1]
		if _, ok := g.byID[a]; !ok {
			return nil, fmt.Errorf("connection references unknown system %q", a)
		}
		if _, ok := g.byID[b]; !ok {
			return nil, fmt.Errorf("connection references unknown system %q", b)
		}
		if a == b {
			return nil, fmt.Errorf("system %q connected to itself", a)
		}
		g.neighbors[a] = append(g.neighbors[a], b)
		g.neighbors[b] = append(g.neighbors[b], a)
	}

	return g, nil
}

// Lookup returns the system with the given id
func (g *Graph) Lookup(id string) (System, bool) {
	i, ok := g.byID[id]
	if !ok {
		return System{}, false
	}
	return g.systems[i], true
}

// Level returns a system's threat level, or 1 for unknown systems
func (g *Graph) Level(id string) int {
	if s, ok := g.Lookup(id); ok {
		return s.Level
	}
	return 1
}

// Connected reports whether a lane joins the two systems
func (g *Graph) Connected(a, b string) bool {
	return slices.Contains(g.neighbors[a], b)
}

// Neighbors returns the systems reachable from id in one jump
func (g *Graph) Neighbors(id string) []System {
	out := make([]System, 0, len(g.neighbors[id]))
	for _, n := range g.neighbors[id] {
		out = append(out, g.systems[g.byID[n]])
	}
	return out
}

// Systems returns every system in declaration order
func (g *Graph) Systems() []System {
	return slices.Clone(g.systems)
}

// Default is the built-in map: six systems around Sol
func Default() Data {
	return Data{
		Systems: []System{
			{
				ID: "sol", Name: "Sol System", Position: physics.Vector2D{X: 400, Y: 300}, Level: 1,
				Description: "The cradle of humanity. Familiar inner planets, an asteroid belt and the gas giant Jupiter.",
			},
			{
				ID: "alpha-centauri", Name: "Alpha Centauri", Position: physics.Vector2D{X: 350, Y: 380}, Level: 2,
				Description: "A bustling trade hub with a strong corporate presence.",
			},
			{
				ID: "proxima-centauri", Name: "Proxima Centauri", Position: physics.Vector2D{X: 370, Y: 410}, Level: 3,
				Description: "Dense asteroid fields rich in rare materials. Pirates patrol the lanes.",
			},
			{
				ID: "barnards-star", Name: "Barnard's Star", Position: physics.Vector2D{X: 480, Y: 350}, Level: 4,
				Description: "A remote outpost system. High risk, high reward.",
			},
			{
				ID: "sirius", Name: "Sirius", Position: physics.Vector2D{X: 450, Y: 220}, Level: 5,
				Description: "A heavily fortified corporate system. Unauthorized entry is met with lethal force.",
			},
			{
				ID: "tau-ceti", Name: "Tau Ceti", Position: physics.Vector2D{X: 280, Y: 250}, Level: 3,
				Description: "A former colony that went dark. Full of salvage and strange transmissions.",
			},
		},
		Connections: []Connection{
			{"sol", "alpha-centauri"},
			{"sol", "barnards-star"},
			{"sol", "tau-ceti"},
			{"alpha-centauri", "proxima-centauri"},
			{"barnards-star", "sirius"},
		},
	}
}
