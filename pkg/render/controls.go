// pkg/render/controls.go
package render

import (
	"fmt"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
)

// Command is a non-flight action shared by every front end
type Command int

const (
	// CommandConfirm starts a session from the splash screen or restarts
	// after game over
	CommandConfirm Command = iota
	// CommandBack leaves the station menu or the star map
	CommandBack
	// CommandInteract docks at or undocks from the station
	CommandInteract
)

// Apply runs a command against the game's current mode. Commands that mean
// nothing in the current mode are ignored.
func Apply(g *engine.Game, cmd Command) error {
	mode := g.State().Mode
	switch cmd {
	case CommandConfirm:
		switch mode {
		case engine.ModeSplash:
			g.Start()
		case engine.ModeGameOver:
			g.Restart()
		}
	case CommandBack:
		switch mode {
		case engine.ModeStation:
			g.CloseStation()
		case engine.ModeStarMap:
			g.CloseStarMap()
		}
	case CommandInteract:
		if mode == engine.ModeFlying || mode == engine.ModeStation {
			return g.ToggleStation()
		}
	}
	return nil
}

// Menu returns the selectable items of the current mode, if it has any
func Menu(g *engine.Game, s *engine.State) []MenuItem {
	switch s.Mode {
	case engine.ModeStation:
		return StationMenu(g, s)
	case engine.ModeStarMap:
		return StarMapMenu(g, s)
	}
	return nil
}

// Choose runs the i-th item, counting from zero, of the current mode's menu.
// It reports false when there is no such item.
func Choose(g *engine.Game, i int) (bool, error) {
	s := g.State()
	items := Menu(g, &s)
	if i < 0 || i >= len(items) {
		return false, nil
	}
	return true, items[i].Action()
}

// Overlay returns the title and body of the panel drawn over the play area
// in the current mode. ok is false while flying.
func Overlay(g *engine.Game, s *engine.State) (title string, lines []string, ok bool) {
	switch s.Mode {
	case engine.ModeSplash:
		return "SPACE DRIFTER", []string{
			"W/S or arrows: thrust and brake",
			"A/D: turn   space: fire   F: missile",
			"E: dock at a station   Q: quit",
			"",
			"Press Enter to launch",
		}, true
	case engine.ModeStation:
		return "STATION", append(Labels(StationMenu(g, s)), "", "E or Esc: undock"), true
	case engine.ModeStarMap:
		lines := append(Labels(StarMapMenu(g, s)), "",
			fmt.Sprintf("jump cost %d crystals, Esc: close", entity.HyperjumpCost))
		return "STAR MAP: " + s.SystemID, lines, true
	case engine.ModeJumping:
		return "HYPERJUMP", []string{"spooling drive..."}, true
	case engine.ModeGameOver:
		return "SHIP DESTROYED", []string{
			fmt.Sprintf("credits %d  crystals %d", s.Ship.Dollars, s.Ship.Crystals),
			"",
			"Press Enter to restart",
		}, true
	}
	return "", nil, false
}
