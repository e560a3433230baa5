// pkg/render/menu.go
package render

import (
	"fmt"

	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
)

// MenuItem is one selectable line of an overlay
type MenuItem struct {
	Label  string
	Action func() error
}

// StationMenu lists the shop and mission board: one line per upgrade
// track, then one per mission offer
func StationMenu(g *engine.Game, s *engine.State) []MenuItem {
	items := make([]MenuItem, 0, len(entity.UpgradeKinds)+len(g.MissionBoard()))
	for _, kind := range entity.UpgradeKinds {
		level := s.Ship.Upgrades.Of(kind)
		label := fmt.Sprintf("%-8s L%d  MAX", kind, level)
		if level < entity.MaxUpgradeLevel {
			label = fmt.Sprintf("%-8s L%d  $%d", kind, level, entity.UpgradeCost(kind, level))
		}
		items = append(items, MenuItem{
			Label:  label,
			Action: func() error { return g.PurchaseUpgrade(kind) },
		})
	}
	for _, offer := range g.MissionBoard() {
		label := fmt.Sprintf("mission: %s ($%d)", offer.Title, offer.RewardDollars)
		if m := s.Mission; m != nil && m.ID == offer.ID && m.Active() {
			label += " [active]"
		}
		items = append(items, MenuItem{
			Label:  label,
			Action: func() error { return g.AcceptMission(offer.Mission()) },
		})
	}
	return items
}

// StarMapMenu lists the systems one jump away
func StarMapMenu(g *engine.Game, s *engine.State) []MenuItem {
	neighbors := g.StarMap.Neighbors(s.SystemID)
	items := make([]MenuItem, 0, len(neighbors))
	for _, sys := range neighbors {
		items = append(items, MenuItem{
			Label:  fmt.Sprintf("%s (threat %d)", sys.Name, sys.Level),
			Action: func() error { return g.RequestJump(sys.ID) },
		})
	}
	return items
}

// Labels numbers menu items for display
func Labels(items []MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%d) %s", i+1, it.Label)
	}
	return out
}
