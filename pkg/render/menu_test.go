package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/infiniti1985/space-drifter/pkg/config"
	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/entity"
)

func newMenuGame(t *testing.T) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(config.DefaultConfig(),
		engine.WithSeed(11),
		engine.WithScheduler(func(time.Duration, func()) {}),
	)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	g.Start()
	return g
}

func TestStationMenu_ListsShopThenMissions(t *testing.T) {
	g := newMenuGame(t)
	s := g.State()
	items := StationMenu(g, &s)

	if want := len(entity.UpgradeKinds) + len(g.MissionBoard()); len(items) != want {
		t.Fatalf("got %d items, want %d", len(items), want)
	}
	if !strings.HasPrefix(items[0].Label, "hull") || !strings.Contains(items[0].Label, "$70") {
		t.Errorf("first item = %q, want the hull upgrade at $70", items[0].Label)
	}
	if !strings.Contains(items[len(entity.UpgradeKinds)].Label, g.MissionBoard()[0].Title) {
		t.Errorf("mission item = %q", items[len(entity.UpgradeKinds)].Label)
	}

	if err := items[0].Action(); err != nil {
		t.Fatalf("buying hull: %v", err)
	}
	if err := items[2].Action(); !errors.Is(err, engine.ErrInsufficientFunds) {
		t.Errorf("weapon with $30 left: err = %v, want ErrInsufficientFunds", err)
	}

	if err := items[len(entity.UpgradeKinds)].Action(); err != nil {
		t.Fatalf("accepting mission: %v", err)
	}
	s = g.State()
	items = StationMenu(g, &s)
	if !strings.HasSuffix(items[len(entity.UpgradeKinds)].Label, "[active]") {
		t.Errorf("accepted mission not marked: %q", items[len(entity.UpgradeKinds)].Label)
	}
}

func TestStarMapMenu_Neighbors(t *testing.T) {
	g := newMenuGame(t)
	s := g.State()
	items := StarMapMenu(g, &s)

	if len(items) != 3 {
		t.Fatalf("sol has %d neighbors listed, want 3", len(items))
	}
	if err := items[0].Action(); !errors.Is(err, engine.ErrInsufficientResources) {
		t.Errorf("jump without crystals: err = %v", err)
	}

	labels := Labels(items)
	if !strings.HasPrefix(labels[0], "1) Alpha Centauri") {
		t.Errorf("label = %q", labels[0])
	}
}
