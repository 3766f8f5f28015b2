package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duckhunt/internal/core"
	"github.com/vovakirdan/tui-duckhunt/internal/game"
	"github.com/vovakirdan/tui-duckhunt/internal/level"
	"github.com/vovakirdan/tui-duckhunt/internal/spawn"
)

func testCampaign(t *testing.T) *level.Campaign {
	t.Helper()

	c, err := level.NewCampaign([]level.Config{{
		ID:            1,
		TimeLimit:     30,
		GoodRequired:  5,
		DecoyTotal:    10,
		MaxGoodSpawns: 8,
		SpawnInterval: 1,
		DecoyPenalty:  3,
		DuckLifetime:  4,
		Sizes:         level.SizeWeights{Large: 0.5, Medium: 0.3, Small: 0.2},
	}})
	if err != nil {
		t.Fatalf("failed to build campaign: %v", err)
	}
	return c
}

func testModel(t *testing.T) Model {
	t.Helper()

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewModel(testCampaign(t), nil, cfg, nil)
}

func TestPlayAreaInsideBox(t *testing.T) {
	area := playArea(80, 24)
	box := boxArea(80, 24)

	if area.X <= box.X || area.Y <= box.Y {
		t.Errorf("play area %+v not inside box %+v", area, box)
	}
	if area.Right() >= box.Right() || area.Bottom() >= box.Bottom() {
		t.Errorf("play area %+v extends to box border %+v", area, box)
	}
}

func TestNextFreeTagSkipsUsed(t *testing.T) {
	e := &engine{}

	e.TargetSpawned(spawn.Target{ID: 1})
	e.TargetSpawned(spawn.Target{ID: 2})

	if e.ducks[0].tag != 'a' || e.ducks[1].tag != 's' {
		t.Errorf("tags assigned in pool order: got %c, %c", e.ducks[0].tag, e.ducks[1].tag)
	}

	// Removing the first duck frees its tag for the next spawn.
	e.removeDuck(1)
	e.TargetSpawned(spawn.Target{ID: 3})

	if e.ducks[1].tag != 'a' {
		t.Errorf("freed tag not reused: got %c", e.ducks[1].tag)
	}
}

func TestTargetsClearedDropsAllDucks(t *testing.T) {
	e := &engine{}
	e.TargetSpawned(spawn.Target{ID: 1})
	e.TargetSpawned(spawn.Target{ID: 2})

	e.TargetsCleared()

	if len(e.ducks) != 0 {
		t.Errorf("expected no ducks after clear, got %d", len(e.ducks))
	}
}

func TestTagKeyShootsGoodDuck(t *testing.T) {
	m := testModel(t)
	m.eng.ctrl.StartGame(true)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 5, Y: 5, Lifetime: 4})
	tag := m.eng.ducks[0].tag

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tag}})

	if m.eng.ctrl.Score() != 30 {
		t.Errorf("expected 30 points for a small good duck, got %d", m.eng.ctrl.Score())
	}
	if len(m.eng.ducks) != 0 {
		t.Errorf("shot duck still visible")
	}
}

func TestMouseClickShootsDuckUnderCursor(t *testing.T) {
	m := testModel(t)
	m.eng.ctrl.StartGame(true)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindGood, Size: spawn.SizeMedium, X: 10, Y: 8, Lifetime: 4})

	// Click inside the sprite.
	m.handleMouse(tea.MouseMsg{X: 12, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.eng.ctrl.Score() != 20 {
		t.Errorf("expected 20 points for a medium good duck, got %d", m.eng.ctrl.Score())
	}

	// A click in empty space is a miss with no effect.
	m.eng.TargetSpawned(spawn.Target{ID: 2, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 10, Y: 8, Lifetime: 4})
	m.handleMouse(tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.eng.ctrl.Score() != 20 {
		t.Errorf("empty click changed score to %d", m.eng.ctrl.Score())
	}
	if len(m.eng.ducks) != 1 {
		t.Errorf("empty click removed a duck")
	}
}

func TestDecoyShotDeductsTime(t *testing.T) {
	m := testModel(t)
	m.eng.ctrl.StartGame(true)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindDecoy, Size: spawn.SizeLarge, X: 5, Y: 5, Lifetime: 4})
	tag := m.eng.ducks[0].tag

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tag}})

	if m.eng.ctrl.Score() != 0 {
		t.Errorf("decoy click scored %d points", m.eng.ctrl.Score())
	}
	if m.eng.ctrl.TimeLeft() != 27 {
		t.Errorf("expected 3s penalty, timeLeft=%g", m.eng.ctrl.TimeLeft())
	}
}

func TestAgeDucksReportsExpiry(t *testing.T) {
	m := testModel(t)
	m.eng.ctrl.StartGame(true)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 5, Y: 5, Lifetime: 0.01})
	m.eng.TargetSpawned(spawn.Target{ID: 2, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 6, Y: 6, Lifetime: 10})

	m.ageDucks(0.02)

	if m.eng.ctrl.GoodMissed() != 1 {
		t.Errorf("expected 1 missed duck, got %d", m.eng.ctrl.GoodMissed())
	}
	if len(m.eng.ducks) != 1 || m.eng.ducks[0].target.ID != 2 {
		t.Errorf("expired duck not removed from view")
	}
}

func TestAgeDucksFrozenWhilePaused(t *testing.T) {
	m := testModel(t)
	m.eng.ctrl.StartGame(true)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 5, Y: 5, Lifetime: 0.01})
	m.eng.ctrl.TogglePause()

	m.ageDucks(1)

	if len(m.eng.ducks) != 1 {
		t.Errorf("duck expired while paused")
	}
	if m.eng.ctrl.GoodMissed() != 0 {
		t.Errorf("expiry reported while paused")
	}
}

func TestShootingIgnoredOutsidePlay(t *testing.T) {
	m := testModel(t)

	m.eng.TargetSpawned(spawn.Target{ID: 1, Kind: spawn.KindGood, Size: spawn.SizeSmall, X: 5, Y: 5, Lifetime: 4})
	tag := m.eng.ducks[0].tag

	// Still in the menu: tag keys must not shoot.
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tag}})

	if m.eng.ctrl.Score() != 0 {
		t.Errorf("menu-state key press scored %d", m.eng.ctrl.Score())
	}
	if m.eng.state != game.StateMenu {
		t.Errorf("unexpected state %v", m.eng.state)
	}
}

func TestResizeAdjustsScreenBuffer(t *testing.T) {
	m := testModel(t)

	m.handleResize(tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30-footerRows {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestViewShowsHUDAndOverlay(t *testing.T) {
	m := testModel(t)

	out := m.View()

	for _, want := range []string{"Score: 0", "Ducks: 0/5", "Level: 1", "DUCK HUNT"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
