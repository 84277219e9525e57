package sokoban

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

func testLevels() []levels.Level {
	return []levels.Level{
		{ID: "a", Name: "One", Map: "W W W W W\nW P RB RS W\nW W W W W"},
		{ID: "b", Name: "Two", Map: "W W W W W W\nW P . BB BS W\nW W W W W W"},
	}
}

func newTestGame(mode Mode, start string) *Game {
	opts := registry.Options{
		Config:     config.DefaultSokobanConfig(),
		Levels:     testLevels(),
		StartLevel: start,
	}
	opts.Config.Input.Hold = 50 * time.Millisecond // two ticks at 30/s
	g := New(mode, opts)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// idle steps enough empty frames for held keys to expire.
func idle(g *Game) {
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDSingle} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
	g, err := registry.Create(IDSingle, registry.Options{Levels: testLevels()})
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != IDSingle {
		t.Errorf("ID = %q", g.ID())
	}
}

func TestSolveAndAdvance(t *testing.T) {
	g := newTestGame(ModeCampaign, "")

	res := g.Step(press(core.ActionRight))
	if !res.Solved || !res.State.Won {
		t.Fatalf("first level should be solved in one push: %+v", res)
	}
	if res.State.Score != 1 || res.State.Level != "a" {
		t.Errorf("state = %+v", res.State)
	}

	// Won levels ignore pushes
	idle(g)
	g.Step(press(core.ActionLeft))
	if g.Snapshot().Moves != 1 {
		t.Error("push after solving should be ignored")
	}

	idle(g)
	res = g.Step(press(core.ActionConfirm))
	if res.State.Level != "b" || res.State.Won || res.State.Score != 0 {
		t.Errorf("after confirm state = %+v, want fresh level b", res.State)
	}
}

func TestHeldKeyPushesOnce(t *testing.T) {
	g := newTestGame(ModeCampaign, "b")

	g.Step(press(core.ActionRight))
	g.Step(press(core.ActionRight)) // auto-repeat
	if got := g.Snapshot().Moves; got != 1 {
		t.Fatalf("moves = %d after a held key, want 1", got)
	}

	idle(g)
	res := g.Step(press(core.ActionRight))
	if !res.Solved || res.State.Score != 2 {
		t.Errorf("second press should solve level b: %+v", res.State)
	}
}

func TestTerminalRepeatPushesOnce(t *testing.T) {
	g := New(ModeCampaign, registry.Options{
		Config:     config.DefaultSokobanConfig(),
		Levels:     testLevels(),
		StartLevel: "b",
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})

	// one press, a 500ms repeat delay, then a repeat every tick for a second
	for tick := 0; tick < 45; tick++ {
		if tick == 0 || tick >= 15 {
			g.Step(press(core.ActionRight))
		} else {
			g.Step(press())
		}
	}
	if got := g.Snapshot().Moves; got != 1 {
		t.Errorf("moves = %d after holding Right, want 1", got)
	}
}

func TestRestartReloadsLevel(t *testing.T) {
	g := newTestGame(ModeCampaign, "b")
	start := g.Snapshot()

	// every restart starts from the parsed level, not the last attempt
	for round := 0; round < 2; round++ {
		g.Step(press(core.ActionRight))
		idle(g)
		g.Step(press(core.ActionRestart))
		idle(g)

		snap := g.Snapshot()
		if snap.Moves != 0 || snap.Player != start.Player || snap.Board != start.Board {
			t.Errorf("round %d: restart did not reset the level: %+v", round, snap)
		}
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(ModeCampaign, "")

	g.Step(press(core.ActionPause))
	idle(g)
	g.Step(press(core.ActionRight))
	if snap := g.Snapshot(); snap.Moves != 0 || snap.State != StatePaused {
		t.Fatalf("paused game moved: %+v", snap)
	}

	idle(g)
	g.Step(press(core.ActionPause))
	idle(g)
	g.Step(press(core.ActionRight))
	if g.Snapshot().State != StateWon {
		t.Error("unpaused game should accept the push")
	}
}

func TestSingleModeFinishes(t *testing.T) {
	g := newTestGame(ModeSingle, "a")
	g.Step(press(core.ActionRight))
	idle(g)
	res := g.Step(press(core.ActionConfirm))
	if !res.State.GameOver {
		t.Errorf("single mode should finish after the win: %+v", res.State)
	}
}

func TestCampaignFinishesAfterLastLevel(t *testing.T) {
	g := newTestGame(ModeCampaign, "b")
	g.Step(press(core.ActionRight))
	idle(g)
	g.Step(press(core.ActionRight))
	idle(g)
	res := g.Step(press(core.ActionConfirm))
	if !res.State.GameOver || g.Snapshot().State != StateFinished {
		t.Errorf("campaign should finish after the last level: %+v", res.State)
	}
}

func TestUnknownStartLevelFallsBack(t *testing.T) {
	g := newTestGame(ModeCampaign, "zzz")
	if g.State().Level != "a" {
		t.Errorf("level = %q, want first level", g.State().Level)
	}
}

func TestNoLevels(t *testing.T) {
	g := New(ModeCampaign, registry.Options{})
	g.Reset(core.DefaultConfig())
	if !g.State().GameOver {
		t.Error("game without levels should be over")
	}
	g.Step(press(core.ActionRight))

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "No levels") {
		t.Error("render should explain the missing levels")
	}
}

func TestBrokenLevel(t *testing.T) {
	g := New(ModeCampaign, registry.Options{Levels: []levels.Level{{ID: "x", Map: "P ?"}}})
	g.Reset(core.DefaultConfig())
	if g.Snapshot().State != StateLoadFailure {
		t.Fatalf("state = %v", g.Snapshot().State)
	}
	g.Step(press(core.ActionRight))

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "Cannot load level") {
		t.Error("render should report the load failure")
	}
}

type countingListener struct{ n int }

func (c *countingListener) HandleMoveEvent(*engine.TickContext, engine.MoveEvent) { c.n++ }

func TestExtraListenersSurviveLevelChanges(t *testing.T) {
	l := &countingListener{}
	opts := registry.Options{Levels: testLevels(), Listeners: []engine.Listener{l}}
	g := New(ModeCampaign, opts)
	g.Reset(core.DefaultConfig())

	g.Step(press(core.ActionRight)) // player, box, placement
	idle(g)
	g.Step(press(core.ActionConfirm))
	idle(g)
	g.Step(press(core.ActionUp)) // wall

	if l.n != 4 {
		t.Errorf("listener saw %d events, want 4", l.n)
	}
}

func TestHUDReportsEveryTick(t *testing.T) {
	g := newTestGame(ModeCampaign, "b")
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot().Reports; got != 5 {
		t.Errorf("reports = %d, want 5", got)
	}
}
