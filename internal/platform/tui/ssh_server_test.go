package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Store:  openStore(t),
		Config: config.DefaultSokobanConfig(),
		Levels: testLevels(),
		User:   "carol",
	}, testRuntime)
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	s := newTestSession(t)
	var model tea.Model = s

	model, cmd := model.Update(keyMsg("enter"))
	if model.(SessionModel).view != viewGame || cmd == nil {
		t.Fatal("enter should start a game")
	}

	model, _ = model.Update(keyMsg("right"))
	model, _ = model.Update(TickMsg(time.Now()))
	if !model.(SessionModel).game.State().Won {
		t.Fatal("level should be solved")
	}

	best, ok, err := s.opts.Store.BestMoves("a")
	if err != nil || !ok || best != 1 {
		t.Errorf("BestMoves = %d, %v, %v", best, ok, err)
	}

	model, _ = model.Update(keyMsg("esc"))
	sm := model.(SessionModel)
	if sm.view != viewMenu || sm.game != nil {
		t.Fatal("esc should return to the menu")
	}
	if !sm.menu.items[0].Solved {
		t.Error("menu should be rebuilt with the new best")
	}
}

func TestSessionScoreboard(t *testing.T) {
	var model tea.Model = newTestSession(t)

	model, _ = model.Update(keyMsg("tab"))
	if model.(SessionModel).view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}
	model, cmd := model.Update(keyMsg("esc"))
	if model.(SessionModel).view != viewMenu {
		t.Error("esc should go back to the menu")
	}
	if cmd != nil {
		t.Error("leaving the scoreboard must not quit the session")
	}
}

func TestSessionQuit(t *testing.T) {
	var model tea.Model = newTestSession(t)
	model, cmd := model.Update(keyMsg("q"))
	if !model.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if model.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestNewSSHServerNeedsLevels(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected error without levels")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, b := newTestSession(t), newTestSession(t)
	if a.ID() == b.ID() {
		t.Error("session IDs should differ")
	}
}
