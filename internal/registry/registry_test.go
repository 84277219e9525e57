package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

type stubGame struct {
	id    string
	start string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{Level: g.start} }

func TestRegisterCreate(t *testing.T) {
	Register("zz_stub", "Stub Game", func(o Options) Game {
		return &stubGame{id: "zz_stub", start: o.StartLevel}
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub", Options{StartLevel: "03"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.State().Level != "03" {
		t.Errorf("options not passed to factory: %+v", g.State())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub Game"
		}
	}
	if !found {
		t.Error("List should include the stub with its title")
	}

	if _, err := Create("nope", Options{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(nope) = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func(Options) Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", "Dup", func(Options) Game { return &stubGame{} })
}
