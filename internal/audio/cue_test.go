package audio

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

type recordingPlayer struct {
	cues []Cue
}

func (p *recordingPlayer) Play(c Cue) {
	p.cues = append(p.cues, c)
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   engine.MoveEvent
		cue  Cue
		ok   bool
	}{
		{"obstacle", engine.PlayerHitObstacle{}, CueWall, true},
		{"correct spot", engine.BoxPlacedOnSpot{IsCorrectSpot: true}, CueCorrect, true},
		{"wrong spot", engine.BoxPlacedOnSpot{IsCorrectSpot: false}, CueIncorrect, true},
		{"plain move", engine.EntityMoved{ID: 3}, CueNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, ok := CueFor(tt.ev)
			if cue != tt.cue || ok != tt.ok {
				t.Errorf("CueFor(%v) = %v, %v; want %v, %v", tt.ev, cue, ok, tt.cue, tt.ok)
			}
		})
	}
}

func TestDispatcherThroughEngine(t *testing.T) {
	w, err := engine.ParseMap(`
W W W W W W
W P RB BS . W
W W W W W W
`, 0)
	if err != nil {
		t.Fatal(err)
	}

	player := &recordingPlayer{}
	e, err := engine.New(w, nil, engine.WithListener(NewDispatcher(player, nil)))
	if err != nil {
		t.Fatal(err)
	}

	// onto the blue spot with a red box, then off it, then into the wall
	for _, dir := range []engine.Direction{engine.DirRight, engine.DirRight, engine.DirRight, engine.DirUp} {
		if _, err := e.Tick(engine.Press(dir)); err != nil {
			t.Fatal(err)
		}
	}

	want := []Cue{CueIncorrect, CueWall, CueWall}
	if len(player.cues) != len(want) {
		t.Fatalf("cues = %v, want %v", player.cues, want)
	}
	for i := range want {
		if player.cues[i] != want[i] {
			t.Errorf("cue %d = %v, want %v", i, player.cues[i], want[i])
		}
	}
}

func TestDispatcherNilPlayer(t *testing.T) {
	d := NewDispatcher(nil, nil)
	d.HandleMoveEvent(&engine.TickContext{}, engine.PlayerHitObstacle{})
}

func TestCueString(t *testing.T) {
	names := map[Cue]string{CueNone: "none", CueWall: "wall", CueCorrect: "correct", CueIncorrect: "incorrect"}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("%d.String() = %q, want %q", c, c.String(), want)
		}
	}
}
