package sokoban

import "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StatePaused      GameStateType = "paused"
	StateFinished    GameStateType = "finished"
	StateLoadFailure GameStateType = "load_failure"
)

// BoxSnapshot is one box in a snapshot.
type BoxSnapshot struct {
	ID      engine.EntityID
	At      engine.Coord
	Colour  string
	OnSpot  bool
	Correct bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Level   string
	Moves   uint64
	Phase   string
	State   GameStateType
	Player  engine.Coord
	Boxes   []BoxSnapshot
	Board   string // map tokens of the current layout
	Reports uint64 // HUD reports received on this level
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.finished:
		state = StateFinished
	case g.loadErr != nil:
		state = StateLoadFailure
	case g.paused:
		state = StatePaused
	case g.state.Phase == engine.PhaseWon:
		state = StateWon
	}

	snap := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.level.ID,
		Moves:   g.state.MovesCount,
		Phase:   g.state.Phase.String(),
		State:   state,
		Reports: g.hud.reports,
	}
	if g.world == nil {
		return snap
	}

	if p, ok := g.world.Player(); ok {
		snap.Player = p.Pos.Coord()
	}
	for _, e := range g.world.Entities() {
		if e.Kind != engine.KindBox {
			continue
		}
		b := BoxSnapshot{ID: e.ID, At: e.Pos.Coord(), Colour: e.Colour.String()}
		if spot, ok := g.world.SpotAt(e.Pos.Coord()); ok {
			b.OnSpot = true
			b.Correct = spot.Colour == e.Colour
		}
		snap.Boxes = append(snap.Boxes, b)
	}
	snap.Board = engine.FormatMap(g.world)
	return snap
}
