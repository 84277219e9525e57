// Package audio turns move events into sound cues. The dispatcher is an
// engine listener; playback is fire-and-forget and never blocks a tick.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

// Cue is a sound played in response to a move event.
type Cue int

const (
	CueNone Cue = iota
	CueWall
	CueCorrect
	CueIncorrect
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueWall:
		return "wall"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// CueFor maps a move event to its cue. EntityMoved has no cue.
func CueFor(ev engine.MoveEvent) (Cue, bool) {
	switch e := ev.(type) {
	case engine.PlayerHitObstacle:
		return CueWall, true
	case engine.BoxPlacedOnSpot:
		if e.IsCorrectSpot {
			return CueCorrect, true
		}
		return CueIncorrect, true
	}
	return CueNone, false
}

// Player plays cues. Implementations must return immediately.
type Player interface {
	Play(c Cue)
}

// Dispatcher is the engine listener that forwards cue-worthy events to a Player.
type Dispatcher struct {
	player Player
	logger *log.Logger
}

// NewDispatcher creates a dispatcher. A nil player drops every cue.
func NewDispatcher(p Player, logger *log.Logger) *Dispatcher {
	return &Dispatcher{player: p, logger: logger}
}

// HandleMoveEvent implements engine.Listener.
func (d *Dispatcher) HandleMoveEvent(ctx *engine.TickContext, ev engine.MoveEvent) {
	cue, ok := CueFor(ev)
	if !ok || d.player == nil {
		return
	}
	if d.logger != nil {
		d.logger.Debug("cue", "tick", ctx.Tick, "cue", cue)
	}
	d.player.Play(cue)
}

var _ engine.Listener = (*Dispatcher)(nil)
