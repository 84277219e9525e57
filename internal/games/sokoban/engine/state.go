package engine

// Phase is the puzzle completion state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
)

// String returns the phase as shown to the player.
func (p Phase) String() string {
	if p == PhaseWon {
		return "Won"
	}
	return "Playing"
}

// GameplayState is owned by whoever drives the ticks and passed to the
// Engine by reference.
type GameplayState struct {
	MovesCount uint64
	Phase      Phase
}

// DetectWin reports Won when every box spot is covered by some box.
// Colours are not compared here; only the per-move placement event cares
// about them.
func DetectWin(w *World) Phase {
	boxes := make(map[Coord]EntityID)
	for _, e := range w.Entities() {
		if e.Kind == KindBox {
			boxes[e.Pos.Coord()] = e.ID
		}
	}

	for _, e := range w.Entities() {
		if e.Kind != KindBoxSpot {
			continue
		}
		if _, ok := boxes[e.Pos.Coord()]; !ok {
			return PhasePlaying
		}
	}
	return PhaseWon
}

// CorrectPlacements counts boxes resting on a spot of their own colour.
func CorrectPlacements(w *World) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Kind != KindBox {
			continue
		}
		if spot, ok := w.SpotAt(e.Pos.Coord()); ok && spot.Colour == e.Colour {
			n++
		}
	}
	return n
}
