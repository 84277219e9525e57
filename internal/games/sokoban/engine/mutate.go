package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity is returned when a chain names an entity the world does not hold.
var ErrUnknownEntity = errors.New("unknown entity")

// Apply shifts every entity of a resolved chain by one tile, updating both
// its Position and its Transform. Either the whole chain moves or nothing
// does. It returns the moved IDs in chain order.
func Apply(w *World, res Resolution) ([]EntityID, error) {
	if !res.Moves() {
		return nil, nil
	}

	for _, m := range res.Chain {
		if w.Entity(m.ID) == nil {
			return nil, fmt.Errorf("apply %s push: %w: %d", res.Dir, ErrUnknownEntity, m.ID)
		}
	}

	moved := make([]EntityID, 0, len(res.Chain))
	for _, m := range res.Chain {
		e := w.Entity(m.ID)
		dx, dy := m.Dir.Delta()
		e.Pos.X += dx
		e.Pos.Y += dy
		e.Transform.X += float64(dx) * w.TileSize
		e.Transform.Y += float64(dy) * w.TileSize
		moved = append(moved, m.ID)
	}
	return moved, nil
}
