package engine

// Move is one entity of a resolved chain shifting one tile.
type Move struct {
	Dir Direction
	ID  EntityID
}

// Resolution is the outcome of resolving one push.
// Blocked is set when a wall or the map edge stops the chain; Chain is then empty.
type Resolution struct {
	Dir     Direction
	Chain   []Move
	Blocked bool
}

// Moves reports whether the resolution shifts anything.
func (r Resolution) Moves() bool {
	return !r.Blocked && len(r.Chain) > 0
}

// IDs returns the chain's entity IDs in scan order.
func (r Resolution) IDs() []EntityID {
	ids := make([]EntityID, len(r.Chain))
	for i, m := range r.Chain {
		ids[i] = m.ID
	}
	return ids
}

// Resolve scans from the player's tile toward the map edge and collects the
// contiguous run of movable entities. The scan stops at the first tile with
// nothing movable on it: an immovable there, or running off the map, blocks
// the whole push; an empty tile ends the chain.
func Resolve(w *World, idx GridIndex, from Coord, dir Direction) Resolution {
	res := Resolution{Dir: dir}
	if !dir.Valid() {
		res.Blocked = true
		return res
	}

	for c := from; ; c = c.Step(dir) {
		if !w.InBounds(c) {
			res.Chain = nil
			res.Blocked = true
			return res
		}
		if id, ok := idx.MovableAt(c); ok {
			res.Chain = append(res.Chain, Move{Dir: dir, ID: id})
			continue
		}
		if _, ok := idx.ImmovableAt(c); ok {
			res.Chain = nil
			res.Blocked = true
			return res
		}
		return res
	}
}
