package engine

// GridIndex maps tile coordinates to the movable and immovable entity on
// each tile. It is rebuilt from the World every tick and never cached.
type GridIndex struct {
	Movable   map[Coord]EntityID
	Immovable map[Coord]EntityID
}

// BuildIndex projects the world's entities into a GridIndex. Z is ignored.
// Entities that are neither movable nor immovable (spots) are skipped.
func BuildIndex(w *World) GridIndex {
	idx := GridIndex{
		Movable:   make(map[Coord]EntityID, w.Len()),
		Immovable: make(map[Coord]EntityID, w.Len()),
	}
	for _, e := range w.Entities() {
		switch {
		case e.Movable:
			idx.Movable[e.Pos.Coord()] = e.ID
		case e.Immovable:
			idx.Immovable[e.Pos.Coord()] = e.ID
		}
	}
	return idx
}

// MovableAt returns the movable entity on the tile.
func (g GridIndex) MovableAt(c Coord) (EntityID, bool) {
	id, ok := g.Movable[c]
	return id, ok
}

// ImmovableAt returns the immovable entity on the tile.
func (g GridIndex) ImmovableAt(c Coord) (EntityID, bool) {
	id, ok := g.Immovable[c]
	return id, ok
}
