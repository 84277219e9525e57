// Package engine implements the Sokoban movement core: grid indexing, push
// resolution, position mutation, move events and win detection.
// It has no terminal or audio dependencies; collaborators plug in through
// the Listener and Reporter interfaces.
package engine

import "fmt"

// EntityID identifies an entity in a World arena.
type EntityID uint32

// Kind is the role an entity plays on the board.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindBox
	KindBoxSpot
	KindWall
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBox:
		return "box"
	case KindBoxSpot:
		return "spot"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Colour is the colour of a box or a box spot.
type Colour uint8

const (
	ColourNone Colour = iota
	ColourRed
	ColourBlue
)

// String returns the colour name.
func (c Colour) String() string {
	switch c {
	case ColourRed:
		return "red"
	case ColourBlue:
		return "blue"
	default:
		return "none"
	}
}

// Render layers, lowest drawn first.
const (
	LayerFloor = 5
	LayerSpot  = 9
	LayerTop   = 10
)

// Coord is a tile coordinate. Y grows downward.
type Coord struct {
	X int
	Y int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Position places an entity on the grid. Z only orders rendering.
type Position struct {
	X int
	Y int
	Z int
}

// Coord drops the render layer.
func (p Position) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

// Transform is the visual placement of an entity: the tile centre scaled
// by the tile size.
type Transform struct {
	X float64
	Y float64
	Z float64
}

// TransformFor returns the transform of a tile-aligned position.
func TransformFor(p Position, tileSize float64) Transform {
	return Transform{
		X: float64(p.X)*tileSize + 0.5*tileSize,
		Y: float64(p.Y)*tileSize + 0.5*tileSize,
		Z: float64(p.Z),
	}
}

// Entity is a tagged record stored in the World arena.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Colour    Colour
	Pos       Position
	Transform Transform
	Movable   bool
	Immovable bool
}

// IsBox reports whether the entity is a box.
func (e Entity) IsBox() bool { return e.Kind == KindBox }

// World owns every entity of a loaded level. Entity IDs index the arena.
type World struct {
	Width    int
	Height   int
	TileSize float64

	entities []Entity
	floor    map[Coord]bool
	player   EntityID
	hasPlay  bool
}

// NewWorld creates an empty world of the given size.
func NewWorld(width, height int, tileSize float64) *World {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &World{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		floor:    make(map[Coord]bool),
	}
}

// DefaultTileSize is the transform scale used when none is configured.
const DefaultTileSize = 32.0

// Spawn places a new entity and returns its ID. Movable and Immovable
// capabilities follow from the kind.
func (w *World) Spawn(kind Kind, colour Colour, x, y int) EntityID {
	id := EntityID(len(w.entities))
	z := LayerTop
	if kind == KindBoxSpot {
		z = LayerSpot
	}
	pos := Position{X: x, Y: y, Z: z}
	w.entities = append(w.entities, Entity{
		ID:        id,
		Kind:      kind,
		Colour:    colour,
		Pos:       pos,
		Transform: TransformFor(pos, w.TileSize),
		Movable:   kind == KindPlayer || kind == KindBox,
		Immovable: kind == KindWall,
	})
	if kind == KindPlayer && !w.hasPlay {
		w.player = id
		w.hasPlay = true
	}
	return id
}

// AddFloor marks a tile as floor. Floor only matters for rendering.
func (w *World) AddFloor(x, y int) {
	w.floor[Coord{X: x, Y: y}] = true
}

// IsFloor reports whether the tile has floor.
func (w *World) IsFloor(c Coord) bool {
	return w.floor[c]
}

// InBounds reports whether the coordinate lies on the map.
func (w *World) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < w.Width && c.Y >= 0 && c.Y < w.Height
}

// Entity returns the entity with the given ID, or nil.
func (w *World) Entity(id EntityID) *Entity {
	if int(id) >= len(w.entities) {
		return nil
	}
	return &w.entities[id]
}

// Entities returns the arena. Callers must not append to it.
func (w *World) Entities() []Entity {
	return w.entities
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Player returns the player entity.
func (w *World) Player() (*Entity, bool) {
	if !w.hasPlay {
		return nil, false
	}
	return &w.entities[w.player], true
}

// SpotAt returns the box spot on the given tile.
func (w *World) SpotAt(c Coord) (*Entity, bool) {
	for i := range w.entities {
		e := &w.entities[i]
		if e.Kind == KindBoxSpot && e.Pos.Coord() == c {
			return e, true
		}
	}
	return nil, false
}

// CountKind returns how many entities of the kind exist.
func (w *World) CountKind(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := &World{
		Width:    w.Width,
		Height:   w.Height,
		TileSize: w.TileSize,
		entities: make([]Entity, len(w.entities)),
		floor:    make(map[Coord]bool, len(w.floor)),
		player:   w.player,
		hasPlay:  w.hasPlay,
	}
	copy(c.entities, w.entities)
	for k, v := range w.floor {
		c.floor[k] = v
	}
	return c
}
