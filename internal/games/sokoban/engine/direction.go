package engine

// Direction is a push direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirRight
	DirLeft
)

// Delta returns the unit step for the direction. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four push directions.
func (d Direction) Valid() bool {
	return d <= DirLeft
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
