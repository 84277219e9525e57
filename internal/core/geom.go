// Package core holds the platform types shared by games and the terminal
// front end: input frames, the screen buffer and runtime configuration.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredRect returns a w×h rectangle centered inside an outer area,
// pinned to the origin when it does not fit.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{
		X: max(0, (outerW-w)/2),
		Y: max(0, (outerH-h)/2),
		W: w,
		H: h,
	}
}
