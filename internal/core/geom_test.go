package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"center", 20, 20, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"right edge (exclusive)", 30, 20, false},
		{"bottom edge (exclusive)", 20, 30, false},
		{"left of rect", 5, 20, false},
		{"above rect", 20, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name         string
		outerW, outH int
		w, h         int
		expected     Rect
	}{
		{"fits", 80, 24, 20, 10, Rect{X: 30, Y: 7, W: 20, H: 10}},
		{"exact", 10, 5, 10, 5, Rect{X: 0, Y: 0, W: 10, H: 5}},
		{"too big", 10, 5, 30, 9, Rect{X: 0, Y: 0, W: 30, H: 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CenteredRect(tc.outerW, tc.outH, tc.w, tc.h); got != tc.expected {
				t.Errorf("CenteredRect = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right, Bottom = %d, %d; want 6, 8", r.Right(), r.Bottom())
	}
}
