package core

import (
	"testing"
	"time"
)

func frameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestEdgeDetectorHeldKey(t *testing.T) {
	d := &EdgeDetector{HoldTicks: 3}

	steps := []struct {
		pressed []Action
		edge    bool
	}{
		{[]Action{ActionRight}, true},  // fresh press
		{[]Action{ActionRight}, false}, // auto-repeat
		{nil, false},
		{[]Action{ActionRight}, false}, // still within hold window
		{nil, false},
		{nil, false},
		{nil, false}, // released
		{[]Action{ActionRight}, true},
	}

	for i, s := range steps {
		edges := d.Frame(frameOf(s.pressed...))
		if got := edges.Has(ActionRight); got != s.edge {
			t.Errorf("step %d: edge = %v, want %v", i, got, s.edge)
		}
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		name     string
		hold     time.Duration
		tickRate int
		want     int
	}{
		{"default at 30fps", DefaultHold, 30, 18},
		{"rounds up", 50 * time.Millisecond, 30, 2},
		{"at least one tick", time.Millisecond, 10, 1},
		{"zero hold uses default", 0, 60, 36},
		{"zero rate uses default", DefaultHold, 0, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoldTicks(tt.hold, tt.tickRate); got != tt.want {
				t.Errorf("HoldTicks(%v, %d) = %d, want %d", tt.hold, tt.tickRate, got, tt.want)
			}
		})
	}
}

// A key held down for 1.5s at 30 ticks/s: one press, then terminal
// auto-repeat after 500ms, one repeat per tick.
func TestEdgeDetectorTerminalRepeat(t *testing.T) {
	d := NewEdgeDetector(DefaultHold, 30, false)

	edges := 0
	for tick := 0; tick < 45; tick++ {
		var f InputFrame
		if tick == 0 || tick >= 15 {
			f = frameOf(ActionRight)
		} else {
			f = frameOf()
		}
		if d.Frame(f).Has(ActionRight) {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("held key produced %d edges, want 1", edges)
	}

	// released long enough, the next press is fresh
	for tick := 0; tick < d.HoldTicks; tick++ {
		d.Frame(frameOf())
	}
	if !d.Frame(frameOf(ActionRight)).Has(ActionRight) {
		t.Error("press after the hold window should be an edge")
	}
}

// Taps closer together than the hold window merge into one edge.
func TestEdgeDetectorFastTapsMerge(t *testing.T) {
	d := NewEdgeDetector(DefaultHold, 30, false)

	edges := 0
	for tick := 0; tick < 10; tick++ {
		var f InputFrame
		if tick == 0 || tick == 4 {
			f = frameOf(ActionLeft)
		} else {
			f = frameOf()
		}
		if d.Frame(f).Has(ActionLeft) {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("fast taps produced %d edges, want 1", edges)
	}
}

func TestEdgeDetectorAllowRepeat(t *testing.T) {
	d := &EdgeDetector{HoldTicks: 3, AllowRepeat: true}
	for i := 0; i < 4; i++ {
		if !d.Frame(frameOf(ActionUp)).Has(ActionUp) {
			t.Errorf("press %d should be an edge with repeat allowed", i)
		}
	}
}

func TestEdgeDetectorIndependentKeys(t *testing.T) {
	d := &EdgeDetector{HoldTicks: 5}
	d.Frame(frameOf(ActionUp))

	edges := d.Frame(frameOf(ActionUp, ActionLeft))
	if edges.Has(ActionUp) {
		t.Error("held Up should not be an edge")
	}
	if !edges.Has(ActionLeft) {
		t.Error("new Left should be an edge")
	}
	if !d.Held(ActionUp) || !d.Held(ActionLeft) {
		t.Error("both keys should be held")
	}

	d.Reset()
	if d.Held(ActionUp) {
		t.Error("Reset should release every key")
	}
	if !d.Frame(frameOf(ActionUp)).Has(ActionUp) {
		t.Error("press after Reset should be an edge")
	}
}

func TestEdgeDetectorZeroValue(t *testing.T) {
	var d EdgeDetector
	if !d.Frame(frameOf(ActionDown)).Has(ActionDown) {
		t.Error("zero-value detector should report the first press")
	}
	if d.Frame(frameOf(ActionDown)).Has(ActionDown) {
		t.Error("zero-value detector should use the default hold window")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Action
		ok      bool
	}{
		{"none", nil, ActionNone, false},
		{"only confirm", []Action{ActionConfirm}, ActionNone, false},
		{"single", []Action{ActionLeft}, ActionLeft, true},
		{"up wins over right", []Action{ActionRight, ActionUp}, ActionUp, true},
		{"down wins over left", []Action{ActionLeft, ActionDown}, ActionDown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := frameOf(tt.actions...).Direction()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Direction() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInputFrameEmpty(t *testing.T) {
	if !NewInputFrame().Empty() {
		t.Error("new frame should be empty")
	}
	f := frameOf(ActionPause)
	if f.Empty() {
		t.Error("frame with an action is not empty")
	}
	clone := f.Clone()
	f.Clear()
	if !f.Empty() || !clone.Has(ActionPause) {
		t.Error("Clear should not affect a clone")
	}
}
