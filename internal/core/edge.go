package core

import "time"

// DefaultHold covers the usual terminal auto-repeat delay (about 500ms)
// plus some slack for the repeat cadence.
const DefaultHold = 600 * time.Millisecond

// HoldTicks converts a hold window to whole ticks at the given tick rate,
// rounding up. Non-positive arguments fall back to DefaultHold and the
// default tick rate.
func HoldTicks(hold time.Duration, tickRate int) int {
	if hold <= 0 {
		hold = DefaultHold
	}
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	n := (hold*time.Duration(tickRate) + time.Second - 1) / time.Second
	return max(int(n), 1)
}

// EdgeDetector turns raw key presses into press edges by diffing the
// previous frame's held keys against this frame's presses.
//
// Terminals only report presses; auto-repeat arrives as more presses. A key
// stays held for HoldTicks frames after its last press, so repeats inside
// that window are not edges. Two taps of the same key closer together than
// the window merge into one edge. With AllowRepeat every press is an edge.
type EdgeDetector struct {
	HoldTicks   int
	AllowRepeat bool

	held map[Action]int
}

// NewEdgeDetector creates a detector whose hold window lasts hold at the
// given tick rate.
func NewEdgeDetector(hold time.Duration, tickRate int, allowRepeat bool) *EdgeDetector {
	return &EdgeDetector{
		HoldTicks:   HoldTicks(hold, tickRate),
		AllowRepeat: allowRepeat,
		held:        make(map[Action]int),
	}
}

// Frame consumes the presses of one tick and returns the actions that are
// fresh edges. Call it exactly once per tick, with an empty frame when
// nothing was pressed, so held keys can expire.
func (d *EdgeDetector) Frame(pressed InputFrame) InputFrame {
	if d.held == nil {
		d.held = make(map[Action]int)
	}
	hold := d.HoldTicks
	if hold <= 0 {
		hold = HoldTicks(DefaultHold, 0)
	}

	edges := NewInputFrame()
	for a, down := range pressed.Actions {
		if !down {
			continue
		}
		if d.AllowRepeat || d.held[a] == 0 {
			edges.Set(a)
		}
	}

	for a := range d.held {
		if !pressed.Has(a) {
			d.held[a]--
			if d.held[a] <= 0 {
				delete(d.held, a)
			}
		}
	}
	for a, down := range pressed.Actions {
		if down {
			d.held[a] = hold
		}
	}
	return edges
}

// Held reports whether the action is currently considered held.
func (d *EdgeDetector) Held(a Action) bool {
	return d.held[a] > 0
}

// Reset forgets every held key.
func (d *EdgeDetector) Reset() {
	for a := range d.held {
		delete(d.held, a)
	}
}
