package engine

import (
	"errors"
	"fmt"
)

// MoveEvent is a semantic event raised while resolving a tick.
type MoveEvent interface {
	moveEvent()
	String() string
}

// PlayerHitObstacle is raised when a push is blocked.
type PlayerHitObstacle struct{}

func (PlayerHitObstacle) moveEvent() {}

func (PlayerHitObstacle) String() string { return "PlayerHitObstacle" }

// EntityMoved is raised once per entity shifted by a push.
type EntityMoved struct {
	ID EntityID
}

func (EntityMoved) moveEvent() {}

func (e EntityMoved) String() string { return fmt.Sprintf("EntityMoved{%d}", e.ID) }

// BoxPlacedOnSpot is raised when a moved box lands on a spot.
type BoxPlacedOnSpot struct {
	IsCorrectSpot bool
}

func (BoxPlacedOnSpot) moveEvent() {}

func (e BoxPlacedOnSpot) String() string {
	return fmt.Sprintf("BoxPlacedOnSpot{correct=%t}", e.IsCorrectSpot)
}

// ErrLateListener is returned when a reader registers after the log has
// started delivering events.
var ErrLateListener = errors.New("listener registered after first tick")

// ReaderID is a per-listener cursor handle into an EventLog.
type ReaderID int

// EventLog is an append-only, per-tick broadcast log. Every registered
// reader has its own cursor, so each reader sees every event exactly once
// and in emission order. The log is cleared at tick boundaries.
type EventLog struct {
	events  []MoveEvent
	cursors []int
	sealed  bool
}

// RegisterReader allocates a cursor. Registration closes once Seal is called.
func (l *EventLog) RegisterReader() (ReaderID, error) {
	if l.sealed {
		return 0, ErrLateListener
	}
	l.cursors = append(l.cursors, 0)
	return ReaderID(len(l.cursors) - 1), nil
}

// Seal closes reader registration.
func (l *EventLog) Seal() {
	l.sealed = true
}

// Emit appends an event.
func (l *EventLog) Emit(ev MoveEvent) {
	l.events = append(l.events, ev)
}

// Read returns the events the reader has not seen yet and advances its cursor.
// Reading with an unregistered ReaderID is a programming error and panics.
func (l *EventLog) Read(id ReaderID) []MoveEvent {
	cur := l.cursor(id)
	if cur == len(l.events) {
		return nil
	}
	out := make([]MoveEvent, len(l.events)-cur)
	copy(out, l.events[cur:])
	l.cursors[id] = len(l.events)
	return out
}

// Pending returns how many events the reader has not consumed.
func (l *EventLog) Pending(id ReaderID) int {
	return len(l.events) - l.cursor(id)
}

// Drained reports whether every reader has consumed every event.
func (l *EventLog) Drained() bool {
	for i := range l.cursors {
		if l.Pending(ReaderID(i)) > 0 {
			return false
		}
	}
	return true
}

// Events returns a copy of the events emitted since the last Reset.
func (l *EventLog) Events() []MoveEvent {
	out := make([]MoveEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of events emitted since the last Reset.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Reset clears the log and rewinds every cursor.
func (l *EventLog) Reset() {
	l.events = l.events[:0]
	for i := range l.cursors {
		l.cursors[i] = 0
	}
}

func (l *EventLog) cursor(id ReaderID) int {
	if id < 0 || int(id) >= len(l.cursors) {
		panic(fmt.Sprintf("engine: unregistered event reader %d", id))
	}
	return l.cursors[id]
}
