package engine

// TickContext is handed to listeners while the event log is drained.
type TickContext struct {
	Tick  uint64
	World *World
	log   *EventLog
}

// Emit appends a derived event to the current tick's log.
func (c *TickContext) Emit(ev MoveEvent) {
	c.log.Emit(ev)
}

// Listener consumes move events. Handlers run synchronously on the tick
// driver and must not block.
type Listener interface {
	HandleMoveEvent(ctx *TickContext, ev MoveEvent)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ctx *TickContext, ev MoveEvent)

// HandleMoveEvent calls f(ctx, ev).
func (f ListenerFunc) HandleMoveEvent(ctx *TickContext, ev MoveEvent) {
	f(ctx, ev)
}

// BoxPlacementClassifier derives BoxPlacedOnSpot from EntityMoved when the
// moved entity is a box that now shares its tile with a spot.
type BoxPlacementClassifier struct{}

// HandleMoveEvent implements Listener.
func (BoxPlacementClassifier) HandleMoveEvent(ctx *TickContext, ev MoveEvent) {
	moved, ok := ev.(EntityMoved)
	if !ok {
		return
	}
	box := ctx.World.Entity(moved.ID)
	if box == nil || !box.IsBox() {
		return
	}
	spot, ok := ctx.World.SpotAt(box.Pos.Coord())
	if !ok {
		return
	}
	ctx.Emit(BoxPlacedOnSpot{IsCorrectSpot: spot.Colour == box.Colour})
}
