package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Reporter receives the gameplay state once per tick.
type Reporter interface {
	Report(state GameplayState)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(state GameplayState)

// Report calls f(state).
func (f ReporterFunc) Report(state GameplayState) { f(state) }

// Input is the directional signal for one tick. Valid is false when no
// fresh key-press edge arrived this tick.
type Input struct {
	Direction Direction
	Valid     bool
}

// NoInput is a tick without a direction edge.
var NoInput = Input{}

// Press returns an input carrying one direction edge.
func Press(d Direction) Input {
	return Input{Direction: d, Valid: true}
}

// TickResult summarises one tick.
type TickResult struct {
	Tick       uint64
	Resolution Resolution
	Moved      []EntityID
	Events     []MoveEvent
	State      GameplayState
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger logs every resolved push at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithReporter sets the UI reporter.
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// WithListener registers a listener at construction time.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.pending = append(e.pending, l) }
}

type boundListener struct {
	listener Listener
	reader   ReaderID
}

// Engine is the tick driver. It owns the event log and runs the pipeline
// in a fixed order: index, resolve, mutate, emit, drain listeners, detect
// win, report. It is not safe for concurrent use.
type Engine struct {
	world     *World
	state     *GameplayState
	log       EventLog
	listeners []boundListener
	pending   []Listener
	reporter  Reporter
	logger    *log.Logger
	tick      uint64
}

// New creates a tick driver over world. The state is owned by the caller
// and mutated in place; a nil state gets a fresh one.
func New(world *World, state *GameplayState, opts ...Option) (*Engine, error) {
	if state == nil {
		state = &GameplayState{}
	}
	e := &Engine{world: world, state: state}
	for _, opt := range opts {
		opt(e)
	}

	// the classifier reads first so its derived events reach every other listener
	if err := e.AddListener(BoxPlacementClassifier{}); err != nil {
		return nil, err
	}

	pending := e.pending
	e.pending = nil
	for _, l := range pending {
		if err := e.AddListener(l); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// AddListener registers a listener with its own read cursor. Listeners must
// be added before the first tick.
func (e *Engine) AddListener(l Listener) error {
	id, err := e.log.RegisterReader()
	if err != nil {
		return fmt.Errorf("add listener %T: %w", l, err)
	}
	e.listeners = append(e.listeners, boundListener{listener: l, reader: id})
	return nil
}

// World returns the world the engine mutates.
func (e *Engine) World() *World {
	return e.world
}

// State returns a copy of the gameplay state.
func (e *Engine) State() GameplayState {
	return *e.state
}

// Ticks returns how many ticks have run.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// Tick runs one simulation step. At most one push is resolved.
func (e *Engine) Tick(in Input) (TickResult, error) {
	e.log.Seal()
	e.tick++
	result := TickResult{Tick: e.tick}

	if in.Valid {
		res, moved, err := e.push(in.Direction)
		if err != nil {
			e.log.Reset()
			return result, err
		}
		result.Resolution = res
		result.Moved = moved
	}

	e.drain()

	e.state.Phase = DetectWin(e.world)
	if e.reporter != nil {
		e.reporter.Report(*e.state)
	}

	result.Events = e.log.Events()
	result.State = *e.state
	e.log.Reset()
	return result, nil
}

func (e *Engine) push(dir Direction) (Resolution, []EntityID, error) {
	player, ok := e.world.Player()
	if !ok {
		return Resolution{Dir: dir}, nil, ErrNoPlayer
	}

	idx := BuildIndex(e.world)
	res := Resolve(e.world, idx, player.Pos.Coord(), dir)

	if res.Blocked {
		e.log.Emit(PlayerHitObstacle{})
		e.debug("push blocked", "dir", dir, "from", player.Pos.Coord())
		return res, nil, nil
	}

	moved, err := Apply(e.world, res)
	if err != nil {
		return res, nil, err
	}
	if len(moved) > 0 {
		e.state.MovesCount++
	}
	for _, id := range moved {
		e.log.Emit(EntityMoved{ID: id})
	}
	e.debug("push resolved", "dir", dir, "chain", res.IDs(), "moves", e.state.MovesCount)
	return res, moved, nil
}

// drain hands every event to every listener until all cursors reach the end
// of the log. Listeners may append derived events during a pass.
func (e *Engine) drain() {
	ctx := &TickContext{Tick: e.tick, World: e.world, log: &e.log}
	for !e.log.Drained() {
		for _, bl := range e.listeners {
			for _, ev := range e.log.Read(bl.reader) {
				bl.listener.HandleMoveEvent(ctx, ev)
			}
		}
	}
}

func (e *Engine) debug(msg string, keyvals ...interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}
