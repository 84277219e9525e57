package engine

import (
	"errors"
	"testing"
)

const firstPush = `
W W W W W
W P RB RS W
W W W W W
`

type recorder struct {
	events []MoveEvent
}

func (r *recorder) HandleMoveEvent(_ *TickContext, ev MoveEvent) {
	r.events = append(r.events, ev)
}

func mustParse(t *testing.T, text string) *World {
	t.Helper()
	w, err := ParseMap(text, DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	return w
}

func mustEngine(t *testing.T, w *World, opts ...Option) (*Engine, *GameplayState) {
	t.Helper()
	state := &GameplayState{}
	e, err := New(w, state, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, state
}

func firstBox(t *testing.T, w *World) *Entity {
	t.Helper()
	for _, e := range w.Entities() {
		if e.Kind == KindBox {
			return w.Entity(e.ID)
		}
	}
	t.Fatal("no box in world")
	return nil
}

func positions(w *World) map[EntityID]Position {
	out := make(map[EntityID]Position, w.Len())
	for _, e := range w.Entities() {
		out[e.ID] = e.Pos
	}
	return out
}

func TestPushBoxOntoMatchingSpotWins(t *testing.T) {
	w := mustParse(t, firstPush)
	rec := &recorder{}
	e, state := mustEngine(t, w, WithListener(rec))

	player, _ := w.Player()
	box := firstBox(t, w)
	playerID, boxID := player.ID, box.ID

	res, err := e.Tick(Press(DirRight))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if got := w.Entity(playerID).Pos.Coord(); got != (Coord{X: 2, Y: 1}) {
		t.Errorf("player at %v, want (2,1)", got)
	}
	if got := w.Entity(boxID).Pos.Coord(); got != (Coord{X: 3, Y: 1}) {
		t.Errorf("box at %v, want (3,1)", got)
	}

	want := []MoveEvent{
		EntityMoved{ID: playerID},
		EntityMoved{ID: boxID},
		BoxPlacedOnSpot{IsCorrectSpot: true},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("listener saw %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.events[i], want[i])
		}
	}

	if state.Phase != PhaseWon {
		t.Errorf("phase = %v, want Won", state.Phase)
	}
	if state.MovesCount != 1 {
		t.Errorf("moves = %d, want 1", state.MovesCount)
	}
	if res.State != *state {
		t.Errorf("result state %+v differs from owned state %+v", res.State, *state)
	}
}

func TestMismatchedColourStillWins(t *testing.T) {
	w := mustParse(t, `
W W W W W
W P BB RS W
W W W W W
`)
	rec := &recorder{}
	e, state := mustEngine(t, w, WithListener(rec))

	if _, err := e.Tick(Press(DirRight)); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	var placed []BoxPlacedOnSpot
	for _, ev := range rec.events {
		if p, ok := ev.(BoxPlacedOnSpot); ok {
			placed = append(placed, p)
		}
	}
	if len(placed) != 1 || placed[0].IsCorrectSpot {
		t.Fatalf("placements = %v, want one incorrect placement", placed)
	}
	if state.Phase != PhaseWon {
		t.Errorf("phase = %v, want Won (win check ignores colour)", state.Phase)
	}
	if got := CorrectPlacements(w); got != 0 {
		t.Errorf("CorrectPlacements = %d, want 0", got)
	}
}

func TestBoxAgainstWallAborts(t *testing.T) {
	w := mustParse(t, `
W W W W W
W P RB W RS
W W W W W
`)
	rec := &recorder{}
	e, state := mustEngine(t, w, WithListener(rec))
	before := positions(w)

	res, err := e.Tick(Press(DirRight))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if !res.Resolution.Blocked {
		t.Error("resolution should be blocked")
	}
	for id, pos := range positions(w) {
		if before[id] != pos {
			t.Errorf("entity %d moved from %+v to %+v", id, before[id], pos)
		}
	}
	if len(rec.events) != 1 || rec.events[0] != (PlayerHitObstacle{}) {
		t.Errorf("events = %v, want one PlayerHitObstacle", rec.events)
	}
	if state.MovesCount != 0 {
		t.Errorf("moves = %d, want 0", state.MovesCount)
	}
	if state.Phase != PhasePlaying {
		t.Errorf("phase = %v, want Playing", state.Phase)
	}
}

func TestEmptyDestinationMovesOnlyPlayer(t *testing.T) {
	w := mustParse(t, `
W W W W W W
W . P . RB W
W . . . RS W
W W W W W W
`)
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			world := w.Clone()
			e, state := mustEngine(t, world)
			player, _ := world.Player()
			start := player.Pos.Coord()

			res, err := e.Tick(Press(dir))
			if err != nil {
				t.Fatalf("Tick: %v", err)
			}

			if dir == DirUp {
				if !res.Resolution.Blocked {
					t.Fatal("pushing into the top wall should block")
				}
				return
			}
			if len(res.Moved) != 1 || res.Moved[0] != player.ID {
				t.Fatalf("moved = %v, want only player %d", res.Moved, player.ID)
			}
			if got, want := player.Pos.Coord(), start.Step(dir); got != want {
				t.Errorf("player at %v, want %v", got, want)
			}
			if state.MovesCount != 1 {
				t.Errorf("moves = %d, want 1", state.MovesCount)
			}
		})
	}
}

func TestMapEdgeBlocksLikeWall(t *testing.T) {
	w := mustParse(t, "P RB RB\n. . RS")
	rec := &recorder{}
	e, state := mustEngine(t, w, WithListener(rec))
	before := positions(w)

	res, err := e.Tick(Press(DirRight))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.Resolution.Blocked {
		t.Fatal("push off the map edge should block")
	}
	for id, pos := range positions(w) {
		if before[id] != pos {
			t.Errorf("entity %d moved", id)
		}
	}
	if len(rec.events) != 1 {
		t.Errorf("events = %v, want one obstacle", rec.events)
	}
	if state.MovesCount != 0 {
		t.Errorf("moves = %d, want 0", state.MovesCount)
	}

	res, err = e.Tick(Press(DirLeft))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.Resolution.Blocked {
		t.Error("player on column 0 pushing left should block")
	}
}

func TestMovesCountOnlyCountsMoves(t *testing.T) {
	w := mustParse(t, `
W W W W W W W
W P . RB . RS W
W W W W W W W
`)
	e, state := mustEngine(t, w)

	steps := []struct {
		in    Input
		moves uint64
	}{
		{NoInput, 0},
		{Press(DirUp), 0},
		{Press(DirRight), 1},
		{NoInput, 1},
		{Press(DirRight), 2},
		{Press(DirRight), 3},
		{Press(DirRight), 3},
		{Press(DirLeft), 4},
	}
	for i, s := range steps {
		res, err := e.Tick(s.in)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if state.MovesCount != s.moves {
			t.Errorf("step %d: moves = %d, want %d", i, state.MovesCount, s.moves)
		}
		if res.Tick != uint64(i+1) {
			t.Errorf("step %d: tick = %d", i, res.Tick)
		}
	}
	if state.Phase != PhaseWon {
		t.Errorf("phase = %v, want Won after box reached spot", state.Phase)
	}
}

func TestChainMovesAsOne(t *testing.T) {
	w := mustParse(t, `
W W W W W W W
W P RB BB . . W
W RS BS . . . W
W W W W W W W
`)
	e, _ := mustEngine(t, w)
	before := positions(w)

	res, err := e.Tick(Press(DirRight))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(res.Moved) != 3 {
		t.Fatalf("moved %d entities, want 3", len(res.Moved))
	}
	for _, id := range res.Moved {
		got := w.Entity(id)
		if got.Pos.X != before[id].X+1 || got.Pos.Y != before[id].Y {
			t.Errorf("entity %d at %+v, want one tile right of %+v", id, got.Pos, before[id])
		}
		wantT := TransformFor(got.Pos, w.TileSize)
		if got.Transform != wantT {
			t.Errorf("entity %d transform %+v, want %+v", id, got.Transform, wantT)
		}
	}

	idx := BuildIndex(w)
	if len(idx.Movable) != 3 {
		t.Errorf("index holds %d movables, want 3 distinct tiles", len(idx.Movable))
	}
}

func TestResolveOrder(t *testing.T) {
	w := mustParse(t, "P RB BB .")
	player, _ := w.Player()
	res := Resolve(w, BuildIndex(w), player.Pos.Coord(), DirRight)
	if res.Blocked {
		t.Fatal("unexpected block")
	}
	ids := res.IDs()
	if len(ids) != 3 || ids[0] != player.ID {
		t.Fatalf("chain = %v, want player first then two boxes", ids)
	}
	for _, m := range res.Chain {
		if m.Dir != DirRight {
			t.Errorf("move %v has wrong direction", m)
		}
	}
}

func TestResolveInvalidDirection(t *testing.T) {
	w := mustParse(t, "P .")
	player, _ := w.Player()
	res := Resolve(w, BuildIndex(w), player.Pos.Coord(), Direction(9))
	if !res.Blocked {
		t.Error("unknown direction should not resolve")
	}
}

func TestApplyUnknownEntity(t *testing.T) {
	w := mustParse(t, "P . .")
	player, _ := w.Player()
	res := Resolution{Dir: DirRight, Chain: []Move{{DirRight, player.ID}, {DirRight, 99}}}

	if _, err := Apply(w, res); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("Apply err = %v, want ErrUnknownEntity", err)
	}
	if player.Pos.X != 0 {
		t.Error("player moved although the chain was rejected")
	}
}

func TestLateListenerRejected(t *testing.T) {
	w := mustParse(t, firstPush)
	e, _ := mustEngine(t, w)

	if err := e.AddListener(&recorder{}); err != nil {
		t.Fatalf("AddListener before first tick: %v", err)
	}
	if _, err := e.Tick(NoInput); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := e.AddListener(&recorder{}); !errors.Is(err, ErrLateListener) {
		t.Errorf("AddListener after tick = %v, want ErrLateListener", err)
	}
}

func TestListenersHaveIndependentCursors(t *testing.T) {
	w := mustParse(t, firstPush)
	a, b := &recorder{}, &recorder{}
	e, _ := mustEngine(t, w, WithListener(a), WithListener(b))

	if _, err := e.Tick(Press(DirRight)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if _, err := e.Tick(Press(DirRight)); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if len(a.events) != 4 || len(b.events) != 4 {
		t.Fatalf("a saw %d, b saw %d events, want 4 each", len(a.events), len(b.events))
	}
	for i := range a.events {
		if a.events[i] != b.events[i] {
			t.Errorf("event %d differs: %v vs %v", i, a.events[i], b.events[i])
		}
	}
	if a.events[3] != (PlayerHitObstacle{}) {
		t.Errorf("second tick event = %v, want obstacle", a.events[3])
	}
}

func TestReporterCalledEveryTick(t *testing.T) {
	w := mustParse(t, firstPush)
	var reports []GameplayState
	e, _ := mustEngine(t, w, WithReporter(ReporterFunc(func(s GameplayState) {
		reports = append(reports, s)
	})))

	for i := 0; i < 3; i++ {
		if _, err := e.Tick(NoInput); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if _, err := e.Tick(Press(DirRight)); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if len(reports) != 4 {
		t.Fatalf("got %d reports, want 4", len(reports))
	}
	if reports[2].Phase != PhasePlaying || reports[3].Phase != PhaseWon {
		t.Errorf("reports = %+v", reports)
	}
	if reports[3].MovesCount != 1 {
		t.Errorf("final moves = %d, want 1", reports[3].MovesCount)
	}
}

func TestDerivedEventsReachLaterListeners(t *testing.T) {
	w := mustParse(t, firstPush)
	var cues []bool
	listener := ListenerFunc(func(_ *TickContext, ev MoveEvent) {
		if p, ok := ev.(BoxPlacedOnSpot); ok {
			cues = append(cues, p.IsCorrectSpot)
		}
	})
	e, _ := mustEngine(t, w, WithListener(listener))

	if _, err := e.Tick(Press(DirRight)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(cues) != 1 || !cues[0] {
		t.Errorf("cues = %v, want [true]", cues)
	}
}

func TestTickWithoutPlayer(t *testing.T) {
	w := NewWorld(3, 1, 0)
	w.Spawn(KindBox, ColourRed, 1, 0)
	e, _ := mustEngine(t, w)

	if _, err := e.Tick(Press(DirLeft)); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Tick err = %v, want ErrNoPlayer", err)
	}
}
