// Package sokoban adapts the push engine to the platform's Game interface:
// input edges, level progression, HUD and rendering.
package sokoban

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // walk the whole pack
	ModeSingle   Mode = "single"   // stop after one level
)

// Registry IDs.
const (
	IDCampaign = "sokoban"
	IDSingle   = "sokoban_single"
)

func init() {
	registry.Register(IDCampaign, "Sokoban", func(o registry.Options) registry.Game {
		return New(ModeCampaign, o)
	})
	registry.Register(IDSingle, "Sokoban (single level)", func(o registry.Options) registry.Game {
		return New(ModeSingle, o)
	})
}

// hud is the UI reporter: it keeps the last state the engine reported.
type hud struct {
	state   engine.GameplayState
	reports uint64
}

func (h *hud) Report(s engine.GameplayState) {
	h.state = s
	h.reports++
}

// Game implements registry.Game for Sokoban.
type Game struct {
	mode   Mode
	opts   registry.Options
	logger *log.Logger

	levelIndex int
	level      levels.Level
	world      *engine.World
	initial    *engine.World // parsed level, copied on every start
	engine     *engine.Engine
	state      engine.GameplayState
	hud        hud
	edges      *core.EdgeDetector

	tick     uint64
	screenW  int
	screenH  int
	paused   bool
	finished bool
	loadErr  error
	message  string
}

// New creates a game over the given options.
func New(mode Mode, opts registry.Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		mode:   mode,
		opts:   opts,
		logger: opts.Logger.WithPrefix("sokoban"),
		edges:  newEdgeDetector(opts, core.DefaultConfig().TickRate),
	}
}

// newEdgeDetector sizes the key hold window for the given tick rate.
func newEdgeDetector(opts registry.Options, tickRate int) *core.EdgeDetector {
	return core.NewEdgeDetector(opts.Config.Input.Hold, tickRate, opts.Config.Input.AllowRepeat)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSingle {
		return IDSingle
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSingle {
		return "Sokoban (single level)"
	}
	return "Sokoban"
}

// Reset starts over from the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.finished = false
	g.edges = newEdgeDetector(g.opts, cfg.TickRate)

	g.levelIndex = 0
	if g.opts.StartLevel != "" {
		if i := levels.Index(g.opts.Levels, g.opts.StartLevel); i >= 0 {
			g.levelIndex = i
		} else {
			g.logger.Warn("start level not found, starting at the first level", "level", g.opts.StartLevel)
		}
	}
	g.loadLevel()
}

// Resize updates the screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// loadLevel parses the level at the current index and starts it.
func (g *Game) loadLevel() {
	g.initial = nil
	if g.levelIndex >= len(g.opts.Levels) {
		g.clearLevel()
		g.loadErr = levels.ErrLevelNotFound
		g.finished = true
		return
	}
	g.level = g.opts.Levels[g.levelIndex]

	world, err := g.level.World(g.opts.Config.TileSize)
	if err != nil {
		g.clearLevel()
		g.loadErr = err
		g.logger.Error("cannot load level", "level", g.level.ID, "err", err)
		return
	}
	g.initial = world
	g.startLevel()
}

// restartLevel starts the current level over without parsing it again.
func (g *Game) restartLevel() {
	if g.initial == nil {
		g.loadLevel()
		return
	}
	g.startLevel()
}

func (g *Game) clearLevel() {
	g.state = engine.GameplayState{}
	g.hud = hud{}
	g.message = ""
	g.loadErr = nil
	g.world = nil
	g.engine = nil
}

// startLevel builds a fresh engine over a copy of the parsed level.
func (g *Game) startLevel() {
	g.clearLevel()
	world := g.initial.Clone()

	opts := []engine.Option{
		engine.WithLogger(g.logger),
		engine.WithReporter(&g.hud),
		engine.WithListener(engine.ListenerFunc(g.onMoveEvent)),
	}
	for _, l := range g.opts.Listeners {
		opts = append(opts, engine.WithListener(l))
	}

	eng, err := engine.New(world, &g.state, opts...)
	if err != nil {
		g.loadErr = err
		g.logger.Error("cannot start level", "level", g.level.ID, "err", err)
		return
	}

	g.world = world
	g.engine = eng
	g.hud.state = g.state
	g.hud.state.Phase = engine.DetectWin(world)
	g.logger.Info("level loaded", "level", g.level.ID, "name", g.level.Name)
}

// onMoveEvent keeps the last notable event for the status line.
func (g *Game) onMoveEvent(_ *engine.TickContext, ev engine.MoveEvent) {
	switch e := ev.(type) {
	case engine.PlayerHitObstacle:
		g.message = "Bump!"
	case engine.BoxPlacedOnSpot:
		if e.IsCorrectSpot {
			g.message = "Box on its spot"
		} else {
			g.message = "Wrong colour spot"
		}
	case engine.EntityMoved:
		g.message = ""
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	edges := g.edges.Frame(in)

	if edges.Has(core.ActionPause) && !g.finished {
		g.paused = !g.paused
	}
	if g.paused || g.finished || g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if edges.Has(core.ActionRestart) {
		g.logger.Debug("restart", "level", g.level.ID, "moves", g.state.MovesCount)
		g.restartLevel()
		return core.StepResult{State: g.State()}
	}

	if g.state.Phase == engine.PhaseWon {
		if edges.Has(core.ActionConfirm) {
			g.advance()
			return core.StepResult{State: g.State()}
		}
		g.run(engine.NoInput)
		return core.StepResult{State: g.State()}
	}

	input := engine.NoInput
	if a, ok := edges.Direction(); ok {
		input = engine.Press(directionFor(a))
	}

	before := g.state.Phase
	g.run(input)

	solved := before == engine.PhasePlaying && g.state.Phase == engine.PhaseWon
	if solved {
		g.message = fmt.Sprintf("Solved in %d moves", g.state.MovesCount)
		g.logger.Info("level solved", "level", g.level.ID, "moves", g.state.MovesCount)
	}
	return core.StepResult{State: g.State(), Solved: solved}
}

func (g *Game) run(in engine.Input) {
	if _, err := g.engine.Tick(in); err != nil {
		g.logger.Error("tick failed", "level", g.level.ID, "err", err)
	}
}

// advance moves to the next level, or finishes the run.
func (g *Game) advance() {
	if g.mode == ModeSingle || g.levelIndex+1 >= len(g.opts.Levels) {
		g.finished = true
		return
	}
	g.levelIndex++
	g.loadLevel()
}

// State returns the current platform state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.state.MovesCount),
		Level:    g.level.ID,
		Won:      g.state.Phase == engine.PhaseWon,
		GameOver: g.finished,
		Paused:   g.paused,
	}
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	default:
		return engine.DirRight
	}
}
