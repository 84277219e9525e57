package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// footerHeight is the number of rows reserved below the game screen.
const footerHeight = 1

// resizer is implemented by games that can change size without a reset.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model for playing one game.
// It is used directly for local play and embedded by SessionModel over SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRun    *storage.Run
	newBest    bool // lastRun beat every earlier run of its level
	standalone bool // back and quit both end the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
// store may be nil, in which case solved runs are not persisted.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		player:     player,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

func screenHeight(h int) int {
	return max(h-footerHeight, 0)
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = screenHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The puzzle is kept.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, screenHeight(msg.Height))
	} else {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Solved {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the level just solved.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}
	prev, solved, err := m.store.BestMoves(m.gameState.Level)
	if err != nil {
		m.logger.Warn("could not read best moves", "level", m.gameState.Level, "err", err)
	}
	run, err := m.store.SaveRun(m.gameState.Level, m.gameState.Score, m.player)
	if err != nil {
		m.logger.Warn("could not save run", "level", m.gameState.Level, "err", err)
		return
	}
	m.lastRun = &run
	m.newBest = !solved || run.Moves < prev
	m.logger.Info("run saved", "run", run.RunID, "level", run.LevelID, "moves", run.Moves, "player", run.Player, "best", m.newBest)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.Level, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
	}
}

// footer is the help line, prefixed by the last saved run while the level is solved.
func (m GameModel) footer() string {
	line := m.help.View(m.keyMapper.Keys)
	if m.lastRun != nil && m.gameState.Won && m.lastRun.LevelID == m.gameState.Level {
		saved := "saved " + m.lastRun.RunID.String()[:8]
		if m.newBest {
			saved += " new best"
		}
		line = saved + "  " + line
	}
	return line
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.footer())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastRun returns the most recently saved run, or nil.
func (m GameModel) LastRun() *storage.Run {
	return m.lastRun
}

// NewBest reports whether the last saved run set a record for its level.
func (m GameModel) NewBest() bool {
	return m.newBest
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays the game in the local terminal until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, player, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
