package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/audio"
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagSingle bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play starting from a level",
	Long: `Start playing at the given level ID (default: the first level).
Solving a level and pressing Enter moves on to the next one unless
--single is set.

Controls:
  Arrows/WASD/HJKL - Move
  R                - Restart level
  Enter            - Next level (after solving)
  P                - Pause
  Esc/B            - Leave
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  sokoban play
  sokoban play 02
  sokoban play 03 --single
  sokoban play --config ./my-sokoban.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSingle, "single", false, "Play only the chosen level")
}

func runPlay(_ *cobra.Command, args []string) {
	e, err := loadEnv(nil)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	start := ""
	if len(args) == 1 {
		start = args[0]
		if _, err := levels.Find(e.levels, start); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", start)
			fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
			os.Exit(1)
		}
	}

	sound := startAudio(e.cfg.Audio, e.logger)
	defer sound.Cleanup()

	store := openStore(e.logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := playLevel(e, store, sound, start, flagSingle); err != nil {
		fatal("running game: %v", err)
	}
}

// playLevel runs one game from start until the player leaves.
func playLevel(e *env, store *storage.Store, sound *audio.SoundManager, start string, single bool) (backToMenu bool, err error) {
	id := sokoban.IDCampaign
	if single {
		id = sokoban.IDSingle
	}

	game, err := registry.Create(id, registry.Options{
		Config:     e.cfg,
		Levels:     e.levels,
		StartLevel: start,
		Listeners:  []engine.Listener{audio.NewDispatcher(sound, e.logger)},
		Logger:     e.logger,
	})
	if err != nil {
		return false, err
	}

	e.logger.Info("game started", "game", id, "level", start)
	return tui.Run(game, store, runtimeConfig(), playerName(), e.logger)
}

// startAudio initializes the speaker when audio is enabled. A manager that
// failed to start drops every cue, so the game always gets one.
func startAudio(cfg config.AudioConfig, logger *log.Logger) *audio.SoundManager {
	sm := audio.NewSoundManager(cfg.Volume)
	if !cfg.Enabled {
		return sm
	}
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	return sm
}

// openStore opens the runs database; the game runs without it on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
