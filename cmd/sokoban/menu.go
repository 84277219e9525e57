package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start Sokoban in interactive menu mode.

Use arrow keys or j/k to navigate. Enter plays the campaign from the
selected level, 1 plays only that level. Leaving a game returns to the
menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from level
  1            - Play single level
  Tab          - Best runs
  Q/Esc        - Quit

Examples:
  sokoban menu
  sokoban menu --fps 60
  sokoban menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := loadEnv(nil)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	store := openStore(e.logger)
	if store != nil {
		defer store.Close()
	}

	sound := startAudio(e.cfg.Audio, e.logger)
	defer sound.Cleanup()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(e.levels, store, cfg, e.logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.levels, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.LevelID == "" {
			return
		}

		backToMenu, err := playLevel(e, store, sound, menuResult.LevelID, menuResult.Single)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}
