package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagScoresLimit int
	flagClearRuns   bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best runs of a level",
	Long: `Display the fewest-move runs recorded for a level, or look up a single
run by its ID.

Examples:
  sokoban scores 02
  sokoban scores 02 --limit 20
  sokoban scores 02 --clear
  sokoban scores --run 5f0c...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all runs of the level")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by ID")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening runs database: %v", err)
	}
	defer store.Close()

	if flagRunID != "" {
		showRun(store, flagRunID)
		return
	}
	if len(args) == 0 {
		fatal("a level ID or --run is required")
	}

	e, err := loadEnv(nil)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	levelID := args[0]
	level, err := levels.Find(e.levels, levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	if flagClearRuns {
		if err := store.ClearRuns(levelID); err != nil {
			fatal("clearing runs: %v", err)
		}
		fmt.Printf("Cleared runs of %s.\n", levelID)
		return
	}

	runs, err := store.TopRuns(levelID, flagScoresLimit)
	if err != nil {
		fatal("retrieving runs: %v", err)
	}

	fmt.Printf("Best runs - %s %s\n", level.ID, level.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-12s  %-16s  %s\n", "Rank", "Moves", "Player", "Date", "Run")
	fmt.Printf("  %-4s  %-5s  %-12s  %-16s  %s\n", "----", "-----", "------", "----", "---")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-12s  %-16s  %s\n",
			i+1, r.Moves, r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	if stats, err := store.GetLevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Solved %d times, best %d, average %.1f\n", stats.Solves, stats.BestMoves, stats.AvgMoves)
	}
}

func showRun(store *storage.Store, id string) {
	runID, err := uuid.Parse(id)
	if err != nil {
		fatal("invalid run ID %q: %v", id, err)
	}
	run, err := store.RunByID(runID)
	if err != nil {
		fatal("%v", err)
	}
	if run == nil {
		fatal("run %s not found", runID)
	}
	fmt.Printf("Run     %s\n", run.RunID)
	fmt.Printf("Level   %s\n", run.LevelID)
	fmt.Printf("Moves   %d\n", run.Moves)
	fmt.Printf("Player  %s\n", run.Player)
	fmt.Printf("Date    %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
}
