package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows the built-in levels merged with the configured level directory, with the best recorded run of each.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	e, err := loadEnv(nil)
	if err != nil {
		fatal("%v", err)
	}
	defer e.Close()

	if len(e.levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	var stats map[string]*storage.LevelStats
	if store := openStore(e.logger); store != nil {
		if stats, err = store.GetAllLevelStats(); err != nil {
			e.logger.Warn("could not read level stats", "err", err)
		}
		store.Close()
	}

	maxIDLen, maxNameLen := 2, 4
	for _, l := range e.levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Best")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "----")

	for _, l := range e.levels {
		best := "-"
		if s, ok := stats[l.ID]; ok && s.Solves > 0 {
			best = fmt.Sprintf("%d", s.BestMoves)
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, size, best)
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, g := range registry.List() {
		fmt.Printf("  %-16s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
