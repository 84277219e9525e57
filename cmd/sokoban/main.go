// sokoban is a terminal Sokoban with coloured boxes and spots.
//
// Usage:
//
//	sokoban list              - List levels and play modes
//	sokoban play [level]      - Play from a level (default: the first)
//	sokoban menu              - Pick levels interactively
//	sokoban scores <level>    - Show the best runs for a level
//	sokoban check <file>...   - Validate level files
//	sokoban serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set database path (default: ~/.sokoban/runs.db)
//	--config <path>     - Use a specific config file
//	--levels <dir>      - Extra level directory, overrides the config
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push coloured boxes onto their spots in your terminal",
	Long: `Sokoban is a terminal box-pushing puzzle. Push every box onto a spot to
solve a level; boxes on a spot of their own colour are highlighted.

Available commands:
  list     - Show all levels
  play     - Play starting from a level
  menu     - Interactive level picker
  scores   - View the best runs of a level
  check    - Validate level files
  serve    - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play 02
  sokoban play 03 --single
  sokoban menu --levels ./my-levels
  sokoban serve --ssh :2222
  sokoban scores 02`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

// env is what every command needs: config, logger and levels.
type env struct {
	cfg     config.SokobanConfig
	logger  *log.Logger
	levels  []levels.Level
	logFile io.Closer
}

// loadEnv reads the config, opens the log and loads the level pack.
// logTo overrides the configured log file when not nil.
func loadEnv(logTo io.Writer) (*env, error) {
	cfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	e := &env{cfg: cfg}
	if logTo == nil {
		logTo, e.logFile = openLogFile(cfg.Log.File)
	}
	e.logger = log.NewWithOptions(logTo, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		e.logger.SetLevel(lvl)
	} else {
		e.logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}

	e.levels, err = levels.LoadPack(config.ExpandPath(cfg.Levels.Dir), e.logger)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	e.logger.Debug("levels loaded", "count", len(e.levels), "dir", cfg.Levels.Dir)
	return e, nil
}

// openLogFile opens the log file for appending. Logging is discarded if the
// file cannot be opened, since the terminal belongs to the game.
func openLogFile(path string) (io.Writer, io.Closer) {
	if path == "" {
		return io.Discard, nil
	}
	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, nil
	}
	return f, f
}

// Close releases the log file.
func (e *env) Close() {
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName names the local player in saved runs.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
