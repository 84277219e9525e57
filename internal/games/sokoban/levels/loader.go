// Package levels provides level loading for Sokoban: the embedded built-in
// pack and user level directories.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

var (
	// ErrLevelNotFound is returned when no level has the requested ID.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoSpots is returned for a level without box spots.
	ErrNoSpots = errors.New("level has no box spots")
	// ErrTooFewBoxes is returned when spots outnumber boxes.
	ErrTooFewBoxes = errors.New("level has fewer boxes than spots")
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Map      string
	Width    int
	Height   int
	Metadata map[string]string
	FilePath string
}

// World builds a fresh world from the level map.
func (l *Level) World(tileSize float64) (*engine.World, error) {
	w, err := engine.ParseMap(l.Map, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// Validate checks that the level can be played: the map parses with exactly
// one player, and there is at least one spot and a box for every spot.
func (l *Level) Validate() error {
	w, err := l.World(engine.DefaultTileSize)
	if err != nil {
		return err
	}
	spots := w.CountKind(engine.KindBoxSpot)
	if spots == 0 {
		return fmt.Errorf("level %s: %w", l.ID, ErrNoSpots)
	}
	if boxes := w.CountKind(engine.KindBox); boxes < spots {
		return fmt.Errorf("level %s: %w (%d boxes, %d spots)", l.ID, ErrTooFewBoxes, boxes, spots)
	}
	return nil
}

// Hint returns the level's hint, if any.
func (l *Level) Hint() string {
	return l.Metadata["hint"]
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// NewFSLoader creates a loader over any file system, rooted at dir.
func NewFSLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{FS: fsys, Root: dir}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and logged. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", p, "err", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Map:      parsed.Map,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Metadata: parsed.Metadata,
		FilePath: p,
	}
	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("invalid level %s: %w", p, err)
	}
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// Merge combines level sets. A later level replaces an earlier one with the
// same ID. The result is sorted by ID.
func Merge(sets ...[]Level) []Level {
	byID := make(map[string]Level)
	for _, set := range sets {
		for _, lvl := range set {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sortByID(out)
	return out
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
