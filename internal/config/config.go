// Package config provides YAML-based configuration loading for Sokoban.
package config

import "time"

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	TileSize float64      `yaml:"tile_size"` // transform scale of one tile
	Input    InputConfig  `yaml:"input"`
	Audio    AudioConfig  `yaml:"audio"`
	Levels   LevelsConfig `yaml:"levels"`
	Log      LogConfig    `yaml:"log"`
}

// InputConfig defines the key-repeat policy.
type InputConfig struct {
	AllowRepeat bool          `yaml:"allow_repeat"` // every repeated press is a new push
	Hold        time.Duration `yaml:"hold"`         // how long a key stays held after its last press
}

// AudioConfig defines the move cue sounds.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// LevelsConfig points at user level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // merged after the built-in pack
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}
