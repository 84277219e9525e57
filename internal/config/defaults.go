package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		TileSize: 32,
		Input: InputConfig{
			AllowRepeat: false,
			Hold:        600 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.sokoban/sokoban.log",
		},
	}
}

// normalize fills zero values with defaults and clamps ranges.
func (c *SokobanConfig) normalize() {
	def := DefaultSokobanConfig()
	if c.TileSize <= 0 {
		c.TileSize = def.TileSize
	}
	if c.Input.Hold <= 0 {
		c.Input.Hold = def.Input.Hold
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}
