package levels

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded level pack.
func Builtin() ([]Level, error) {
	levels, err := NewFSLoader(builtinFS, "builtin").LoadAll()
	if err != nil {
		return nil, fmt.Errorf("builtin levels: %w", err)
	}
	return levels, nil
}

// LoadPack returns the built-in pack merged with the levels found in dir.
// An empty dir yields the built-in pack only. User levels replace built-ins
// with the same ID.
func LoadPack(dir string, logger *log.Logger) ([]Level, error) {
	pack, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return pack, nil
	}

	loader := NewLoader(dir)
	loader.Logger = logger
	user, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	return Merge(pack, user), nil
}
