// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingID is returned for a level file without an id.
var ErrMissingID = errors.New("level has no id")

// YAMLLevel represents the YAML structure for a level file.
//
//	id: "01"
//	name: First Push
//	map: |
//	  W W W W W
//	  W P RB RS W
//	  W W W W W
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Map      string            `yaml:"map"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file. Map still holds the raw token rows.
type Level struct {
	ID       string
	Name     string
	Map      string
	Width    int
	Height   int
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.ID) == "" {
		return Level{}, ErrMissingID
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	w, h := Dimensions(yl.Map)
	return Level{
		ID:       yl.ID,
		Name:     name,
		Map:      yl.Map,
		Width:    w,
		Height:   h,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level back into the file format.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Map:      l.Map,
		Metadata: l.Metadata,
	})
}

// Dimensions returns the token grid size of a map: the longest row and the
// number of non-blank rows.
func Dimensions(m string) (width, height int) {
	for _, line := range strings.Split(m, "\n") {
		n := len(strings.Fields(line))
		if n == 0 {
			continue
		}
		height++
		if n > width {
			width = n
		}
	}
	return width, height
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
