package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scenery/object"
	"github.com/lixenwraith/scenery/scene"
)

// ErrInvalidScene wraps every validation failure of a scene file
var ErrInvalidScene = errors.New("invalid scene")

// ObjectDef is one [[object]] table of a scene file
type ObjectDef struct {
	Name  string `toml:"name"`
	Z     int    `toml:"z"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	Glyph string `toml:"glyph"`
	Color string `toml:"color"`
}

// SceneFile is the decoded form of a scene TOML file
// Colors are tcell names ("yellow", "default", "reset") or "#rrggbb"
//
//	title = "level 1"
//
//	[[object]]
//	name = "player"
//	z = 500
//	x = 4
//	y = 2
//	glyph = "@"
//	color = "yellow"
type SceneFile struct {
	Title   string      `toml:"title"`
	Objects []ObjectDef `toml:"object"`
}

// LoadScene reads and validates a scene file from disk
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

// ParseScene decodes and validates scene TOML
// Keys that do not map to a field are rejected
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	md, err := toml.Decode(string(data), &sf)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

// Validate checks every object definition
func (sf *SceneFile) Validate() error {
	for i, def := range sf.Objects {
		if def.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidScene, i)
		}
		if def.Glyph != "" && utf8.RuneCountInString(def.Glyph) != 1 {
			return fmt.Errorf("%w: object %q glyph %q must be a single character", ErrInvalidScene, def.Name, def.Glyph)
		}
		if def.Color != "" && !knownColor(def.Color) {
			return fmt.Errorf("%w: object %q has unknown color %q", ErrInvalidScene, def.Name, def.Color)
		}
	}
	return nil
}

// knownColor accepts tcell color names and #rrggbb values
// GetColor maps unknown names to ColorDefault, so the names that mean default are checked first
func knownColor(name string) bool {
	switch strings.ToLower(name) {
	case "default", "reset":
		return true
	}
	return tcell.GetColor(name) != tcell.ColorDefault
}

// Options converts a definition into object creation options
func (def ObjectDef) Options() []object.Option {
	opts := []object.Option{object.WithPosition(def.X, def.Y)}
	if def.Glyph != "" {
		r, _ := utf8.DecodeRuneInString(def.Glyph)
		opts = append(opts, object.WithGlyph(r))
	}
	if def.Color != "" {
		opts = append(opts, object.WithColor(def.Color))
	}
	return opts
}

// Populate spawns every object of the file into s, in file order
func (sf *SceneFile) Populate(s *scene.Scene) {
	for _, def := range sf.Objects {
		s.Spawn(def.Name, def.Z, def.Options()...).Release()
	}
}
