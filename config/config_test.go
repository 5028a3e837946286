package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/scenery/object"
	"github.com/lixenwraith/scenery/scene"
)

const sampleScene = `
title = "level 1"

[[object]]
name = "player"
z = 500
x = 4
y = 2
glyph = "@"
color = "yellow"

[[object]]
name = "floor"
z = 0
glyph = "."

[[object]]
name = "coin"
z = 100
x = 1
y = 1
glyph = "$"
color = "#ffd700"
`

func TestParseScene(t *testing.T) {
	sf, err := ParseScene([]byte(sampleScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if sf.Title != "level 1" {
		t.Errorf("Expected title 'level 1', got %q", sf.Title)
	}
	if len(sf.Objects) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(sf.Objects))
	}
	p := sf.Objects[0]
	if p.Name != "player" || p.Z != 500 || p.X != 4 || p.Y != 2 || p.Glyph != "@" {
		t.Errorf("Unexpected player definition: %+v", p)
	}
}

func TestParseScene_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing name", "[[object]]\nz = 1\n"},
		{"long glyph", "[[object]]\nname = \"a\"\nglyph = \"ab\"\n"},
		{"unknown color", "[[object]]\nname = \"a\"\ncolor = \"notacolor\"\n"},
		{"unknown key", "[[object]]\nname = \"a\"\nlayer = \"top\"\n"},
		{"empty name", "[[object]]\nname = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.data))
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Expected ErrInvalidScene, got %v", err)
			}
		})
	}
}

func TestParseScene_ResetColors(t *testing.T) {
	for _, c := range []string{"default", "reset"} {
		data := "[[object]]\nname = \"a\"\ncolor = \"" + c + "\"\n"
		sf, err := ParseScene([]byte(data))
		if err != nil {
			t.Errorf("Expected color %q to be accepted, got %v", c, err)
			continue
		}
		if sf.Objects[0].Color != c {
			t.Errorf("Expected color %q, got %q", c, sf.Objects[0].Color)
		}
	}
}

func TestParseScene_Syntax(t *testing.T) {
	if _, err := ParseScene([]byte("[[object]\nname = ")); err == nil {
		t.Error("Expected decode error for malformed TOML")
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	sf, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if len(sf.Objects) != 3 {
		t.Errorf("Expected 3 objects, got %d", len(sf.Objects))
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestPopulate(t *testing.T) {
	sf, err := ParseScene([]byte(sampleScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	s := scene.New()
	defer s.Close()
	sf.Populate(s)

	if s.Len() != 3 {
		t.Fatalf("Expected 3 scene objects, got %d", s.Len())
	}

	h, err := s.Find("player")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	defer h.Release()
	o, _ := h.Object()
	if x, y := o.Position(); x != 4 || y != 2 {
		t.Errorf("Expected position (4, 2), got (%d, %d)", x, y)
	}
	if o.Glyph() != '@' || o.Color() != "yellow" || o.ZOrder() != object.ZForeground {
		t.Errorf("Unexpected player attributes: glyph %q color %q z %d", o.Glyph(), o.Color(), o.ZOrder())
	}

	l := s.DrawOrder()
	defer l.Release()
	if !object.HasName(l[0], "floor") || !object.HasName(l[2], "player") {
		t.Error("Expected draw order floor, coin, player")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SCENERY_SCENE", "level.toml")
	t.Setenv("SCENERY_DEBUG", "true")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.Scene != "level.toml" || !cfg.Debug {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.LogDir != "logs" || cfg.Color != "auto" {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestEnvValidate(t *testing.T) {
	t.Setenv("SCENERY_COLOR", "16")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unsupported color mode")
	}

	for _, mode := range []string{"auto", "256", "truecolor"} {
		cfg.Color = mode
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected %q to be valid, got %v", mode, err)
		}
	}
}

func TestLoadScene_Demo(t *testing.T) {
	sf, err := LoadScene(filepath.Join("..", "asset", "demo.toml"))
	if err != nil {
		t.Fatalf("LoadScene failed on bundled demo: %v", err)
	}
	if len(sf.Objects) != 5 {
		t.Errorf("Expected 5 demo objects, got %d", len(sf.Objects))
	}
}
