// Package data loads the static shape, sprite and model tables
package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultTables []byte

// SpriteFrame is one frame of a sprite sheet, in blocks
type SpriteFrame struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShapeEntry declares a shape size in blocks and its texture key
// Fallback is used when Texture names an image that was not loaded
type ShapeEntry struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Texture  string  `yaml:"texture"`
	Fallback string  `yaml:"fallback"`
	Sprites  string  `yaml:"sprites"`
}

// EffectEntry declares one direct-collision effect
type EffectEntry struct {
	Kind   string `yaml:"kind"`   // damage | destroy
	Target string `yaml:"target"` // self | other
	Amount int    `yaml:"amount"`
}

// ModelEntry declares one model of the scene
type ModelEntry struct {
	Name        string        `yaml:"name"`
	Layer       string        `yaml:"layer"`
	Class       string        `yaml:"class"` // model | character
	Category    string        `yaml:"category"`
	Shape       string        `yaml:"shape"`
	X           float64       `yaml:"x"`
	Y           float64       `yaml:"y"`
	Gravity     string        `yaml:"gravity"`
	Scope       string        `yaml:"scope"`
	ScopeTarget string        `yaml:"scope_target"`
	Health      int           `yaml:"health"`
	Face        string        `yaml:"face"`
	OnDestroy   string        `yaml:"on_destroy"`
	Effects     []EffectEntry `yaml:"effects"`
	Display     *bool         `yaml:"display_collision"`
}

// Tables is the parsed static data
type Tables struct {
	Layers  []string                          `yaml:"layers"`
	Sprites map[string]map[string]SpriteFrame `yaml:"sprites"`
	Shapes  map[string]ShapeEntry             `yaml:"shapes"`
	Models  []ModelEntry                      `yaml:"models"`
}

// DefaultTables parses the embedded tables
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTables)
}

// LoadTables reads tables from path; an empty path returns the embedded tables
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables %s: %w", path, err)
	}
	t, err := ParseTables(raw)
	if err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// ParseTables decodes a YAML document
func ParseTables(raw []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	if len(t.Layers) == 0 {
		t.Layers = []string{"BG", "FG"}
	}
	return &t, nil
}

// Shape returns a shape entry by name
func (t *Tables) Shape(name string) (ShapeEntry, bool) {
	s, ok := t.Shapes[name]
	return s, ok
}
