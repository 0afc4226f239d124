package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 1280x800 field split into 16x10 cells.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:  1280,
			Height: 800,
		},
		Grid: GridConfig{
			Cols: 16,
			Rows: 10,
		},
		Snake: SnakeSettings{
			StartLength:   4,
			AnimationMS:   200,
			RenderQuantum: 10,
		},
		Collision: CollisionConfig{
			Margin:       15,
			NeckSegments: 3,
		},
		Colors: ColorConfig{
			Snake:      ColorTriple{0.1, 0.65, 0.1},
			Apple:      ColorTriple{0.65, 0.1, 0.1},
			Background: ColorTriple{0.1, 0.2, 0.1},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
