// Package config provides YAML-based game configuration loading and
// validation for the snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
// Values are fixed at startup; there is no hot reload.
type SnakeConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Grid      GridConfig      `yaml:"grid"`
	Snake     SnakeSettings   `yaml:"snake"`
	Collision CollisionConfig `yaml:"collision"`
	Colors    ColorConfig     `yaml:"colors"`
}

// FieldConfig defines the play-field size in pixels.
type FieldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// GridConfig defines how many cells the field is divided into.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SnakeSettings defines the snake itself and its step animation.
type SnakeSettings struct {
	StartLength   int     `yaml:"start_length"`
	AnimationMS   int     `yaml:"animation_ms"`
	RenderQuantum float32 `yaml:"render_quantum"` // Eased positions snap to multiples of this
}

// CollisionConfig defines the overlap test parameters.
type CollisionConfig struct {
	Margin       float32 `yaml:"margin"`        // Shrink in pixels, relative to the cell size
	NeckSegments int     `yaml:"neck_segments"` // Segments behind the head excluded from self-collision
}

// ColorConfig defines frame colours as [r, g, b] triples in [0, 1].
type ColorConfig struct {
	Snake      ColorTriple `yaml:"snake"`
	Apple      ColorTriple `yaml:"apple"`
	Background ColorTriple `yaml:"background"`
}

// ColorTriple is an [r, g, b] list as written in YAML.
type ColorTriple []float32

// Color converts the triple to a core.Color. Short lists yield black.
func (c ColorTriple) Color() core.Color {
	if len(c) != 3 {
		return core.Color{}
	}
	return core.RGB(c[0], c[1], c[2])
}

// CellWidth returns the width of one grid cell in pixels.
func (c SnakeConfig) CellWidth() float32 {
	if c.Grid.Cols <= 0 {
		return 0
	}
	return c.Field.Width / float32(c.Grid.Cols)
}

// CellHeight returns the height of one grid cell in pixels.
func (c SnakeConfig) CellHeight() float32 {
	if c.Grid.Rows <= 0 {
		return 0
	}
	return c.Field.Height / float32(c.Grid.Rows)
}

// AnimationDuration returns the step animation length.
func (c SnakeConfig) AnimationDuration() time.Duration {
	return time.Duration(c.Snake.AnimationMS) * time.Millisecond
}

// Validate checks the configuration and reports every invalid field.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must have positive cols and rows, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}

	cellW, cellH := c.CellWidth(), c.CellHeight()
	if cellW > 0 && cellH > 0 {
		if cellW != float32(int(cellW)) || cellH != float32(int(cellH)) {
			errs = append(errs, fmt.Errorf("field %vx%v does not divide into whole %dx%d cells",
				c.Field.Width, c.Field.Height, c.Grid.Cols, c.Grid.Rows))
		}
		if c.Collision.Margin < 0 || c.Collision.Margin >= min(cellW, cellH) {
			errs = append(errs, fmt.Errorf("collision margin %v must be in [0, %v)", c.Collision.Margin, min(cellW, cellH)))
		}
	}

	if c.Snake.StartLength < 1 {
		errs = append(errs, fmt.Errorf("start length must be at least 1, got %d", c.Snake.StartLength))
	} else if c.Grid.Cols > 0 && c.Snake.StartLength > c.Grid.Cols-c.Grid.Cols/2 {
		// The starting snake runs rightward from the centre column.
		errs = append(errs, fmt.Errorf("start length %d does not fit in half a row of %d cells", c.Snake.StartLength, c.Grid.Cols))
	}
	if c.Snake.AnimationMS <= 0 {
		errs = append(errs, fmt.Errorf("animation_ms must be positive, got %d", c.Snake.AnimationMS))
	}
	if c.Snake.RenderQuantum < 0 {
		errs = append(errs, fmt.Errorf("render quantum must not be negative, got %v", c.Snake.RenderQuantum))
	}
	if c.Collision.NeckSegments < 1 {
		errs = append(errs, fmt.Errorf("neck_segments must be at least 1, got %d", c.Collision.NeckSegments))
	}

	for name, triple := range map[string]ColorTriple{
		"snake":      c.Colors.Snake,
		"apple":      c.Colors.Apple,
		"background": c.Colors.Background,
	} {
		if len(triple) != 3 {
			errs = append(errs, fmt.Errorf("color %s must have 3 components, got %d", name, len(triple)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
