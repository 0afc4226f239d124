package core

import "fmt"

// Direction is an abstract heading for the snake.
// Platform keys are translated to a Direction before reaching the game.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
)

// Directions lists all valid headings.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Step returns the offset of one full cell in direction d.
func (d Direction) Step(cellW, cellH float32) Vec2 {
	switch d {
	case DirUp:
		return Vec2{Y: -cellH}
	case DirDown:
		return Vec2{Y: cellH}
	case DirLeft:
		return Vec2{X: -cellW}
	case DirRight:
		return Vec2{X: cellW}
	default:
		return Vec2{}
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("core: unknown direction %q", s)
}
