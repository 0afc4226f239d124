package core

import "fmt"

// Color is a linear RGB colour with components in [0, 1],
// the same layout the renderer receives per vertex.
type Color struct {
	R, G, B float32
}

// RGB creates a colour from its components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Triple returns the colour as an r,g,b slice element group.
func (c Color) Triple() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Hex returns the colour as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	return uint8(ClampF(float64(v), 0, 1)*255 + 0.5)
}
