// Package core provides fundamental types and utilities shared by the snake
// logic and its hosts. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a grid-space coordinate in field pixels.
// The origin is the upper-left corner and y grows downward.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned quad covering [X, X+W] x [Y, Y+H].
// Boxes are never stored long-term; they are derived from a cell anchor on demand.
type Box struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// VerticesPerBox is the number of vertices in the two triangles of a Box.
const VerticesPerBox = 6

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float32) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Anchor returns the top-left corner of the box.
func (b Box) Anchor() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float32 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float32 {
	return b.Y + b.H
}

// Vertices returns the box as two triangles, flattened into x,y pairs.
func (b Box) Vertices() [VerticesPerBox * 2]float32 {
	return [VerticesPerBox * 2]float32{
		b.X, b.Y,
		b.X + b.W, b.Y,
		b.X, b.Y + b.H,

		b.X + b.W, b.Y + b.H,
		b.X, b.Y + b.H,
		b.X + b.W, b.Y,
	}
}

// AppendVertices appends the box's triangle vertices to dst.
func (b Box) AppendVertices(dst []float32) []float32 {
	v := b.Vertices()
	return append(dst, v[:]...)
}

// Collider tests cell-sized boxes for overlap.
//
// Both boxes are shrunk by Margin on each axis before the AABB comparison,
// so cells that merely share an edge never collide while cells that occupy
// the same (or nearly the same) position do.
type Collider struct {
	CellW, CellH float32
	Margin       float32
}

// Overlaps reports whether the cells anchored at a and b overlap.
func (c Collider) Overlaps(a, b Vec2) bool {
	w := c.CellW - c.Margin
	h := c.CellH - c.Margin
	if a.X >= b.X+w || a.X+w <= b.X {
		return false
	}
	if a.Y >= b.Y+h || a.Y+h <= b.Y {
		return false
	}
	return true
}

// OverlapsAny reports whether the cell at a overlaps any of the given cells.
func (c Collider) OverlapsAny(a Vec2, cells []Vec2) bool {
	for _, b := range cells {
		if c.Overlaps(a, b) {
			return true
		}
	}
	return false
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
