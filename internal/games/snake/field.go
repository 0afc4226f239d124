package snake

import "github.com/vovakirdan/wrapsnake/internal/core"

// Field is the rectangular play-field. Its edges are joined so movement off
// one edge continues from the opposite edge.
type Field struct {
	Width, Height float32 // In pixels
	CellW, CellH  float32
}

// Cols returns the number of cell columns.
func (f Field) Cols() int {
	return int(f.Width / f.CellW)
}

// Rows returns the number of cell rows.
func (f Field) Rows() int {
	return int(f.Height / f.CellH)
}

// CellBox returns the full-size box of the cell anchored at a.
func (f Field) CellBox(a core.Vec2) core.Box {
	return core.NewBox(a.X, a.Y, f.CellW, f.CellH)
}

// Cells returns the anchor of every cell, column by column.
func (f Field) Cells() []core.Vec2 {
	cells := make([]core.Vec2, 0, f.Cols()*f.Rows())
	for i := range f.Cols() {
		for j := range f.Rows() {
			cells = append(cells, core.Vec2{X: float32(i) * f.CellW, Y: float32(j) * f.CellH})
		}
	}
	return cells
}

// Center returns the anchor of the middle cell of the field.
func (f Field) Center() core.Vec2 {
	return core.Vec2{
		X: float32(f.Cols()/2) * f.CellW,
		Y: float32(f.Rows()/2) * f.CellH,
	}
}

// Wrap normalizes a cell anchor after a move.
//
// An anchor that has fully crossed an edge is relocated to the opposite edge.
// A box that straddles an edge stays where it is, and a sliver box covering
// the part that has wrapped around is returned alongside it. Slivers are for
// rendering only and never become part of the logical snake.
//
// Rules are applied per axis in the fixed order right, left, bottom, top;
// each rule sees the anchor as updated by the rules before it.
func (f Field) Wrap(a core.Vec2) (core.Vec2, []core.Box) {
	var slivers []core.Box

	// Right
	if a.X >= f.Width {
		a.X = 0
	} else if a.X+f.CellW > f.Width {
		width := min(a.X+f.CellW-f.Width, f.CellW)
		slivers = append(slivers, core.NewBox(0, a.Y, width, f.CellH))
	}

	// Left
	if a.X+f.CellW <= 0 {
		a.X = f.Width - f.CellW
	} else if a.X < 0 {
		hidden := -a.X
		slivers = append(slivers, core.NewBox(f.Width-hidden, a.Y, hidden, f.CellH))
	}

	// Bottom
	if a.Y >= f.Height {
		a.Y = 0
	} else if a.Y+f.CellH > f.Height {
		height := min(a.Y+f.CellH-f.Height, f.CellH)
		slivers = append(slivers, core.NewBox(a.X, 0, f.CellW, height))
	}

	// Top
	if a.Y+f.CellH <= 0 {
		a.Y = f.Height - f.CellH
	} else if a.Y < 0 {
		hidden := -a.Y
		slivers = append(slivers, core.NewBox(a.X, f.Height-hidden, f.CellW, hidden))
	}

	return a, slivers
}

// Relocate returns the anchor with any fully-crossed edge wrapped around.
func (f Field) Relocate(a core.Vec2) core.Vec2 {
	a, _ = f.Wrap(a)
	return a
}
