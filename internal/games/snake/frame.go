package snake

import "github.com/vovakirdan/wrapsnake/internal/core"

// Renderer receives one frame per tick: a flat x,y triangle vertex list and a
// flat r,g,b colour list with one triple per vertex. The draw count is
// len(vertices)/2.
type Renderer interface {
	Draw(vertices, colors []float32) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(vertices, colors []float32) error

// Draw calls f.
func (f RendererFunc) Draw(vertices, colors []float32) error {
	return f(vertices, colors)
}

// Events are the scoring notifications fired synchronously during a tick.
// Score is the segment count minus the starting length.
type Events struct {
	OnScored   func(score uint)
	OnGameOver func(score uint)
}

func (e Events) scored(score uint) {
	if e.OnScored != nil {
		e.OnScored(score)
	}
}

func (e Events) gameOver(score uint) {
	if e.OnGameOver != nil {
		e.OnGameOver(score)
	}
}

// Frame accumulates the vertex and colour buffers for one tick.
// Buffers are reused between ticks.
type Frame struct {
	field    Field
	vertices []float32
	colors   []float32
}

// NewFrame creates an empty frame for field.
func NewFrame(field Field) *Frame {
	return &Frame{
		field:    field,
		vertices: make([]float32, 0, 2000),
		colors:   make([]float32, 0, 4000),
	}
}

// Reset empties the buffers, keeping their capacity.
func (f *Frame) Reset() {
	f.vertices = f.vertices[:0]
	f.colors = f.colors[:0]
}

// AddBox appends one box in colour c.
func (f *Frame) AddBox(b core.Box, c core.Color) {
	f.vertices = b.AppendVertices(f.vertices)
	rgb := c.Triple()
	for range core.VerticesPerBox {
		f.colors = append(f.colors, rgb[:]...)
	}
}

// AddCell appends the cell anchored at a plus any wrap slivers it needs,
// all in colour c.
func (f *Frame) AddCell(a core.Vec2, c core.Color) {
	anchor, slivers := f.field.Wrap(a)
	f.AddBox(f.field.CellBox(anchor), c)
	for _, s := range slivers {
		f.AddBox(s, c)
	}
}

// Vertices returns the vertex buffer.
func (f *Frame) Vertices() []float32 {
	return f.vertices
}

// Colors returns the colour buffer.
func (f *Frame) Colors() []float32 {
	return f.colors
}

// VertexCount returns the number of vertices to draw.
func (f *Frame) VertexCount() int {
	return len(f.vertices) / 2
}
