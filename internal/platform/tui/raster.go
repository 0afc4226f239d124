package tui

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// ErrBufferMismatch is returned when a frame's colour buffer does not hold one
// r,g,b triple per vertex, or the vertex buffer is not whole triangles.
var ErrBufferMismatch = errors.New("tui: vertex and colour buffers do not match")

// blockRune fills a terminal cell covered by a triangle.
const blockRune = '█'

// Rasterizer draws the game's triangle lists into a Screen. Each terminal cell
// is sampled at its centre, mapped into field pixels, and takes the colour of
// the last triangle covering it. Triangles are flat-shaded with the colour of
// their first vertex.
type Rasterizer struct {
	screen     *core.Screen
	fieldW     float32
	fieldH     float32
	background core.Color
}

// NewRasterizer creates a rasterizer that scales a fieldW x fieldH pixel field
// onto screen.
func NewRasterizer(screen *core.Screen, fieldW, fieldH float32, background core.Color) (*Rasterizer, error) {
	if screen == nil {
		return nil, errors.New("tui: rasterizer needs a screen")
	}
	if fieldW <= 0 || fieldH <= 0 {
		return nil, fmt.Errorf("tui: invalid field size %vx%v", fieldW, fieldH)
	}
	return &Rasterizer{
		screen:     screen,
		fieldW:     fieldW,
		fieldH:     fieldH,
		background: background,
	}, nil
}

// Draw implements snake.Renderer.
func (r *Rasterizer) Draw(vertices, colors []float32) error {
	if len(vertices)%6 != 0 || len(colors) != len(vertices)/2*3 {
		return fmt.Errorf("%w: %d vertex floats, %d colour floats", ErrBufferMismatch, len(vertices), len(colors))
	}

	w, h := r.screen.Width(), r.screen.Height()
	for y := range h {
		for x := range w {
			r.screen.SetColored(x, y, blockRune, r.background)
		}
	}
	if w == 0 || h == 0 {
		return nil
	}

	// Field pixels per terminal cell.
	sx := r.fieldW / float32(w)
	sy := r.fieldH / float32(h)

	for t := 0; t < len(vertices); t += 6 {
		ax, ay := vertices[t], vertices[t+1]
		bx, by := vertices[t+2], vertices[t+3]
		cx, cy := vertices[t+4], vertices[t+5]
		ci := t / 2 * 3
		c := core.RGB(colors[ci], colors[ci+1], colors[ci+2])

		// Only cells under the triangle's bounding box can be covered.
		x0 := core.Clamp(int(math.Floor(float64(min(ax, bx, cx)/sx))), 0, w)
		x1 := core.Clamp(int(math.Ceil(float64(max(ax, bx, cx)/sx))), 0, w)
		y0 := core.Clamp(int(math.Floor(float64(min(ay, by, cy)/sy))), 0, h)
		y1 := core.Clamp(int(math.Ceil(float64(max(ay, by, cy)/sy))), 0, h)

		for y := y0; y < y1; y++ {
			py := (float32(y) + 0.5) * sy
			for x := x0; x < x1; x++ {
				px := (float32(x) + 0.5) * sx
				if inTriangle(px, py, ax, ay, bx, by, cx, cy) {
					r.screen.SetColored(x, y, blockRune, c)
				}
			}
		}
	}
	return nil
}

// inTriangle reports whether (px, py) lies inside or on the edge of the
// triangle abc, whatever its winding.
func inTriangle(px, py, ax, ay, bx, by, cx, cy float32) bool {
	d1 := edge(px, py, ax, ay, bx, by)
	d2 := edge(px, py, bx, by, cx, cy)
	d3 := edge(px, py, cx, cy, ax, ay)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(px, py, ax, ay, bx, by float32) float32 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}
