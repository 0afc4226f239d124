package core

import "testing"

func TestColliderOverlaps(t *testing.T) {
	c := Collider{CellW: 80, CellH: 80, Margin: 15}

	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"same cell", Vec2{160, 240}, Vec2{160, 240}, true},
		{"adjacent horizontal", Vec2{0, 0}, Vec2{80, 0}, false},
		{"adjacent vertical", Vec2{0, 0}, Vec2{0, 80}, false},
		{"diagonal neighbour", Vec2{0, 0}, Vec2{80, 80}, false},
		{"near-same cell", Vec2{0, 0}, Vec2{10, 10}, true},
		{"inside margin", Vec2{0, 0}, Vec2{70, 0}, false},
		{"just past margin", Vec2{0, 0}, Vec2{64, 0}, true},
		{"far apart", Vec2{0, 0}, Vec2{400, 400}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := c.Overlaps(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := c.Overlaps(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestColliderOverlapsAny(t *testing.T) {
	c := Collider{CellW: 80, CellH: 80, Margin: 15}
	cells := []Vec2{{0, 0}, {80, 0}, {160, 0}}

	if !c.OverlapsAny(Vec2{80, 0}, cells) {
		t.Error("OverlapsAny should find the matching cell")
	}
	if c.OverlapsAny(Vec2{80, 80}, cells) {
		t.Error("OverlapsAny should not report the row below")
	}
	if c.OverlapsAny(Vec2{0, 0}, nil) {
		t.Error("OverlapsAny on no cells should be false")
	}
}

func TestBoxVertices(t *testing.T) {
	b := NewBox(10, 20, 30, 40)
	v := b.Vertices()

	expected := [12]float32{
		10, 20,
		40, 20,
		10, 60,

		40, 60,
		10, 60,
		40, 20,
	}
	if v != expected {
		t.Errorf("Vertices() = %v, expected %v", v, expected)
	}

	buf := b.AppendVertices(nil)
	if len(buf) != VerticesPerBox*2 {
		t.Errorf("AppendVertices() length = %d, expected %d", len(buf), VerticesPerBox*2)
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if b.Anchor() != (Vec2{5, 10}) {
		t.Errorf("Anchor() = %v, expected (5, 10)", b.Anchor())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() should be %v", d, d)
		}
	}
}

func TestDirectionStep(t *testing.T) {
	if got := DirUp.Step(80, 60); got != (Vec2{0, -60}) {
		t.Errorf("Up step = %v", got)
	}
	if got := DirDown.Step(80, 60); got != (Vec2{0, 60}) {
		t.Errorf("Down step = %v", got)
	}
	if got := DirLeft.Step(80, 60); got != (Vec2{-80, 0}) {
		t.Errorf("Left step = %v", got)
	}
	if got := DirRight.Step(80, 60); got != (Vec2{80, 0}) {
		t.Errorf("Right step = %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("ParseDirection(%q) = %v, expected %v", d.String(), parsed, d)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(1, 0, 0).Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, expected #ff0000", got)
	}
	if got := RGB(0, 0, 0).Hex(); got != "#000000" {
		t.Errorf("Hex() = %q, expected #000000", got)
	}
	if got := RGB(2, -1, 0.5).Hex(); got != "#ff0080" {
		t.Errorf("Hex() = %q, expected #ff0080", got)
	}
}
