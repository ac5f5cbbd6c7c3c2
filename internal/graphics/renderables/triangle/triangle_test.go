package triangle

import (
	"testing"

	renderer "gl-template/internal/graphics/renderer"
)

var _ renderer.Renderable = (*Triangle)(nil)

func TestVerticesPacking(t *testing.T) {
	got := Vertices(Corners)
	want := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d floats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex float %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	if len(Indices)%3 != 0 {
		t.Fatalf("index count %d is not a whole number of triangles", len(Indices))
	}
	for i, idx := range Indices {
		if int(idx) >= len(Corners) {
			t.Errorf("index %d references vertex %d, only %d vertices", i, idx, len(Corners))
		}
	}
}

func TestWindingCounterClockwise(t *testing.T) {
	a, b, c := Corners[Indices[0]], Corners[Indices[1]], Corners[Indices[2]]
	if z := b.Sub(a).Cross(c.Sub(a)).Z(); z <= 0 {
		t.Errorf("expected counter-clockwise winding, cross z = %v", z)
	}
}

func TestDisposeWithoutInit(t *testing.T) {
	tri := NewTriangle()
	tri.Dispose()
}
