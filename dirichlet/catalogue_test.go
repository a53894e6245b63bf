package dirichlet

import "testing"

func TestInterior(t *testing.T) {
	cases := []struct {
		r, c, w, h int
		want       bool
	}{
		{0, 0, 5, 5, false},
		{1, 1, 5, 5, true},
		{3, 3, 5, 5, true},
		{4, 4, 5, 5, false},
		{2, 0, 5, 5, false},
		{0, 2, 5, 5, false},
	}
	for _, c := range cases {
		if got := interior(c.r, c.c, c.w, c.h); got != c.want {
			t.Errorf("interior(%d,%d,%d,%d) = %v, want %v", c.r, c.c, c.w, c.h, got, c.want)
		}
	}
}

func TestNewCatalogueFromMaskSingle(t *testing.T) {
	w, h := 5, 5
	mask := make([]uint8, w*h)
	mask[2*w+2] = 1
	cat := NewCatalogueFromMask(mask, w, h)
	if cat.N() != 1 {
		t.Fatalf("N() = %d, want 1", cat.N())
	}
	if cat.Coords[0] != (Coord{2, 2}) {
		t.Errorf("Coords[0] = %+v, want {2,2}", cat.Coords[0])
	}
	idx, ok := cat.Index(2, 2)
	if !ok || idx != 0 {
		t.Errorf("Index(2,2) = %d,%v, want 0,true", idx, ok)
	}
	if _, ok := cat.Index(0, 0); ok {
		t.Error("Index(0,0) should not be a catalogue entry")
	}
}

func TestNewCatalogueFromMaskDiscardsBorder(t *testing.T) {
	w, h := 4, 4
	mask := make([]uint8, w*h)
	for i := range mask {
		mask[i] = 1
	}
	cat := NewCatalogueFromMask(mask, w, h)
	// Only the 2x2 strict interior survives.
	if cat.N() != 4 {
		t.Fatalf("N() = %d, want 4", cat.N())
	}
	for _, p := range cat.Coords {
		if !interior(p.Row, p.Col, w, h) {
			t.Errorf("non-interior coordinate %+v leaked into catalogue", p)
		}
	}
}

func TestNewCatalogueFromCoordsDropsOutOfBounds(t *testing.T) {
	w, h := 5, 5
	coords := []Coord{{0, 0}, {2, 2}, {4, 4}, {1, 1}}
	cat := NewCatalogueFromCoords(coords, w, h)
	if cat.N() != 2 {
		t.Fatalf("N() = %d, want 2 (only {2,2} and {1,1} are interior)", cat.N())
	}
}
