package maskutil

import "testing"

func TestFillPolygonSquare(t *testing.T) {
	w, h := 10, 10
	verts := []Point{{2, 2}, {7, 2}, {7, 7}, {2, 7}}
	mask := FillPolygon(verts, w, h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			want := r >= 2 && r < 7 && c >= 2 && c < 7
			if mask[r*w+c] != want {
				t.Errorf("(%d,%d) = %v, want %v", r, c, mask[r*w+c], want)
			}
		}
	}
}

func TestFillPolygonTooFewVerts(t *testing.T) {
	mask := FillPolygon([]Point{{0, 0}, {1, 1}}, 4, 4)
	for i, v := range mask {
		if v {
			t.Fatalf("pixel %d set, want empty mask for degenerate polygon", i)
		}
	}
}

func TestFloodFillBoundedRegion(t *testing.T) {
	w, h := 8, 8
	blocked := make([]bool, w*h)
	for c := 0; c < w; c++ {
		blocked[3*w+c] = true
	}
	mask := make([]bool, w*h)
	FloodFill(mask, w, h, 0, 0, func(r, c int) bool { return !blocked[r*w+c] })
	for r := 0; r < 3; r++ {
		for c := 0; c < w; c++ {
			if !mask[r*w+c] {
				t.Errorf("(%d,%d) not filled, want filled (above the blocking row)", r, c)
			}
		}
	}
	for c := 0; c < w; c++ {
		if mask[3*w+c] {
			t.Errorf("(3,%d) filled, want untouched (blocking row)", c)
		}
	}
	for r := 4; r < h; r++ {
		for c := 0; c < w; c++ {
			if mask[r*w+c] {
				t.Errorf("(%d,%d) filled, want untouched (below the blocking row)", r, c)
			}
		}
	}
}

func TestThreshold(t *testing.T) {
	w, h := 4, 4
	mask := []uint8{
		0, 0, 0, 0,
		0, 5, 9, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	tc := Threshold(mask, w, h, uint8(4))
	if len(tc.Coords) != 2 {
		t.Fatalf("len(Coords) = %d, want 2", len(tc.Coords))
	}
	i, ok := tc.IndexOf(1*w + 1)
	if !ok || tc.Coords[i].Row != 1 || tc.Coords[i].Col != 1 {
		t.Errorf("IndexOf(5) = %d,%v, want valid index to (1,1)", i, ok)
	}
	if _, ok := tc.IndexOf(0); ok {
		t.Error("IndexOf(0) reported ok for a below-threshold pixel")
	}
}
