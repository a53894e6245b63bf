package dirichlet

import "testing"

// solidMask returns a w-by-h mask with every pixel in [r0,r1]x[c0,c1]
// (inclusive) set to 1.
func solidMask(w, h, r0, r1, c0, c1 int) []uint8 {
	m := make([]uint8, w*h)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			m[r*w+c] = 1
		}
	}
	return m
}

func TestAnalyzeSmallHoleRegistersNoSquares(t *testing.T) {
	w, h := 16, 16
	mask := solidMask(w, h, 5, 10, 5, 10) // 6x6, too small for any cushion
	am := Analyze(mask, w, h)
	if len(am.Squares) != 0 {
		t.Fatalf("Squares = %d, want 0", len(am.Squares))
	}
	if am.N != 36 {
		t.Fatalf("N = %d, want 36 (every hole pixel its own unknown)", am.N)
	}
}

func TestAnalyzeLargeHoleRegistersSquares(t *testing.T) {
	w, h := 32, 32
	mask := solidMask(w, h, 8, 23, 8, 23) // 16x16, aligned to the binning grid
	am := Analyze(mask, w, h)

	if len(am.Squares) != 4 {
		t.Fatalf("Squares = %d, want 4", len(am.Squares))
	}
	wantTop := map[[2]int]bool{{12, 12}: true, {12, 16}: true, {16, 12}: true, {16, 16}: true}
	for _, sq := range am.Squares {
		if sq.Side != 4 {
			t.Errorf("square side = %d, want 4", sq.Side)
		}
		if !wantTop[[2]int{sq.Top, sq.Left}] {
			t.Errorf("unexpected square at (%d,%d)", sq.Top, sq.Left)
		}
	}

	const totalHole = 16 * 16
	const interiorPerSquare = 2 * 2 // (side-2)^2
	want := totalHole - len(am.Squares)*interiorPerSquare
	if am.N != want {
		t.Errorf("N = %d, want %d", am.N, want)
	}
}

func TestAnalyzeSquareInteriorMarkedExcluded(t *testing.T) {
	w, h := 32, 32
	mask := solidMask(w, h, 8, 23, 8, 23)
	am := Analyze(mask, w, h)
	if len(am.Squares) == 0 {
		t.Fatal("expected at least one registered square")
	}
	sq := am.Squares[0]
	last := sq.Side - 1
	for i := 1; i < last; i++ {
		for j := 1; j < last; j++ {
			idx := (sq.Top+i)*am.W + (sq.Left + j)
			if am.CoordMap[idx] != -2 {
				t.Errorf("interior (%d,%d) coordMap = %d, want -2", sq.Top+i, sq.Left+j, am.CoordMap[idx])
			}
		}
	}
	// Every corner must be a genuine reduced-catalogue entry.
	corners := [][2]int{
		{sq.Top, sq.Left}, {sq.Top, sq.Left + last},
		{sq.Top + last, sq.Left}, {sq.Top + last, sq.Left + last},
	}
	for _, p := range corners {
		idx := p[0]*am.W + p[1]
		if am.CoordMap[idx] < 0 {
			t.Errorf("corner (%d,%d) coordMap = %d, want >= 0", p[0], p[1], am.CoordMap[idx])
		}
	}
}
