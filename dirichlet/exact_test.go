package dirichlet

import (
	"math"
	"testing"
)

func buildAffineImage(w, h int, a, b, d float64) []float32 {
	img := make([]float32, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			img[r*w+c] = float32(a*float64(r) + b*float64(c) + d)
		}
	}
	return img
}

func TestExactSingleUnknownIsMeanOfFourNeighbors(t *testing.T) {
	w, h := 5, 5
	img := make([]float32, w*h)
	for i := range img {
		img[i] = 10
	}
	img[2*w+1] = 8
	img[2*w+3] = 12
	img[1*w+2] = 6
	img[3*w+2] = 14
	mask := make([]uint8, w*h)
	mask[2*w+2] = 1

	s, err := NewExactFromMask(mask, w, h, MethodCholesky)
	if err != nil {
		t.Fatal(err)
	}
	comp := NewComponent(img, 1)
	sol, err := ApplyExact(s, comp)
	if err != nil {
		t.Fatal(err)
	}
	want := float32((8.0 + 12.0 + 6.0 + 14.0) / 4.0)
	if math.Abs(float64(sol[0]-want)) > 1e-4 {
		t.Errorf("solved value = %v, want %v", sol[0], want)
	}
	if img[2*w+2] != float32(want) {
		t.Errorf("write-back = %v, want %v", img[2*w+2], want)
	}
}

func TestExactThreePixelVerticalStrip(t *testing.T) {
	w, h := 5, 6
	img := make([]float32, w*h)
	for i := range img {
		img[i] = 0
	}
	// Column 2, rows 1..5 is a vertical strip; rows 2,3,4 are the hole
	// (three unknowns), pinned top at row 1 and bottom at row 5 to the same
	// linear ramp 10*r as the left/right neighbours, so the exact solution
	// is linear too.
	img[1*w+2] = 10
	img[5*w+2] = 50
	mask := make([]uint8, w*h)
	for r := 2; r <= 4; r++ {
		mask[r*w+2] = 1
	}
	for r := 2; r <= 4; r++ {
		img[r*w+1] = 10 * float32(r)
		img[r*w+3] = 10 * float32(r)
	}

	s, err := NewExactFromMask(mask, w, h, MethodCholesky)
	if err != nil {
		t.Fatal(err)
	}
	comp := NewComponent(img, 1)
	if _, err := ApplyExact(s, comp); err != nil {
		t.Fatal(err)
	}
	for r := 2; r <= 4; r++ {
		want := float32(10 * r)
		got := img[r*w+2]
		if math.Abs(float64(got-want)) > 1e-3 {
			t.Errorf("row %d = %v, want %v", r, got, want)
		}
	}
}

func TestExactReproducesAffine(t *testing.T) {
	w, h := 8, 8
	a, b, d := 1.5, -2.25, 10.0
	img := buildAffineImage(w, h, a, b, d)
	mask := make([]uint8, w*h)
	for r := 2; r <= 5; r++ {
		for c := 2; c <= 5; c++ {
			mask[r*w+c] = 1
		}
	}

	s, err := NewExactFromMask(mask, w, h, MethodCholesky)
	if err != nil {
		t.Fatal(err)
	}
	comp := NewComponent(img, 1)
	if _, err := ApplyExact(s, comp); err != nil {
		t.Fatal(err)
	}
	for r := 2; r <= 5; r++ {
		for c := 2; c <= 5; c++ {
			want := float32(a*float64(r) + b*float64(c) + d)
			got := img[r*w+c]
			if math.Abs(float64(got-want)) > 1e-2 {
				t.Errorf("(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestExactMethodsAgree(t *testing.T) {
	w, h := 8, 8
	img1 := buildAffineImage(w, h, 0.7, 1.3, 5)
	img2 := make([]float32, len(img1))
	copy(img2, img1)
	mask := make([]uint8, w*h)
	for r := 2; r <= 5; r++ {
		for c := 2; c <= 5; c++ {
			mask[r*w+c] = 1
		}
	}

	sChol, err := NewExactFromMask(mask, w, h, MethodCholesky)
	if err != nil {
		t.Fatal(err)
	}
	sCG, err := NewExactFromMask(mask, w, h, MethodCG)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyExact(sChol, NewComponent(img1, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyExact(sCG, NewComponent(img2, 1)); err != nil {
		t.Fatal(err)
	}
	for i := range img1 {
		if math.Abs(float64(img1[i]-img2[i])) > 1e-2 {
			t.Errorf("pixel %d: Cholesky=%v CG=%v disagree", i, img1[i], img2[i])
		}
	}
}

func TestExactNoHolesIsNoOp(t *testing.T) {
	w, h := 4, 4
	mask := make([]uint8, w*h)
	s, err := NewExactFromMask(mask, w, h, MethodCholesky)
	if err != nil {
		t.Fatal(err)
	}
	if s.N() != 0 {
		t.Fatalf("N() = %d, want 0", s.N())
	}
	img := make([]float32, w*h)
	sol, err := ApplyExact(s, NewComponent(img, 1))
	if err != nil {
		t.Fatal(err)
	}
	if sol != nil {
		t.Errorf("sol = %v, want nil", sol)
	}
}
