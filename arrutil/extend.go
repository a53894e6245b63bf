package arrutil

// ExtendZeroBool pads boolean array a (w-by-h) out to newW-by-newH,
// placing a at the top-left and filling the new rows/columns with false.
// newW and newH must be >= w and h respectively.
func ExtendZeroBool(a []bool, w, h, newW, newH int) []bool {
	out := make([]bool, newW*newH)
	for r := 0; r < h; r++ {
		copy(out[r*newW:r*newW+w], a[r*w:r*w+w])
	}
	return out
}

// ExtendZero pads numeric array a (w-by-h) out to newW-by-newH, placing a
// at the top-left and filling the new rows/columns with the scalar zero
// value.
func ExtendZero[T Number](a []T, w, h, newW, newH int) []T {
	out := make([]T, newW*newH)
	for r := 0; r < h; r++ {
		copy(out[r*newW:r*newW+w], a[r*w:r*w+w])
	}
	return out
}

// ExtendEdge pads numeric array a (w-by-h) out to newW-by-newH, placing a
// at the top-left and filling new columns/rows by replicating the nearest
// edge pixel of a.
func ExtendEdge[T Number](a []T, w, h, newW, newH int) []T {
	out := make([]T, newW*newH)
	for r := 0; r < newH; r++ {
		sr := r
		if sr > h-1 {
			sr = h - 1
		}
		for c := 0; c < newW; c++ {
			sc := c
			if sc > w-1 {
				sc = w - 1
			}
			out[r*newW+c] = a[sr*w+sc]
		}
	}
	return out
}

// Number is the scalar constraint used by the generic extension helpers;
// kept local to arrutil (rather than importing dirichlet.Numeric) so this
// package has no dependency on the solver package it supports.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
