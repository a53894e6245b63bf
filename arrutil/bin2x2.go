package arrutil

import "fmt"

// Bin2x2 performs logical 2x2 AND-binning on row-major boolean array a:
// each element of the returned, half-resolution array is true only if
// every element of the corresponding 2x2 block in a is true. w and h must
// both be even and at least 2; a programmer supplying an odd dimension
// gets a panic, matching the exception the original throws for the same
// mistake.
func Bin2x2(a []bool, w, h int) (out []bool, ow, oh int) {
	if w < 2 {
		panic(fmt.Sprintf("arrutil.Bin2x2: width %d too small", w))
	}
	if h < 2 {
		panic(fmt.Sprintf("arrutil.Bin2x2: height %d too small", h))
	}
	if w%2 != 0 {
		panic(fmt.Sprintf("arrutil.Bin2x2: width %d not even", w))
	}
	if h%2 != 0 {
		panic(fmt.Sprintf("arrutil.Bin2x2: height %d not even", h))
	}
	ow, oh = w/2, h/2
	out = make([]bool, ow*oh)
	for r := 0; r < oh; r++ {
		for c := 0; c < ow; c++ {
			r0, c0 := 2*r, 2*c
			out[r*ow+c] = a[r0*w+c0] && a[r0*w+c0+1] && a[(r0+1)*w+c0] && a[(r0+1)*w+c0+1]
		}
	}
	return out, ow, oh
}
