package arrutil

// Unbin2x2 performs logical 2x2 unbinning on row-major boolean array a:
// the returned, double-resolution array has every element of each 2x2
// block set to a's corresponding source element (replicate-expand).
func Unbin2x2(a []bool, w, h int) (out []bool, ow, oh int) {
	ow, oh = 2*w, 2*h
	out = make([]bool, ow*oh)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := a[r*w+c]
			if !v {
				continue
			}
			r0, c0 := 2*r, 2*c
			out[r0*ow+c0] = true
			out[r0*ow+c0+1] = true
			out[(r0+1)*ow+c0] = true
			out[(r0+1)*ow+c0+1] = true
		}
	}
	return out, ow, oh
}
