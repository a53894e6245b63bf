package maskutil

import "github.com/jvlmdr/dirichlet-fill/dirichlet"

// ThresholdCoords is the list of coordinates whose mask value is above
// threshold, together with a lookup from a pixel's linear offset (in a
// w-by-h row-major grid) back to its position in Coords.
type ThresholdCoords struct {
	Coords []dirichlet.Coord
	index  map[int]int
}

// Threshold scans a w-by-h row-major mask and collects every coordinate
// whose value exceeds threshold.
func Threshold[M dirichlet.Numeric](mask []M, w, h int, threshold M) *ThresholdCoords {
	tc := &ThresholdCoords{index: make(map[int]int)}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			pos := r*w + c
			if mask[pos] <= threshold {
				continue
			}
			tc.index[pos] = len(tc.Coords)
			tc.Coords = append(tc.Coords, dirichlet.Coord{Row: r, Col: c})
		}
	}
	return tc
}

// IndexOf returns the position of the pixel at linear offset pos within
// Coords, and whether it was above threshold at all.
func (tc *ThresholdCoords) IndexOf(pos int) (int, bool) {
	i, ok := tc.index[pos]
	return i, ok
}
