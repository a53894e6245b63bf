// Package maskutil builds and manipulates boolean hole masks for the
// Dirichlet fill solvers: polygon rasterisation, flood fill, and
// extraction of above-threshold coordinates.
package maskutil

import "sort"

// Point is a vertex in image coordinates (X is column, Y is row).
type Point struct {
	X, Y float64
}

// FillPolygon rasterises the closed polygon described by verts (at least
// three vertices, implicitly closed from the last vertex back to the
// first) into a w-by-h row-major boolean mask using the even-odd scanline
// rule. Pixel (r, c) is considered inside when the point (c+0.5, r+0.5)
// is inside the polygon.
func FillPolygon(verts []Point, w, h int) []bool {
	mask := make([]bool, w*h)
	if len(verts) < 3 {
		return mask
	}
	for r := 0; r < h; r++ {
		y := float64(r) + 0.5
		xs := scanlineCrossings(verts, y)
		for i := 0; i+1 < len(xs); i += 2 {
			c0 := int(xs[i] + 0.5)
			c1 := int(xs[i+1] - 0.5)
			if c0 < 0 {
				c0 = 0
			}
			if c1 >= w {
				c1 = w - 1
			}
			for c := c0; c <= c1; c++ {
				mask[r*w+c] = true
			}
		}
	}
	return mask
}

// scanlineCrossings returns the sorted x coordinates where the polygon
// boundary crosses the horizontal line at height y.
func scanlineCrossings(verts []Point, y float64) []float64 {
	var xs []float64
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	sort.Float64s(xs)
	return xs
}
