// Package dirichlet fills masked holes in an image by solving a discrete
// Dirichlet problem: the Laplacian is driven to zero at every hole pixel,
// using the surrounding non-hole pixels as fixed boundary values.
//
// Two solvers are provided. ExactSolver builds the full sparse system, one
// equation per hole pixel, and factors it either by banded Cholesky
// (bandwidth bounded by the largest catalogue-index gap between vertically
// adjacent hole pixels, which is less than the image width, stored via gonum.org/v1/gonum/mat.SymBandDense) or by matrix-free
// conjugate gradient (github.com/jvlmdr/go-cg/cg). ApproxSolver first looks
// for large, fully-interior square sub-regions of the hole and replaces
// their interiors with a bilinear patch pinned to the four corners, solving
// a far smaller reduced system for what remains.
//
// Both solvers are constructed once per (mask, width, height) and then
// applied to any number of image components of matching dimensions:
//
//	s, err := dirichlet.NewExactFromMask(mask, w, h, dirichlet.MethodCholesky)
//	...
//	x, err := dirichlet.ApplyExact(s, dirichlet.NewComponent(pixels, stride))
//
// ApplyExact/ApplyApprox write the solution back into the component's
// backing slice, rounding to the nearest representable value when the
// component type is an integer.
package dirichlet
