// Package arrutil holds small, generic array utilities used by the
// bilinear-acceleration analyser: power-of-two rounding, 2x2 boolean
// binning/unbinning, the valid-interpolation-square predicate, and padding
// an array up to a target size. None of this is specific to the Dirichlet
// solver itself; it is the out-of-core support machinery spec.md §1 calls
// out as an external collaborator.
package arrutil

import "fmt"

// NextPow2 returns the smallest power of two that is >= n. Panics if n
// exceeds 1<<30 (a programmer error: no real image dimension approaches
// this bound).
func NextPow2(n int) int {
	r := 1
	for r < n {
		if r == 1<<30 {
			panic(fmt.Sprintf("arrutil.NextPow2: %d too big", n))
		}
		r <<= 1
	}
	return r
}
