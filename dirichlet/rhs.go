package dirichlet

// AssembleRHS forms the right-hand-side vector b for the given image
// component: for each catalogue row, it sums the component's values at
// every neighbour encoded as a boundary pixel. Neighbours encoded as other
// unknowns contribute nothing to b (they already appear in A).
func AssembleRHS[C Numeric](nt *NeighborTable, comp Component[C]) []float64 {
	n := len(nt.L)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		if pos, ok := nt.L[i].Boundary(); ok {
			sum += float64(comp.At(pos))
		}
		if pos, ok := nt.R[i].Boundary(); ok {
			sum += float64(comp.At(pos))
		}
		if pos, ok := nt.T[i].Boundary(); ok {
			sum += float64(comp.At(pos))
		}
		if pos, ok := nt.B[i].Boundary(); ok {
			sum += float64(comp.At(pos))
		}
		b[i] = sum
	}
	return b
}
