package dirichlet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// bandwidth returns the largest catalogue-index gap between any hole pixel
// and a cardinal neighbour that is itself a hole pixel. For a catalogue
// produced by scanning the image row-major, horizontal neighbours are
// always adjacent in the ordering, but a vertical neighbour is separated
// from it by every hole pixel between the two in scan order, which is
// fewer than the image width; bandwidth measures that gap exactly, rather
// than assuming the image width.
func bandwidth(nt *NeighborTable) int {
	k := 0
	upd := func(i int, nb Neighbor) {
		j, ok := nb.Unknown()
		if !ok {
			return
		}
		d := j - i
		if d < 0 {
			d = -d
		}
		if d > k {
			k = d
		}
	}
	for i := range nt.L {
		upd(i, nt.L[i])
		upd(i, nt.R[i])
		upd(i, nt.T[i])
		upd(i, nt.B[i])
	}
	return k
}

// toBandedSPD assembles A = 4I - adjacency as a symmetric band matrix of
// bandwidth k, in place of a dense n-by-n matrix: off-diagonal entries
// outside the band are structurally zero and are never stored.
func toBandedSPD(nt *NeighborTable, n, k int) *mat.SymBandDense {
	a := mat.NewSymBandDense(n, k, nil)
	set := func(i, j int, v float64) {
		if i > j {
			i, j = j, i
		}
		a.SetSymBand(i, j, v)
	}
	for i := 0; i < n; i++ {
		set(i, i, 4)
		if j, ok := nt.L[i].Unknown(); ok {
			set(i, j, -1)
		}
		if j, ok := nt.R[i].Unknown(); ok {
			set(i, j, -1)
		}
		if j, ok := nt.T[i].Unknown(); ok {
			set(i, j, -1)
		}
		if j, ok := nt.B[i].Unknown(); ok {
			set(i, j, -1)
		}
	}
	return a
}

// bandedCholesky is the lower-triangular banded Cholesky factor L of a
// symmetric positive-definite matrix A with bandwidth k, such that
// A = L*L^T and L itself has bandwidth k. Factorisation costs O(n*k^2) time
// and O(n*k) space, against a dense Cholesky's O(n^3)/O(n^2): for the
// catalogue orderings this package produces, k is less than the image
// width, not bounded by n, which is what lets MethodCholesky scale to
// large holes.
type bandedCholesky struct {
	n, k int
	l    [][]float64 // l[i] holds L(i, lo(i)..i), left to right
}

func (bc *bandedCholesky) lo(r int) int {
	if r-bc.k < 0 {
		return 0
	}
	return r - bc.k
}

// factorBanded runs the banded variant of LAPACK's dpbtrf (lower,
// row-oriented) directly against a, reading each entry through At so no
// assumption is made about a's internal storage layout.
func factorBanded(a *mat.SymBandDense, n, k int) (*bandedCholesky, error) {
	bc := &bandedCholesky{n: n, k: k, l: make([][]float64, n)}
	get := func(r, c int) float64 {
		if r < 0 || c < bc.lo(r) || c > r {
			return 0
		}
		return bc.l[r][c-bc.lo(r)]
	}
	for i := 0; i < n; i++ {
		start := bc.lo(i)
		row := make([]float64, i-start+1)
		for j := start; j < i; j++ {
			jStart := bc.lo(j)
			if start > jStart {
				jStart = start
			}
			sum := 0.0
			for p := jStart; p < j; p++ {
				sum += row[p-start] * get(j, p)
			}
			diag := get(j, j)
			if diag == 0 {
				return nil, fmt.Errorf("zero pivot at row %d (matrix not positive definite)", j)
			}
			row[j-start] = (a.At(i, j) - sum) / diag
		}
		sum := 0.0
		for p := start; p < i; p++ {
			v := row[p-start]
			sum += v * v
		}
		d := a.At(i, i) - sum
		if d <= 0 {
			return nil, fmt.Errorf("non-positive pivot at row %d (matrix is SPD by construction; this indicates an implementation bug)", i)
		}
		row[i-start] = math.Sqrt(d)
		bc.l[i] = row
	}
	return bc, nil
}

// solve returns x such that L L^T x = b, by forward substitution against L
// followed by back substitution against L^T, both restricted to each row's
// band instead of the full row.
func (bc *bandedCholesky) solve(b []float64) []float64 {
	n := bc.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		start := bc.lo(i)
		row := bc.l[i]
		sum := b[i]
		for p := start; p < i; p++ {
			sum -= row[p-start] * y[p]
		}
		y[i] = sum / row[i-start]
	}
	x := make([]float64, n)
	copy(x, y)
	for i := n - 1; i >= 0; i-- {
		row := bc.l[i]
		start := bc.lo(i)
		x[i] /= row[i-start]
		for p := start; p < i; p++ {
			// (L^T)_{p,i} = L_{i,p}; subtract its contribution to row p.
			x[p] -= row[p-start] * x[i]
		}
	}
	return x
}
