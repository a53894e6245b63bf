package dirichlet

import (
	"fmt"
	"io"

	"github.com/jvlmdr/go-cg/cg"
)

// Method selects the factorisation used to solve the sparse SPD system
// assembled from a catalogue's neighbour table. The solve-time interface
// (System.Solve) is identical for either choice.
type Method int

const (
	// MethodCholesky factors the banded realisation of the system once, at
	// construction time, and solves by (banded) back-substitution on every
	// call. Fastest when the same mask is applied to many image components.
	MethodCholesky Method = iota
	// MethodCG solves by matrix-free conjugate gradient, recomputing the
	// operator application on every iteration. Lower setup cost; useful
	// for one-shot use on very large holes.
	MethodCG
)

// operator applies A = 4I - adjacency to x, without ever materialising A,
// using only the neighbour table. Row i contributes +4 on the diagonal and
// -1 for every neighbour encoded as another unknown; neighbours encoded as
// boundary pixels contribute nothing here (they appear in the
// right-hand-side instead, see rhs.go).
func operator(nt *NeighborTable) func([]float64) []float64 {
	return func(x []float64) []float64 {
		y := make([]float64, len(x))
		for i := range x {
			y[i] = 4 * x[i]
			if j, ok := nt.L[i].Unknown(); ok {
				y[i] -= x[j]
			}
			if j, ok := nt.R[i].Unknown(); ok {
				y[i] -= x[j]
			}
			if j, ok := nt.T[i].Unknown(); ok {
				y[i] -= x[j]
			}
			if j, ok := nt.B[i].Unknown(); ok {
				y[i] -= x[j]
			}
		}
		return y
	}
}

// System is the factored sparse SPD linear system for one catalogue. It is
// built once per (mask, width, height) and reused across every Apply call
// on the owning solver. MethodCholesky's solve step is held behind
// solveFn so that different callers in this package can supply different
// factorisations (banded for the exact solver's catalogue-ordered system,
// dense for the much smaller reduced system an ApproxSolver builds)
// without System itself needing to know which.
type System struct {
	n       int
	method  Method
	solveFn func([]float64) ([]float64, error) // MethodCholesky solve step
	apply   func([]float64) []float64          // matrix-free operator, used by MethodCG
	debug   io.Writer
	cgTol   float64
	cgIter  int
}

// Factorize assembles and factors the system for nt. For MethodCholesky
// this runs the (expensive, one-time) banded Cholesky factorisation,
// exploiting that the discrete Laplacian ordered by catalogue index has
// bandwidth bounded by bandwidth(nt) rather than n; for MethodCG it only
// captures the matrix-free operator, deferring all work to Solve.
func Factorize(nt *NeighborTable, n int, method Method) (*System, error) {
	s := &System{n: n, method: method, apply: operator(nt), cgTol: 1e-6, cgIter: 2 * n}
	if n == 0 {
		return s, nil
	}
	switch method {
	case MethodCholesky:
		k := bandwidth(nt)
		a := toBandedSPD(nt, n, k)
		bc, err := factorBanded(a, n, k)
		if err != nil {
			return nil, fmt.Errorf("dirichlet: banded Cholesky factorisation failed on a %d-pixel system, bandwidth %d: %w", n, k, err)
		}
		s.solveFn = func(b []float64) ([]float64, error) { return bc.solve(b), nil }
	case MethodCG:
		// nothing to precompute; operator is enough.
	default:
		return nil, fmt.Errorf("dirichlet: unknown method %d", method)
	}
	return s, nil
}

// Solve returns x such that A x = b, using whichever factorisation the
// System was built with.
func (s *System) Solve(b []float64) ([]float64, error) {
	if s.n == 0 {
		return nil, nil
	}
	switch s.method {
	case MethodCholesky:
		return s.solveFn(b)
	case MethodCG:
		x0 := make([]float64, s.n)
		x, err := cg.Solve(s.apply, b, x0, s.cgTol, s.cgIter, s.debug)
		if err != nil {
			return nil, fmt.Errorf("dirichlet: conjugate-gradient solve: %w", err)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("dirichlet: unknown method %d", s.method)
	}
}

// N reports the dimension of the system.
func (s *System) N() int { return s.n }
