package dirichlet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ApproxSolver is the bilinear-accelerated Dirichlet solver. Deep inside
// large holes it registers square regions whose strict interior is
// excluded from the linear system and instead filled, after the solve, by
// bilinear interpolation of the square's four corners; only the reduced
// catalogue (ordinary hole pixels plus every square's perimeter) is solved
// exactly. See Analyze for the analysis that produces this reduction.
type ApproxSolver struct {
	am  *AccelMap
	red *reducedSystem
	sys *System
}

// weightedNeighbor is one off-centre reference of a reduced-system row:
// either another reduced unknown or a fixed boundary/image pixel, with the
// (possibly anisotropic) weight the analyser assigned it.
type weightedNeighbor struct {
	weight float64
	ref    Neighbor
}

// reducedSystem holds, for every row of the reduced catalogue, its
// original-image coordinate, its diagonal weight, and its up to four
// off-centre references, derived from the stencils Analyze produced.
type reducedSystem struct {
	order []Coord
	diag  []float64
	refs  [][4]weightedNeighbor
}

// NewApprox runs the bilinear-acceleration analyser over mask and
// factors the resulting reduced system.
func NewApprox[M Numeric](mask []M, w, h int, method Method) (*ApproxSolver, error) {
	am := Analyze(mask, w, h)
	red := buildReducedSystem(am)
	sys, err := factorizeReduced(red, method)
	if err != nil {
		return nil, err
	}
	return &ApproxSolver{am: am, red: red, sys: sys}, nil
}

// N reports the size of the reduced catalogue (strictly fewer rows than
// the exact solver would build for the same mask, whenever any square was
// registered).
func (s *ApproxSolver) N() int { return len(s.red.order) }

// Squares exposes the registered bilinear-interpolation regions.
func (s *ApproxSolver) Squares() []Square { return s.am.Squares }

// Weights exposes the per-pixel stencils of the analysis, indexed in the
// power-of-two extended dimensions (see AccelMap).
func (s *ApproxSolver) Weights() *Weights { return s.am.Weights }

// CoordMap exposes the reduced coordinate map of the analysis, indexed in
// the power-of-two extended dimensions (see AccelMap).
func (s *ApproxSolver) CoordMap() []int32 { return s.am.CoordMap }

// buildReducedSystem walks every reduced-catalogue pixel of am and decodes
// its stencil into a diagonal weight and up to four neighbour references.
// A stencil with |C| > 4 is a registered square's perimeter pixel: its one
// off-centre weight equal to 1 is the direction that would otherwise point
// into the square's (unsolved) strict interior, and is redirected to reach
// across the square to the corresponding pixel on the opposite perimeter,
// at distance s = (|C|-1)/3, instead of the immediately adjacent pixel.
func buildReducedSystem(am *AccelMap) *reducedSystem {
	n := am.N
	red := &reducedSystem{
		order: make([]Coord, n),
		diag:  make([]float64, n),
		refs:  make([][4]weightedNeighbor, n),
	}
	stride := am.W
	for r := 0; r < am.OrigH; r++ {
		for c := 0; c < am.OrigW; c++ {
			idx := r*stride + c
			i := am.CoordMap[idx]
			if i < 0 {
				continue
			}
			st := am.Weights.At(idx)
			red.order[i] = Coord{r, c}
			red.diag[i] = float64(-st.C)

			isEdge := st.C < -4
			s := 0
			if isEdge {
				s = int((-st.C - 1) / 3)
			}
			dirs := [4]struct {
				w      int16
				dr, dc int
			}{
				{st.L, 0, -1},
				{st.R, 0, 1},
				{st.T, -1, 0},
				{st.B, 1, 0},
			}
			for d, dir := range dirs {
				if dir.w == 0 {
					continue
				}
				dist := 1
				if isEdge && dir.w == 1 {
					dist = s
				}
				nr, nc := r+dir.dr*dist, c+dir.dc*dist
				red.refs[i][d] = weightedNeighbor{
					weight: float64(dir.w),
					ref:    encodeReducedNeighbor(am, nr, nc),
				}
			}
		}
	}
	return red
}

// encodeReducedNeighbor resolves an image position to a Neighbor in
// reduced-catalogue terms: a non-negative reduced index if it is itself a
// reduced unknown, otherwise a boundary reference addressed in the
// caller's original (unextended) image stride, which is how components
// passed to ApplyApprox are addressed. A position inside a square's strict
// interior (-2) would be treated the same as a boundary reference; the
// references buildReducedSystem produces never land there, since every
// strict interior is enclosed by its square's perimeter and redirected
// edge references stop on the opposite perimeter.
func encodeReducedNeighbor(am *AccelMap, r, c int) Neighbor {
	idx := r*am.W + c
	if i := am.CoordMap[idx]; i >= 0 {
		return encodeUnknown(int(i))
	}
	return encodeBoundary(r*am.OrigW + c)
}

// factorizeReduced assembles the dense SPD matrix for the reduced system
// and factors it per method. The per-row weights Analyze produces are not
// symmetric pixel-to-pixel (an ordinary pixel references an adjacent
// square-edge pixel with unit weight, while that edge pixel references
// back with weight s): the assembler symmetrises by averaging each pair
// (i,j)/(j,i) entry, the standard fix for a finite-difference stencil
// whose per-row scale varies with local cell size. MethodCG reuses the
// same dense matrix for its matrix-vector product rather than working
// matrix-free, since the reduced catalogue this solver targets is, by
// design, much smaller than the exact solver's.
func factorizeReduced(red *reducedSystem, method Method) (*System, error) {
	n := len(red.order)
	s := &System{n: n, method: method, cgTol: 1e-6, cgIter: 2 * n}
	if n == 0 {
		return s, nil
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = red.diag[i]
		for _, wn := range red.refs[i] {
			if wn.weight == 0 {
				continue
			}
			if j, ok := wn.ref.Unknown(); ok {
				data[i*n+j] -= wn.weight
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := (data[i*n+j] + data[j*n+i]) / 2
			data[i*n+j], data[j*n+i] = avg, avg
		}
	}
	a := mat.NewSymDense(n, data)
	s.apply = func(x []float64) []float64 {
		xv := mat.NewVecDense(n, x)
		var yv mat.VecDense
		yv.MulVec(a, xv)
		return yv.RawVector().Data
	}

	switch method {
	case MethodCholesky:
		var chol mat.Cholesky
		if ok := chol.Factorize(a); !ok {
			return nil, fmt.Errorf("dirichlet: Cholesky factorisation failed on a %d-pixel reduced system (matrix is SPD by construction; this indicates an implementation bug)", n)
		}
		s.solveFn = func(b []float64) ([]float64, error) {
			bv := mat.NewVecDense(n, b)
			var xv mat.VecDense
			if err := chol.SolveVecTo(&xv, bv); err != nil {
				return nil, fmt.Errorf("dirichlet: Cholesky solve: %w", err)
			}
			x := make([]float64, n)
			for i := range x {
				x[i] = xv.AtVec(i)
			}
			return x, nil
		}
	case MethodCG:
		// apply, set above, is enough.
	default:
		return nil, fmt.Errorf("dirichlet: unknown method %d", method)
	}
	return s, nil
}

// ApplyApprox assembles the right-hand side from comp's boundary values,
// solves the reduced system, writes the solved values back into comp at
// every reduced-catalogue location, and then fills the strict interior of
// every registered square by bilinear interpolation of its four solved
// corners.
func ApplyApprox[C Numeric](s *ApproxSolver, comp Component[C]) ([]float32, error) {
	if len(s.red.order) == 0 {
		return nil, nil
	}
	b := make([]float64, len(s.red.order))
	for i := range b {
		var sum float64
		for _, wn := range s.red.refs[i] {
			if wn.weight == 0 {
				continue
			}
			if pos, ok := wn.ref.Boundary(); ok {
				sum += wn.weight * float64(comp.At(pos))
			}
		}
		b[i] = sum
	}

	x, err := s.sys.Solve(b)
	if err != nil {
		return nil, err
	}

	sol := make([]float32, len(x))
	solved := make(map[Coord]float64, len(x))
	for i, p := range s.red.order {
		sol[i] = float32(x[i])
		solved[p] = x[i]
		comp.Set(p.Row*s.am.OrigW+p.Col, roundBack[C](x[i]))
	}

	for _, sq := range s.am.Squares {
		fillSquareInterior(sq, comp, solved, s.am.OrigW)
	}
	return sol, nil
}

// fillSquareInterior writes the bilinear interpolant of sq's four solved
// corners into every strictly-interior pixel of the square.
func fillSquareInterior[C Numeric](sq Square, comp Component[C], solved map[Coord]float64, origW int) {
	last := sq.lastIdx()
	side := float64(sq.Side - 1)
	a := solved[Coord{sq.Top, sq.Left}]
	b := solved[Coord{sq.Top, sq.Left + last}]
	cc := solved[Coord{sq.Top + last, sq.Left}]
	d := solved[Coord{sq.Top + last, sq.Left + last}]
	for i := 1; i < last; i++ {
		fi := float64(i) / side
		for j := 1; j < last; j++ {
			fj := float64(j) / side
			v := a*(1-fi)*(1-fj) + b*(1-fi)*fj + cc*fi*(1-fj) + d*fi*fj
			r, c := sq.Top+i, sq.Left+j
			comp.Set(r*origW+c, roundBack[C](v))
		}
	}
}
