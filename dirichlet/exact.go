package dirichlet

// ExactSolver is the direct (non-accelerated) Dirichlet solver. It is
// built once per (mask, width, height) pair and owns a factored sparse SPD
// system; it may then be applied to any number of image components of
// matching dimensions. Copying an ExactSolver is not meaningful: the
// factorisation is exclusive to the instance that built it, so callers
// needing an independent copy should construct a new solver instead (see
// §5 of the specification on the move-only intent of this type).
type ExactSolver struct {
	cat *Catalogue
	nt  *NeighborTable
	sys *System
}

// NewExact builds the catalogue from an explicit list of (row,col) pairs
// and factors the resulting system. Pairs outside the image interior are
// dropped; see NewCatalogueFromCoords.
func NewExact(coords []Coord, w, h int, method Method) (*ExactSolver, error) {
	cat := NewCatalogueFromCoords(coords, w, h)
	return newExact(cat, method)
}

// NewExactFromMask builds the catalogue from a mask component (non-zero
// means hole) and factors the resulting system.
func NewExactFromMask[M Numeric](mask []M, w, h int, method Method) (*ExactSolver, error) {
	cat := NewCatalogueFromMask(mask, w, h)
	return newExact(cat, method)
}

func newExact(cat *Catalogue, method Method) (*ExactSolver, error) {
	nt := BuildNeighbors(cat)
	sys, err := Factorize(nt, cat.N(), method)
	if err != nil {
		return nil, err
	}
	return &ExactSolver{cat: cat, nt: nt, sys: sys}, nil
}

// N reports the number of unknowns (catalogue size) this solver was built
// for.
func (s *ExactSolver) N() int { return s.cat.N() }

// Coords exposes the catalogue's ordered coordinate list; index i of the
// solution returned by ApplyExact corresponds to Coords()[i].
func (s *ExactSolver) Coords() []Coord { return s.cat.Coords }

// ApplyExact runs the solve for one image component and returns the
// solution vector, ordered as the solver's catalogue. It also writes the
// solution back into comp's backing slice at each catalogue location,
// rounded per roundBack.
//
// Go methods cannot themselves be generic, so this is a free function
// parameterised over the component's scalar type rather than a method on
// *ExactSolver.
func ApplyExact[C Numeric](s *ExactSolver, comp Component[C]) ([]float32, error) {
	if s.cat.N() == 0 {
		return nil, nil
	}
	b := AssembleRHS(s.nt, comp)
	x, err := s.sys.Solve(b)
	if err != nil {
		return nil, err
	}
	sol := make([]float32, len(x))
	for i, p := range s.cat.Coords {
		sol[i] = float32(x[i])
		comp.Set(p.Row*s.cat.W+p.Col, roundBack[C](x[i]))
	}
	return sol, nil
}
