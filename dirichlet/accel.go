package dirichlet

import (
	"log"

	"github.com/jvlmdr/dirichlet-fill/arrutil"
)

// Square is the descriptor of one registered bilinear-interpolation
// region: a side-by-side block of pixels, side a power of two >= 4, whose
// strict interior (excluding the one-pixel perimeter ring) is excluded
// from the reduced linear system and filled by bilinear interpolation of
// the square's four corners after the solve.
type Square struct {
	Top, Left, Side int
}

// lastIdx is the row/column offset of the far side of the square relative
// to Top/Left.
func (s Square) lastIdx() int { return s.Side - 1 }

// AccelMap is the product of the bilinear-acceleration analyser: the
// per-pixel weight stencils (including the anisotropic ones along
// registered squares' perimeters), the reduced coordinate map (-1 for
// discarded border/boundary pixels, -2 for a square's strict interior,
// otherwise the index into the reduced catalogue), the list of registered
// squares, and the size of the reduced catalogue.
type AccelMap struct {
	Weights  *Weights
	CoordMap []int32
	Squares  []Square
	N        int
	// W, H are the power-of-two extended dimensions backing Weights and
	// CoordMap; OrigW, OrigH are the caller's true image dimensions.
	W, H         int
	OrigW, OrigH int
}

// minSquareLevel is the smallest binning level at which a square can be
// registered: level 2 means a cell of the twice-binned mask, i.e. a
// 4-by-4 block of original pixels (side 2^2 = 4), the smallest square
// size named by the analyser.
const minSquareLevel = 2

// Analyze runs the bilinear-acceleration analyser over a hole mask of the
// given dimensions: it extends the mask to power-of-two dimensions,
// descends through successive 2x2-binned levels registering the largest
// valid square at each cell before falling back to smaller ones, then
// assigns plain five-point stencils to every hole pixel the squares did
// not consume. As with the exact solver, only hole pixels strictly
// interior to the image participate; a mask pixel on the outermost row or
// column is silently discarded.
func Analyze[M Numeric](mask []M, w, h int) *AccelMap {
	boolMask := make([]bool, w*h)
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			boolMask[r*w+c] = mask[r*w+c] != 0
		}
	}

	extW, extH := arrutil.NextPow2(w), arrutil.NextPow2(h)
	if extW < 2 || extH < 2 {
		log.Printf("dirichlet: %dx%d mask is smaller than 2x2 after power-of-two extension; the solver has no unknowns", w, h)
	}
	extMask := arrutil.ExtendZeroBool(boolMask, w, h, extW, extH)

	levels, lw, lh := buildLevels(extMask, extW, extH)
	squares := registerSquares(levels, lw, lh)

	wts := NewWeights(extW, extH)
	coordMap := make([]int32, extW*extH)
	for i := range coordMap {
		coordMap[i] = noEntry
	}

	for _, sq := range squares {
		applySquare(sq, wts, coordMap, extMask, extW)
	}

	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			idx := r*extW + c
			if !extMask[idx] {
				continue
			}
			wts.Set(idx, Stencil{L: 1, R: 1, T: 1, B: 1, C: -4})
		}
	}

	n := int32(0)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := r*extW + c
			if coordMap[idx] == -2 {
				continue
			}
			if wts.C[idx] == 0 {
				continue
			}
			coordMap[idx] = n
			n++
		}
	}

	return &AccelMap{
		Weights: wts, CoordMap: coordMap, Squares: squares, N: int(n),
		W: extW, H: extH, OrigW: w, OrigH: h,
	}
}

// buildLevels computes the chain of successively 2x2-binned masks,
// starting at level 0 (the unbinned, power-of-two-extended mask) and
// continuing while the current level's dimensions are still at least
// 8x8, matching the descent bound of the multi-resolution analysis.
func buildLevels(m0 []bool, w0, h0 int) (levels [][]bool, ws, hs []int) {
	levels = [][]bool{m0}
	ws = []int{w0}
	hs = []int{h0}
	w, h, cur := w0, h0, m0
	for w >= 8 && h >= 8 {
		nb, nw, nh := arrutil.Bin2x2(cur, w, h)
		levels = append(levels, nb)
		ws = append(ws, nw)
		hs = append(hs, nh)
		cur, w, h = nb, nw, nh
	}
	return levels, ws, hs
}

// registerSquares walks the level chain from the deepest (largest
// squares) back up to minSquareLevel (side 4), registering a square for
// every accepted cell and pruning each shallower level's acceptance map
// against the squares already accepted one level deeper, so a pixel is
// never claimed by more than one square.
func registerSquares(levels [][]bool, ws, hs []int) []Square {
	top := len(levels) - 1
	if top < minSquareLevel {
		return nil
	}
	var squares []Square
	var deeperValid []bool
	deeperW, deeperH := 0, 0
	for level := top; level >= minSquareLevel; level-- {
		valid := arrutil.ValidSquare(levels[level], ws[level], hs[level])
		if deeperValid != nil {
			claimed, _, _ := arrutil.Unbin2x2(deeperValid, deeperW, deeperH)
			for i := range valid {
				if claimed[i] {
					valid[i] = false
				}
			}
		}
		side := 1 << uint(level)
		for r := 0; r < hs[level]; r++ {
			for c := 0; c < ws[level]; c++ {
				if valid[r*ws[level]+c] {
					squares = append(squares, Square{Top: r * side, Left: c * side, Side: side})
				}
			}
		}
		deeperValid, deeperW, deeperH = valid, ws[level], hs[level]
	}
	return squares
}

// applySquare writes the perimeter stencils for one registered square,
// marks its strict interior as -2 in coordMap (excluded from the reduced
// catalogue, filled by bilinear interpolation after the solve), and
// zeroes the extended mask across the whole footprint so later passes
// (smaller squares and the plain five-point fallback) skip it entirely.
func applySquare(sq Square, wts *Weights, coordMap []int32, extMask []bool, extW int) {
	last := sq.lastIdx()
	s := int16(last)
	for i := 0; i <= last; i++ {
		for j := 0; j <= last; j++ {
			r, c := sq.Top+i, sq.Left+j
			idx := r*extW + c
			extMask[idx] = false

			onTop, onBot := i == 0, i == last
			onLft, onRgt := j == 0, j == last
			switch {
			case (onTop || onBot) && (onLft || onRgt):
				wts.Set(idx, Stencil{L: 1, R: 1, T: 1, B: 1, C: -4})
			case onTop:
				wts.Set(idx, Stencil{L: s, R: s, T: s, B: 1, C: -(3*s + 1)})
			case onBot:
				wts.Set(idx, Stencil{L: s, R: s, T: 1, B: s, C: -(3*s + 1)})
			case onLft:
				wts.Set(idx, Stencil{L: s, R: 1, T: s, B: s, C: -(3*s + 1)})
			case onRgt:
				wts.Set(idx, Stencil{L: 1, R: s, T: s, B: s, C: -(3*s + 1)})
			default:
				coordMap[idx] = -2
			}
		}
	}
}
