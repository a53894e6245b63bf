package dirichlet

import "log"

// Coord is the row/column position of one pixel, in that order throughout
// this package (some historical versions of this algorithm drifted between
// (row,col) and (col,row); this package fixes (row,col) everywhere).
type Coord struct {
	Row, Col int
}

// Catalogue is the ordered list of hole pixels together with the reverse
// map from image position to catalogue index. Its row order defines the
// row order of the linear system and of every solution vector this package
// produces.
type Catalogue struct {
	Coords   []Coord
	CoordMap []int32 // length W*H; -1 where not a catalogue entry
	W, H     int
}

const noEntry int32 = -1

// interior reports whether (r,c) is strictly inside a w-by-h image, i.e.
// not on the outermost row or column. Pixels outside this strip are
// silently discarded per the discipline in §7 of the specification.
func interior(r, c, w, h int) bool {
	return r >= 1 && r <= h-2 && c >= 1 && c <= w-2
}

// newCatalogue allocates the coordinate map and fills it in from coords,
// which callers must have already filtered to interior pixels and ordered
// the way they want the linear system's rows ordered.
func newCatalogue(coords []Coord, w, h int) *Catalogue {
	cmap := make([]int32, w*h)
	for i := range cmap {
		cmap[i] = noEntry
	}
	for i, p := range coords {
		cmap[p.Row*w+p.Col] = int32(i)
	}
	return &Catalogue{Coords: coords, CoordMap: cmap, W: w, H: h}
}

// NewCatalogueFromCoords builds a Catalogue from an explicit, caller-
// ordered list of (row,col) pairs. Pairs outside the image's interior
// (row not in [1,h-2] or col not in [1,w-2]) are dropped; one warning is
// logged per dropped pair and construction continues with the rest.
// Caller order among the surviving pairs is preserved.
func NewCatalogueFromCoords(coords []Coord, w, h int) *Catalogue {
	kept := make([]Coord, 0, len(coords))
	for _, p := range coords {
		if !interior(p.Row, p.Col, w, h) {
			log.Printf("dirichlet: dropping out-of-bounds hole pixel (row=%d, col=%d) for %dx%d image", p.Row, p.Col, w, h)
			continue
		}
		kept = append(kept, p)
	}
	return newCatalogue(kept, w, h)
}

// NewCatalogueFromMask scans mask row-major, excluding the outermost
// border, and emits every pixel whose value is not the scalar type's zero.
func NewCatalogueFromMask[M Numeric](mask []M, w, h int) *Catalogue {
	var zero M
	coords := make([]Coord, 0)
	for r := 1; r <= h-2; r++ {
		for c := 1; c <= w-2; c++ {
			if mask[r*w+c] != zero {
				coords = append(coords, Coord{r, c})
			}
		}
	}
	return newCatalogue(coords, w, h)
}

// Index returns the catalogue index of (r,c), and whether (r,c) is in fact
// a catalogue entry.
func (cat *Catalogue) Index(r, c int) (int, bool) {
	v := cat.CoordMap[r*cat.W+c]
	if v == noEntry {
		return 0, false
	}
	return int(v), true
}

// N is the number of unknowns in the catalogue.
func (cat *Catalogue) N() int { return len(cat.Coords) }
