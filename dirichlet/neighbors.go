package dirichlet

// Neighbor fuses two kinds of reference into one signed integer: a
// non-negative value is the catalogue index of another unknown; a negative
// value e encodes the row-major linear image offset of a fixed boundary
// pixel as e = -(offset+1). The sign test this enables is an optimisation
// for the inner assembly loops; Unknown/Boundary below give the two-variant
// view for callers that want it.
type Neighbor int32

func encodeUnknown(idx int) Neighbor  { return Neighbor(idx) }
func encodeBoundary(pos int) Neighbor { return Neighbor(-pos - 1) }

// Unknown reports the catalogue index this neighbor refers to, if it
// refers to another unknown rather than a boundary pixel.
func (n Neighbor) Unknown() (int, bool) {
	if n >= 0 {
		return int(n), true
	}
	return 0, false
}

// Boundary reports the row-major linear image offset this neighbor refers
// to, if it refers to a fixed boundary pixel rather than another unknown.
func (n Neighbor) Boundary() (int, bool) {
	if n < 0 {
		return int(-n - 1), true
	}
	return 0, false
}

// NeighborTable holds, for every catalogue row, the encoding of its four
// cardinal neighbours. L/R/T/B each have length cat.N().
type NeighborTable struct {
	L, R, T, B []Neighbor
}

// BuildNeighbors encodes the four cardinal neighbours of every catalogue
// entry. Because catalogue coordinates are always strictly interior
// (§4.1), every cardinal neighbour lies within the image and this never
// needs to special-case an out-of-bounds lookup.
func BuildNeighbors(cat *Catalogue) *NeighborTable {
	n := cat.N()
	nt := &NeighborTable{
		L: make([]Neighbor, n),
		R: make([]Neighbor, n),
		T: make([]Neighbor, n),
		B: make([]Neighbor, n),
	}
	w := cat.W
	for i, p := range cat.Coords {
		nt.L[i] = encodeNeighbor(cat, p.Row, p.Col-1, w)
		nt.R[i] = encodeNeighbor(cat, p.Row, p.Col+1, w)
		nt.T[i] = encodeNeighbor(cat, p.Row-1, p.Col, w)
		nt.B[i] = encodeNeighbor(cat, p.Row+1, p.Col, w)
	}
	return nt
}

func encodeNeighbor(cat *Catalogue, r, c, w int) Neighbor {
	if j, ok := cat.Index(r, c); ok {
		return encodeUnknown(j)
	}
	return encodeBoundary(r*w + c)
}
