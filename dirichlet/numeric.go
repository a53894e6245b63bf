package dirichlet

import "golang.org/x/exp/constraints"

// Numeric is the set of pixel-component scalar types the solver accepts:
// any integer or floating-point type. A mask component is "hole" iff its
// value compares unequal to the type's zero.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Component is a view onto one colour channel of a row-major image. Data
// holds the full interleaved backing storage; Stride is the distance, in
// elements, between consecutive pixels' components for this channel, so
// the same view can be reused once per channel of a multi-component image
// without rearranging memory. The component at row-major linear offset pos
// (pos = row*width+col) lives at Data[Offset+pos*Stride].
type Component[C Numeric] struct {
	Data   []C
	Offset int
	Stride int
}

// NewComponent builds a Component with Offset zero over the given scalar
// plane and stride.
func NewComponent[C Numeric](data []C, stride int) Component[C] {
	return Component[C]{Data: data, Stride: stride}
}

// At returns the component's value at row-major linear offset pos.
func (c Component[C]) At(pos int) C {
	return c.Data[c.Offset+pos*c.Stride]
}

// Set stores v at row-major linear offset pos.
func (c Component[C]) Set(pos int, v C) {
	c.Data[c.Offset+pos*c.Stride] = v
}

// Len reports how many pixels the component plane covers, derived from its
// backing slice and stride.
func (c Component[C]) Len() int {
	if c.Stride == 0 {
		return 0
	}
	return (len(c.Data) - c.Offset + c.Stride - 1) / c.Stride
}
