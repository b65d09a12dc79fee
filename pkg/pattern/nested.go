package pattern

import "github.com/kwhite/go-whitted-raytracer/pkg/core"

// Nested uses an outer pattern as a selector between two inner patterns.
// Where the outer pattern evaluates dark (mean channel below 0.5) the first
// inner pattern is used, elsewhere the second. An outer checker in black and
// white therefore tiles the two inner patterns.
type Nested struct {
	base
	Outer Pattern
	A, B  Pattern
}

// NewNested creates a nested pattern
func NewNested(outer, a, b Pattern) *Nested {
	return &Nested{base: newBase(), Outer: outer, A: a, B: b}
}

// ColorAt selects an inner pattern by the outer pattern's output
func (n *Nested) ColorAt(point core.Tuple) core.Color {
	sel := AtObject(n.Outer, point)
	if (sel.R+sel.G+sel.B)/3 < 0.5 {
		return AtObject(n.A, point)
	}
	return AtObject(n.B, point)
}
