package pattern

import "github.com/kwhite/go-whitted-raytracer/pkg/core"

// Blend averages the colors of two patterns at every point
type Blend struct {
	base
	A, B Pattern
}

// NewBlend creates a blended pattern
func NewBlend(a, b Pattern) *Blend {
	return &Blend{base: newBase(), A: a, B: b}
}

// ColorAt returns the average of both sub-pattern colors at the point
func (bl *Blend) ColorAt(point core.Tuple) core.Color {
	ca := AtObject(bl.A, point)
	cb := AtObject(bl.B, point)
	return ca.Add(cb).Scale(0.5)
}
