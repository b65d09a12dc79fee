package pattern

import "github.com/kwhite/go-whitted-raytracer/pkg/core"

// Solid is a pattern with a single color everywhere
type Solid struct {
	base
	Color core.Color
}

// NewSolid creates a solid color pattern
func NewSolid(c core.Color) *Solid {
	return &Solid{base: newBase(), Color: c}
}

// ColorAt returns the solid color regardless of point
func (s *Solid) ColorAt(core.Tuple) core.Color {
	return s.Color
}
