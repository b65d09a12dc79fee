package pattern

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Gradient linearly interpolates between two colors along the x axis
type Gradient struct {
	base
	A, B core.Color
}

// NewGradient creates a gradient pattern
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

// ColorAt blends A toward B by the fractional distance along x
func (g *Gradient) ColorAt(point core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Scale(fraction))
}
