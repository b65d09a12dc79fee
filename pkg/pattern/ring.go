package pattern

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Ring alternates between two colors in concentric rings in the xz plane
type Ring struct {
	base
	A, B core.Color
}

// NewRing creates a ring pattern
func NewRing(a, b core.Color) *Ring {
	return &Ring{base: newBase(), A: a, B: b}
}

// ColorAt returns A when the floored radial distance in xz is even
func (r *Ring) ColorAt(point core.Tuple) core.Color {
	radius := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if math.Mod(math.Floor(radius), 2) == 0 {
		return r.A
	}
	return r.B
}
