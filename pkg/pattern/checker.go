package pattern

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Checker alternates between two colors in a 3D checkerboard
type Checker struct {
	base
	A, B core.Color
}

// NewChecker creates a checker pattern
func NewChecker(a, b core.Color) *Checker {
	return &Checker{base: newBase(), A: a, B: b}
}

// ColorAt returns A when floor(x)+floor(y)+floor(z) is even
func (c *Checker) ColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return c.A
	}
	return c.B
}
