package pattern

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Stripe alternates between two colors along the x axis
type Stripe struct {
	base
	A, B core.Color
}

// NewStripe creates a stripe pattern
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// ColorAt returns A when floor(x) is even, B otherwise
func (s *Stripe) ColorAt(point core.Tuple) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return s.A
	}
	return s.B
}
