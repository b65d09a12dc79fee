package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for all floating-point comparisons in the
// tracer. Geometry and shading never compare floats exactly.
const Epsilon = 1e-5

// Tuple is a 4-component value in homogeneous coordinates.
// W=1 denotes a point, W=0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with W=1
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W=0
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point (W=1)
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector (W=0)
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. Normalizing a
// zero-length tuple is degenerate geometry and returns an error.
func (t Tuple) Normalize() (Tuple, error) {
	mag := t.Magnitude()
	if mag < Epsilon {
		return Tuple{}, fmt.Errorf("cannot normalize zero-length tuple %v", t)
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}, nil
}

// NormalizeUnchecked returns a unit tuple and panics on zero length.
// Used on interior paths where a zero-length direction is a bug, not input.
func (t Tuple) NormalizeUnchecked() Tuple {
	n, err := t.Normalize()
	if err != nil {
		panic(err)
	}
	return n
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors (W=0)
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples match within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEq(t.X, other.X) &&
		ApproxEq(t.Y, other.Y) &&
		ApproxEq(t.Z, other.Z) &&
		ApproxEq(t.W, other.W)
}

// ApproxEq reports whether two floats match within Epsilon
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
