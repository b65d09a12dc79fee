package core

import "math"

// Transform is an affine transformation matrix together with its cached
// inverse and inverse-transpose. The three matrices are only ever updated
// together, so they cannot drift.
type Transform struct {
	Matrix   Matrix
	Inverse  Matrix
	InverseT Matrix // inverse transpose, used to transform normals
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	id := Identity()
	return Transform{Matrix: id, Inverse: id, InverseT: id}
}

// NewTransform builds a transform from an arbitrary matrix, computing and
// caching its inverse. Fails if the matrix is singular.
func NewTransform(m Matrix) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{Matrix: m, Inverse: inv, InverseT: inv.Transpose()}, nil
}

// compose pre-multiplies a primitive transformation with a known inverse.
// Chained calls therefore apply in call order: t.RotateX(r).Scale(s) first
// rotates, then scales, matching right-to-left matrix composition.
func (t Transform) compose(m, inv Matrix) Transform {
	newInv := t.Inverse.Multiply(inv)
	return Transform{
		Matrix:   m.Multiply(t.Matrix),
		Inverse:  newInv,
		InverseT: newInv.Transpose(),
	}
}

// Translate applies a translation by (x, y, z)
func (t Transform) Translate(x, y, z float64) Transform {
	return t.compose(Translation(x, y, z), Translation(-x, -y, -z))
}

// Scale applies a scaling by (x, y, z)
func (t Transform) Scale(x, y, z float64) Transform {
	return t.compose(Scaling(x, y, z), Scaling(1/x, 1/y, 1/z))
}

// RotateX applies a rotation about the x axis by r radians
func (t Transform) RotateX(r float64) Transform {
	return t.compose(RotationX(r), RotationX(-r))
}

// RotateY applies a rotation about the y axis by r radians
func (t Transform) RotateY(r float64) Transform {
	return t.compose(RotationY(r), RotationY(-r))
}

// RotateZ applies a rotation about the z axis by r radians
func (t Transform) RotateZ(r float64) Transform {
	return t.compose(RotationZ(r), RotationZ(-r))
}

// Shear applies a shearing transformation. Each parameter moves one
// coordinate in proportion to another, e.g. xy moves x in proportion to y.
func (t Transform) Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	m := Shearing(xy, xz, yx, yz, zx, zy)
	inv, err := m.Inverse()
	if err != nil {
		panic(err) // shear matrices built here are always invertible
	}
	return t.compose(m, inv)
}

// Apply transforms a tuple by the forward matrix
func (t Transform) Apply(p Tuple) Tuple {
	return t.Matrix.MultiplyTuple(p)
}

// ApplyInverse transforms a tuple by the cached inverse matrix
func (t Transform) ApplyInverse(p Tuple) Tuple {
	return t.Inverse.MultiplyTuple(p)
}

// TransformNormal converts a local-space normal to the parent space using
// the inverse transpose, then re-normalizes. The re-normalization corrects
// the distortion introduced by non-uniform scaling.
func (t Transform) TransformNormal(n Tuple) Tuple {
	world := t.InverseT.MultiplyTuple(n)
	world.W = 0
	return world.NormalizeUnchecked()
}

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation matrix about the x axis
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation matrix about the y axis
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation matrix about the z axis
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a shearing matrix
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform returns the transform that orients the world relative to an
// eye at from, looking at to, with the given up vector.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return Matrix{}, err
	}
	upNorm, err := up.Normalize()
	if err != nil {
		return Matrix{}, err
	}
	left := forward.Cross(upNorm)
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
