// Package pattern implements procedural surface patterns. A pattern maps a
// point in its own local space to a color; composite patterns delegate to
// sub-patterns, each carrying its own transform.
package pattern

import (
	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Pattern computes a color from a point in the pattern's local space.
// Implementations are pure: the color depends only on the point and the
// pattern's own immutable state.
type Pattern interface {
	// ColorAt returns the color at a point already in pattern space
	ColorAt(point core.Tuple) core.Color
	// Transform returns the pattern's transform relative to its parent space
	Transform() core.Transform
}

// AtObject evaluates a pattern at a point in the owning object's space,
// applying the pattern's own inverse transform first. Composite patterns use
// the same helper for their children, so transforms compose naturally.
func AtObject(p Pattern, objectPoint core.Tuple) core.Color {
	return p.ColorAt(p.Transform().ApplyInverse(objectPoint))
}

// base holds the transform shared by every pattern variant
type base struct {
	transform core.Transform
}

// Transform returns the pattern's transform
func (b *base) Transform() core.Transform {
	return b.transform
}

// SetTransform replaces the pattern's transform. Patterns are configured
// during scene construction and treated as read-only while rendering.
func (b *base) SetTransform(t core.Transform) {
	b.transform = t
}

func newBase() base {
	return base{transform: core.IdentityTransform()}
}
