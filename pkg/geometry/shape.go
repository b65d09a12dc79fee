// Package geometry implements the shape primitives and ray-shape
// intersection. Shapes do their geometry in local space; the transform
// attached to each shape (and to enclosing groups) maps between local and
// world space.
package geometry

import (
	"sync/atomic"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/material"
)

// Shape is the interface implemented by every primitive. The closed set of
// variants lives in this package; the unexported parent hook keeps it that
// way.
type Shape interface {
	// LocalIntersect returns every intersection of a local-space ray with
	// the shape, including negative t values
	LocalIntersect(ray core.Ray) []Intersection
	// LocalNormalAt returns the surface normal at a local-space point
	LocalNormalAt(point core.Tuple) core.Tuple

	Transform() core.Transform
	SetTransform(core.Transform)
	Material() material.Material
	SetMaterial(material.Material)

	// WorldToObject converts a world point to local space through every
	// enclosing group
	WorldToObject(p core.Tuple) core.Tuple
	// NormalToWorld converts a local normal to world space through every
	// enclosing group
	NormalToWorld(n core.Tuple) core.Tuple

	// ID is a unique identity token, used to compare shapes when tracking
	// refraction boundaries
	ID() uint64

	Parent() Shape
	setParent(Shape)
}

// Intersect transforms a world-space ray into the shape's local space and
// collects the local intersections
func Intersect(s Shape, ray core.Ray) []Intersection {
	local := ray.TransformBy(s.Transform().Inverse)
	return s.LocalIntersect(local)
}

// NormalAt returns the world-space surface normal at a world-space point
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}

var shapeIDs atomic.Uint64

// shapeBase carries the state shared by every shape variant
type shapeBase struct {
	id        uint64
	transform core.Transform
	mat       material.Material
	parent    Shape
}

func newShapeBase() shapeBase {
	return shapeBase{
		id:        shapeIDs.Add(1),
		transform: core.IdentityTransform(),
		mat:       material.Default(),
	}
}

// Transform returns the shape's transform
func (b *shapeBase) Transform() core.Transform {
	return b.transform
}

// SetTransform replaces the shape's transform. Shapes are configured during
// scene construction and read-only while rendering.
func (b *shapeBase) SetTransform(t core.Transform) {
	b.transform = t
}

// Material returns the shape's material
func (b *shapeBase) Material() material.Material {
	return b.mat
}

// SetMaterial replaces the shape's material
func (b *shapeBase) SetMaterial(m material.Material) {
	b.mat = m
}

// ID returns the shape's identity token
func (b *shapeBase) ID() uint64 {
	return b.id
}

// Parent returns the enclosing group, or nil
func (b *shapeBase) Parent() Shape {
	return b.parent
}

func (b *shapeBase) setParent(p Shape) {
	b.parent = p
}

// WorldToObject converts a world point into the shape's local space,
// applying enclosing group transforms outermost first
func (b *shapeBase) WorldToObject(p core.Tuple) core.Tuple {
	if b.parent != nil {
		p = b.parent.WorldToObject(p)
	}
	return b.transform.ApplyInverse(p)
}

// NormalToWorld converts a local normal to world space, applying the
// shape's inverse-transpose then each enclosing group's, innermost first
func (b *shapeBase) NormalToWorld(n core.Tuple) core.Tuple {
	n = b.transform.TransformNormal(n)
	if b.parent != nil {
		n = b.parent.NormalToWorld(n)
	}
	return n
}
