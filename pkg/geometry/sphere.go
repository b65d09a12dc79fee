package geometry

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the local-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a glass material, a common
// fixture for refraction scenes and tests
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves the quadratic for a ray against the unit sphere
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	// vector from the sphere's center to the ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{{T: t1, Object: s}, {T: t2, Object: s}}
}

// LocalNormalAt returns the vector from the center to the point
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}
