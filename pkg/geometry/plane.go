package geometry

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane at y=0
type Plane struct {
	shapeBase
}

// NewPlane creates an xz plane with the default material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect returns the single crossing of a non-parallel ray
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		// parallel or coplanar rays never cross the surface
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
