package geometry

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis
type Cube struct {
	shapeBase
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// LocalIntersect runs the slab method: intersect the ray with each pair of
// parallel faces, keeping the largest entry t and smallest exit t
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{{T: tMin, Object: c}, {T: tMax, Object: c}}
}

// checkAxis intersects the ray with one slab (a pair of parallel planes at
// -1 and +1 on a single axis)
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt returns the axis of the component with the largest absolute
// value at the point
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
