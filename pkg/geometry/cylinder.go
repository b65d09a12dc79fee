package geometry

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Cylinder is the infinite unit cylinder about the local y axis, optionally
// truncated to (Minimum, Maximum) and capped
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an untruncated open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder clipped to the given y bounds
func NewTruncatedCylinder(minY, maxY float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minY
	c.Maximum = maxY
	c.Closed = closed
	return c
}

// LocalIntersect intersects the lateral surface via the quadratic formula,
// clips to the y bounds, and adds cap intersections when closed
func (c *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// keep only lateral hits between the truncation planes
		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, Intersection{T: t0, Object: c})
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, Intersection{T: t1, Object: c})
		}
	}

	return c.intersectCaps(ray, xs)
}

// intersectCaps adds intersections with the two end-cap disks
func (c *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// lower cap at y = Minimum
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, Intersection{T: t, Object: c})
	}

	// upper cap at y = Maximum
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, Intersection{T: t, Object: c})
	}
	return xs
}

// checkCap reports whether the ray at t lies within the cap radius
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt distinguishes the caps from the lateral surface by the
// point's distance from the y axis
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
