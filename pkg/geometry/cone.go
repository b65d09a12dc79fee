package geometry

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Cone is the infinite double-napped cone about the local y axis with its
// apex at the origin, optionally truncated and capped. The cap radius at
// height y equals |y|.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an untruncated open double cone
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCone creates a cone clipped to the given y bounds
func NewTruncatedCone(minY, maxY float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minY
	c.Maximum = maxY
	c.Closed = closed
	return c
}

// LocalIntersect intersects the lateral surface, handling the degenerate
// case where the ray parallels one half of the cone, then adds caps
func (c *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// ray misses both halves entirely
	case math.Abs(a) < core.Epsilon:
		// parallel to one half: a single lateral hit
		t := -cc / (2 * b)
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, Intersection{T: t, Object: c})
		}
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			break
		}
		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := o.Y + t0*d.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, Intersection{T: t0, Object: c})
		}
		y1 := o.Y + t1*d.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, Intersection{T: t1, Object: c})
		}
	}

	return c.intersectCaps(ray, xs)
}

// intersectCaps adds intersections with the end caps, whose radius grows
// with |y|
func (c *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, Intersection{T: t, Object: c})
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, Intersection{T: t, Object: c})
	}
	return xs
}

// LocalNormalAt distinguishes caps from the lateral surface; on the lateral
// surface the y component has magnitude equal to the radial distance,
// pointing away from the apex
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
