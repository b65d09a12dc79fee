package world

import (
	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/geometry"
)

// Computations caches the vectors and points shading needs at an
// intersection so they are derived once per hit
type Computations struct {
	T      float64
	Object geometry.Shape
	Point  core.Tuple
	// OverPoint is nudged along the normal to keep shadow and reflection
	// rays from re-hitting the surface they originate on
	OverPoint core.Tuple
	// UnderPoint is nudged the opposite way, the origin for refraction rays
	UnderPoint core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices on the incoming and outgoing
	// sides of the surface
	N1 float64
	N2 float64
}

// PrepareComputations derives the shading state for the hit. The full sorted
// intersection list is needed to work out which media the ray passes
// between; pass just the hit when refraction is not of interest.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.At(hit.T),
		EyeV:   ray.Direction.Negate(),
	}

	comps.NormalV = geometry.NormalAt(hit.Object, comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveBoundary(hit, xs)
	return comps
}

// refractiveBoundary walks the sorted intersections up to the hit, tracking
// which shapes the ray is currently inside, and reads off the refractive
// indices either side of the boundary. Exiting the outermost shape yields
// the vacuum index 1.0.
func refractiveBoundary(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0

	var containers []geometry.Shape
	for _, x := range xs {
		atHit := x == hit

		if atHit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, c := range shapes {
		if c.ID() == s.ID() {
			return i
		}
	}
	return -1
}
