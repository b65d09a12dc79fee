package geometry

import "sort"

// Intersection pairs a ray parameter with the shape that was hit. T may be
// negative for intersections behind the ray origin.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is a t-sorted collection of intersections
type Intersections []Intersection

// NewIntersections sorts the given intersections by t
func NewIntersections(xs ...Intersection) Intersections {
	sorted := Intersections(xs)
	sorted.Sort()
	return sorted
}

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the smallest non-negative t. The second
// return value is false when every intersection lies behind the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}
