package geometry

import (
	"fmt"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Group is a shape that contains other shapes. It has no surface of its
// own; its transform applies to every child. Children hold a non-owning
// back-reference to the group for coordinate conversions.
type Group struct {
	shapeBase
	children []Shape
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{shapeBase: newShapeBase()}
}

// AddChild adds a shape to the group and records the group as its parent.
// The child list is built during scene construction and read-only while
// rendering.
func (g *Group) AddChild(shapes ...Shape) {
	for _, s := range shapes {
		s.setParent(g)
		g.children = append(g.children, s)
	}
}

// Children returns the group's child shapes
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect collects intersections from every child, sorted by t. The
// local ray is handed to each child's world-space Intersect so nested
// transforms compose.
func (g *Group) LocalIntersect(ray core.Ray) []Intersection {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: a group has no surface, so normals are only ever
// computed on its children
func (g *Group) LocalNormalAt(core.Tuple) core.Tuple {
	panic(fmt.Sprintf("group %d has no surface normal; query its children", g.ID()))
}
