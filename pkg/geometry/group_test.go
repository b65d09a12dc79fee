package geometry

import (
	"math"
	"testing"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

func TestGroup_Empty(t *testing.T) {
	g := NewGroup()

	if len(g.Children()) != 0 {
		t.Errorf("Expected no children, got %d", len(g.Children()))
	}
	r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	if xs := g.LocalIntersect(r); len(xs) != 0 {
		t.Errorf("Expected no intersections, got %d", len(xs))
	}
}

func TestGroup_AddChildSetsParent(t *testing.T) {
	g := NewGroup()
	s := NewSphere()
	g.AddChild(s)

	if len(g.Children()) != 1 || g.Children()[0].ID() != s.ID() {
		t.Fatal("Expected the sphere to be the group's only child")
	}
	if s.Parent() == nil || s.Parent().ID() != g.ID() {
		t.Error("Expected the sphere's parent to be the group")
	}
}

func TestGroup_LocalIntersect(t *testing.T) {
	g := NewGroup()

	s1 := NewSphere()
	s2 := NewSphere()
	s2.SetTransform(core.IdentityTransform().Translate(0, 0, -3))
	s3 := NewSphere()
	s3.SetTransform(core.IdentityTransform().Translate(5, 0, 0))
	g.AddChild(s1, s2, s3)

	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := g.LocalIntersect(r)

	if len(xs) != 4 {
		t.Fatalf("Expected 4 intersections, got %d", len(xs))
	}
	// sorted by t: both hits on the nearer sphere first
	wantIDs := []uint64{s2.ID(), s2.ID(), s1.ID(), s1.ID()}
	for i, want := range wantIDs {
		if xs[i].Object.ID() != want {
			t.Errorf("Intersection %d: expected shape %d, got %d", i, want, xs[i].Object.ID())
		}
	}
}

func TestGroup_TransformedGroupIntersect(t *testing.T) {
	g := NewGroup()
	g.SetTransform(core.IdentityTransform().Scale(2, 2, 2))

	s := NewSphere()
	s.SetTransform(core.IdentityTransform().Translate(5, 0, 0))
	g.AddChild(s)

	r := core.NewRay(core.NewPoint(10, 0, -10), core.NewVector(0, 0, 1))
	xs := Intersect(g, r)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
}

func TestGroup_WorldToObjectThroughNestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.IdentityTransform().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.IdentityTransform().Scale(2, 2, 2))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.IdentityTransform().Translate(5, 0, 0))
	g2.AddChild(s)

	got := s.WorldToObject(core.NewPoint(-2, 0, -10))
	if !got.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", got)
	}
}

func TestGroup_NormalToWorldThroughNestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.IdentityTransform().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.IdentityTransform().Scale(1, 2, 3))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.IdentityTransform().Translate(5, 0, 0))
	g2.AddChild(s)

	third := math.Sqrt(3) / 3
	got := s.NormalToWorld(core.NewVector(third, third, third))
	if !got.Equals(core.NewVector(2.0/7, 3.0/7, -6.0/7)) {
		t.Errorf("Expected (2/7,3/7,-6/7), got %v", got)
	}
}

func TestGroup_NormalOnChildOfNestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.IdentityTransform().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.IdentityTransform().Scale(1, 2, 3))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.IdentityTransform().Translate(5, 0, 0))
	g2.AddChild(s)

	got := NormalAt(s, core.NewPoint(1.7321, 1.1547, -5.5774))
	// the sample point is only approximately on the sphere, so compare loosely
	want := core.NewVector(0.2857, 0.4286, -0.8571)
	if math.Abs(got.X-want.X) > 1e-4 || math.Abs(got.Y-want.Y) > 1e-4 || math.Abs(got.Z-want.Z) > 1e-4 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGroup_LocalNormalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic when asking a group for its own normal")
		}
	}()
	NewGroup().LocalNormalAt(core.NewPoint(0, 0, 0))
}
