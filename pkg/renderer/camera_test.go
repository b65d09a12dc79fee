package renderer

import (
	"math"
	"testing"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

func TestCamera_PixelSize(t *testing.T) {
	t.Run("horizontal canvas", func(t *testing.T) {
		c := NewCamera(200, 125, math.Pi/2)
		if !core.ApproxEq(c.PixelSize(), 0.01) {
			t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
		}
	})

	t.Run("vertical canvas", func(t *testing.T) {
		c := NewCamera(125, 200, math.Pi/2)
		if !core.ApproxEq(c.PixelSize(), 0.01) {
			t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
		}
	})
}

func TestCamera_RayForPixel(t *testing.T) {
	t.Run("through the canvas center", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		r := c.RayForPixel(100, 50)

		if !r.Origin.Equals(core.NewPoint(0, 0, 0)) {
			t.Errorf("Expected origin at (0,0,0), got %v", r.Origin)
		}
		if !r.Direction.Equals(core.NewVector(0, 0, -1)) {
			t.Errorf("Expected direction (0,0,-1), got %v", r.Direction)
		}
	})

	t.Run("through a canvas corner", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		r := c.RayForPixel(0, 0)

		if !r.Origin.Equals(core.NewPoint(0, 0, 0)) {
			t.Errorf("Expected origin at (0,0,0), got %v", r.Origin)
		}
		if !r.Direction.Equals(core.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("Expected direction (0.66519,0.33259,-0.66851), got %v", r.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		c := NewCamera(201, 101, math.Pi/2)
		c.SetTransform(core.IdentityTransform().Translate(0, -2, 5).RotateY(math.Pi / 4))
		r := c.RayForPixel(100, 50)

		if !r.Origin.Equals(core.NewPoint(0, 2, -5)) {
			t.Errorf("Expected origin at (0,2,-5), got %v", r.Origin)
		}
		if !r.Direction.Equals(core.NewVector(math.Sqrt2/2, 0, -math.Sqrt2/2)) {
			t.Errorf("Expected direction (%f,0,%f), got %v", math.Sqrt2/2, -math.Sqrt2/2, r.Direction)
		}
	})
}

func TestCamera_LookAt(t *testing.T) {
	c := NewCamera(100, 100, math.Pi/3)

	if err := c.LookAt(core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)); err != nil {
		t.Fatalf("Expected LookAt to succeed, got %v", err)
	}
	r := c.RayForPixel(50, 50)
	if !r.Origin.Equals(core.NewPoint(0, 0, -5)) {
		t.Errorf("Expected rays from (0,0,-5), got origin %v", r.Origin)
	}

	// a zero up vector cannot be normalized
	if err := c.LookAt(core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)); err == nil {
		t.Error("Expected an error for a degenerate up vector")
	}
}
