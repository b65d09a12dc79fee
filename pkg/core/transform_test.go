package core

import (
	"math"
	"testing"
)

func TestTransform_Translation(t *testing.T) {
	translate := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)

	if got := translate.MultiplyTuple(p); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("Expected (2,1,7), got %v", got)
	}

	inv, err := translate.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := inv.MultiplyTuple(p); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("Expected (-8,7,3), got %v", got)
	}

	// translation leaves vectors unchanged
	v := NewVector(-3, 4, 5)
	if got := translate.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("Expected vector unchanged, got %v", got)
	}
}

func TestTransform_Scaling(t *testing.T) {
	scale := Scaling(2, 3, 4)

	if got := scale.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("Expected (-8,18,32), got %v", got)
	}
	if got := scale.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("Expected (-8,18,32), got %v", got)
	}

	// scaling by a negative value reflects
	if got := Scaling(-1, 1, 1).MultiplyTuple(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("Expected (-2,3,4), got %v", got)
	}
}

func TestTransform_Rotations(t *testing.T) {
	halfSqrt2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		m        Matrix
		p        Tuple
		expected Tuple
	}{
		{"rotate x half quarter", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, halfSqrt2, halfSqrt2)},
		{"rotate x full quarter", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"rotate y half quarter", RotationY(math.Pi / 4), NewPoint(0, 0, 1), NewPoint(halfSqrt2, 0, halfSqrt2)},
		{"rotate y full quarter", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"rotate z half quarter", RotationZ(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(-halfSqrt2, halfSqrt2, 0)},
		{"rotate z full quarter", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.p); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_Shearing(t *testing.T) {
	p := NewPoint(2, 3, 4)

	tests := []struct {
		name     string
		m        Matrix
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(p); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_ChainingAppliesInCallOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)

	// individual transformations applied in sequence
	p2 := RotationX(math.Pi / 2).MultiplyTuple(p)
	p3 := Scaling(5, 5, 5).MultiplyTuple(p2)
	p4 := Translation(10, 5, 7).MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", p4)
	}

	// the fluent builder composes right-to-left under the hood
	chained := IdentityTransform().
		RotateX(math.Pi / 2).
		Scale(5, 5, 5).
		Translate(10, 5, 7)
	if got := chained.Apply(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}
}

func TestTransform_InverseStaysCoherent(t *testing.T) {
	tr := IdentityTransform().
		RotateY(math.Pi / 3).
		Scale(2, 0.5, 4).
		Translate(-1, 6, 2).
		Shear(0, 0.5, 0, 0, 0, 0)

	if got := tr.Matrix.Multiply(tr.Inverse); !got.Equals(Identity()) {
		t.Errorf("Forward times cached inverse should be identity, got %v", got)
	}
	if !tr.InverseT.Equals(tr.Inverse.Transpose()) {
		t.Error("Cached inverse transpose drifted from inverse")
	}
}

func TestTransform_NormalRenormalized(t *testing.T) {
	// non-uniform scaling distorts normals; TransformNormal must re-normalize
	tr := IdentityTransform().Scale(1, 0.5, 1)
	n := tr.TransformNormal(NewVector(0, math.Sqrt2/2, -math.Sqrt2/2))
	if !ApproxEq(n.Magnitude(), 1.0) {
		t.Errorf("Expected unit normal, got magnitude %f", n.Magnitude())
	}
	if !n.Equals(NewVector(0, 0.97014, -0.24254)) {
		t.Errorf("Expected (0,0.97014,-0.24254), got %v", n)
	}
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation", func(t *testing.T) {
		got, err := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, -1), NewVector(0, 1, 0))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Equals(Identity()) {
			t.Errorf("Expected identity, got %v", got)
		}
	})

	t.Run("looking in positive z direction", func(t *testing.T) {
		got, err := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, 1), NewVector(0, 1, 0))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Equals(Scaling(-1, 1, -1)) {
			t.Errorf("Expected mirror scaling, got %v", got)
		}
	})

	t.Run("view transform moves the world", func(t *testing.T) {
		got, err := ViewTransform(NewPoint(0, 0, 8), NewPoint(0, 0, 0), NewVector(0, 1, 0))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Equals(Translation(0, 0, -8)) {
			t.Errorf("Expected translation (0,0,-8), got %v", got)
		}
	})

	t.Run("arbitrary view", func(t *testing.T) {
		got, err := ViewTransform(NewPoint(1, 3, 2), NewPoint(4, -2, 8), NewVector(1, 1, 0))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		expected := Matrix{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0},
			{0, 0, 0, 1},
		}
		if !got.Equals(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	})
}
