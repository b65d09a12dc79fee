package material

import (
	"math"
	"testing"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/pattern"
)

// identitySurface stands in for an untransformed shape
type identitySurface struct{}

func (identitySurface) WorldToObject(p core.Tuple) core.Tuple { return p }

func TestLighting(t *testing.T) {
	m := Default()
	position := core.NewPoint(0, 0, 0)
	halfSqrt2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		eyeV     core.Tuple
		normalV  core.Tuple
		light    PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eyeV:     core.NewVector(0, halfSqrt2, -halfSqrt2),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in path of reflection vector",
			eyeV:     core.NewVector(0, -halfSqrt2, -halfSqrt2),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind surface",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lighting(m, identitySurface{}, tt.light, position, tt.eyeV, tt.normalV, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_WithPattern(t *testing.T) {
	m := Default()
	m.Pattern = pattern.NewStripe(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eyeV := core.NewVector(0, 0, -1)
	normalV := core.NewVector(0, 0, -1)
	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)

	c1 := Lighting(m, identitySurface{}, light, core.NewPoint(0.9, 0, 0), eyeV, normalV, false)
	c2 := Lighting(m, identitySurface{}, light, core.NewPoint(1.1, 0, 0), eyeV, normalV, false)

	if !c1.Equals(core.White) {
		t.Errorf("Expected white inside first stripe, got %v", c1)
	}
	if !c2.Equals(core.Black) {
		t.Errorf("Expected black inside second stripe, got %v", c2)
	}
}
