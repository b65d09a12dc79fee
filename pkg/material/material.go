// Package material implements surface materials, point lights and the Phong
// local illumination model.
package material

import (
	"fmt"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/pattern"
)

// Material holds the surface coefficients fed into the Phong model plus the
// reflection/refraction coefficients used by the recursive shader. Pattern,
// when non-nil, overrides Color as the surface color source.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1]
	Transparency    float64 // [0,1]
	RefractiveIndex float64 // > 0; 1.0 is a vacuum
	Pattern         pattern.Pattern
}

// Default returns the standard material: matte white, no reflection or
// transparency
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns a transparent, reflective material with the refractive
// index of glass
func Glass() Material {
	m := Default()
	m.Transparency = 1.0
	m.Reflective = 0.9
	m.RefractiveIndex = 1.5
	return m
}

// Validate rejects out-of-range coefficients. Rendering a world with an
// invalid material fails up front rather than producing garbage shading.
func (m Material) Validate() error {
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 || m.Shininess < 0 {
		return fmt.Errorf("material has negative phong coefficient (ambient=%g diffuse=%g specular=%g shininess=%g)",
			m.Ambient, m.Diffuse, m.Specular, m.Shininess)
	}
	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("material reflective %g outside [0,1]", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("material transparency %g outside [0,1]", m.Transparency)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("material refractive index %g must be positive", m.RefractiveIndex)
	}
	return nil
}
