package material

import "github.com/kwhite/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, radiating equally in all
// directions from a single point
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
