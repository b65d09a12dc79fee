package material

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/pattern"
)

// Surface converts world-space points into an object's local space. Shapes
// implement it; lighting needs it to anchor patterns to the object they
// belong to.
type Surface interface {
	WorldToObject(p core.Tuple) core.Tuple
}

// Lighting computes the Phong illumination at a point: ambient plus, when
// the point is lit, diffuse and specular terms for the given light. A point
// in shadow receives only the ambient term.
func Lighting(m Material, surface Surface, light PointLight, point, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	var color core.Color
	if m.Pattern != nil {
		color = pattern.AtObject(m.Pattern, surface.WorldToObject(point))
	} else {
		color = m.Color
	}

	// combine surface color with the light's intensity
	effectiveColor := color.Multiply(light.Intensity)

	ambient := effectiveColor.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		// light coincides with the surface point; only ambient applies
		return ambient
	}

	// cosine of the angle between light vector and normal; negative means
	// the light is on the other side of the surface
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normalV)
	if reflectDotEye := reflectV.Dot(eyeV); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
