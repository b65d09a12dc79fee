// Package world assembles shapes and lights into a scene and resolves the
// color seen along a ray, recursing for reflection and refraction up to a
// caller-supplied depth.
package world

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/geometry"
	"github.com/kwhite/go-whitted-raytracer/pkg/material"
)

// MaxDepth is the default recursion bound for reflection and refraction
const MaxDepth = 5

// World holds the shapes and lights of a scene
type World struct {
	Objects []geometry.Shape
	Lights  []material.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// AddObjects appends shapes to the world
func (w *World) AddObjects(shapes ...geometry.Shape) {
	w.Objects = append(w.Objects, shapes...)
}

// AddLights appends point lights to the world
func (w *World) AddLights(lights ...material.PointLight) {
	w.Lights = append(w.Lights, lights...)
}

// Validate checks every object's material, so a bad scene fails before
// rendering rather than producing garbage pixels
func (w *World) Validate() error {
	for _, obj := range w.Objects {
		if err := obj.Material().Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Intersect collects the intersections of the ray with every object in the
// world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt resolves the color seen along the ray. Rays that hit nothing
// resolve to black. The remaining count bounds recursion through reflective
// and transparent surfaces.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared intersection: the Phong surface
// term summed over every light, plus the reflected and refracted
// contributions. When the surface is both reflective and transparent the two
// secondary terms are blended by the Schlick approximation to Fresnel
// reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(material.Lighting(
			comps.Object.Material(), comps.Object, light,
			comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	m := comps.Object.Material()
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether the point is occluded from the light by any
// object in the world
func (w *World) IsShadowed(point core.Tuple, light material.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction, err := toLight.Normalize()
	if err != nil {
		// light coincides with the point, nothing can occlude it
		return false
	}

	xs := w.Intersect(core.NewRay(point, direction))
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}

// ReflectedColor follows the reflection ray and scales the result by the
// material's reflectivity. Returns black for matte surfaces and when the
// recursion budget is spent.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(reflective)
}

// RefractedColor follows the refraction ray through the surface per Snell's
// law. Returns black for opaque surfaces, total internal reflection, and a
// spent recursion budget.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	// Snell's law: sin(theta_t) = n1/n2 * sin(theta_i)
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(transparency)
}

// Schlick approximates the Fresnel reflectance at the intersection: the
// fraction of light reflected, with the remainder refracted
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		nRatio := comps.N1 / comps.N2
		sin2T := nRatio * nRatio * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		// when exiting the denser medium use cos(theta_t) instead
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
