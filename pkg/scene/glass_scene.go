package scene

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
	"github.com/kwhite/go-whitted-raytracer/pkg/geometry"
	"github.com/kwhite/go-whitted-raytracer/pkg/material"
	"github.com/kwhite/go-whitted-raytracer/pkg/pattern"
	"github.com/kwhite/go-whitted-raytracer/pkg/renderer"
	"github.com/kwhite/go-whitted-raytracer/pkg/world"
)

// NewGlassScene builds a hollow glass sphere over a ring-patterned floor,
// showing refraction through nested media and Fresnel blending at grazing
// angles
func NewGlassScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.New()
	w.AddLights(material.NewPointLight(core.NewPoint(2, 10, -5), core.Color{R: 0.9, G: 0.9, B: 0.9}))

	floor := geometry.NewPlane()
	floor.SetTransform(core.IdentityTransform().Translate(0, -1, 0))
	fm := material.Default()
	fm.Ambient = 0.2
	fm.Diffuse = 0.7
	fm.Specular = 0
	rings := pattern.NewRing(
		core.Color{R: 0.9, G: 0.9, B: 0.9},
		core.Color{R: 0.4, G: 0.45, B: 0.5},
	)
	rings.SetTransform(core.IdentityTransform().Scale(0.4, 0.4, 0.4))
	fm.Pattern = rings
	floor.SetMaterial(fm)

	// outer glass shell
	outer := geometry.NewGlassSphere()
	om := outer.Material()
	om.Diffuse = 0.1
	om.Shininess = 300
	outer.SetMaterial(om)

	// pocket of air inside the shell
	inner := geometry.NewGlassSphere()
	inner.SetTransform(core.IdentityTransform().Scale(0.5, 0.5, 0.5))
	im := inner.Material()
	im.Diffuse = 0.1
	im.Shininess = 300
	im.RefractiveIndex = 1.0
	inner.SetMaterial(im)

	w.AddObjects(floor, outer, inner)

	cam := renderer.NewCamera(width, height, math.Pi/6)
	err := cam.LookAt(core.NewPoint(0, 2.5, 0), core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	if err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}
