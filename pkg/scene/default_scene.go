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

// NewDefaultScene builds three spheres over a checkered floor with a
// slightly reflective middle sphere
func NewDefaultScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.New()
	w.AddLights(material.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Specular = 0
	fm.Reflective = 0.1
	checker := pattern.NewChecker(
		core.Color{R: 0.85, G: 0.85, B: 0.85},
		core.Color{R: 0.25, G: 0.25, B: 0.35},
	)
	fm.Pattern = checker
	floor.SetMaterial(fm)

	middle := geometry.NewSphere()
	middle.SetTransform(core.IdentityTransform().Translate(-0.5, 1, 0.5))
	mm := material.Default()
	mm.Color = core.Color{R: 0.1, G: 1, B: 0.5}
	mm.Diffuse = 0.7
	mm.Specular = 0.3
	mm.Reflective = 0.2
	middle.SetMaterial(mm)

	right := geometry.NewSphere()
	right.SetTransform(core.IdentityTransform().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	rm := material.Default()
	rm.Diffuse = 0.7
	rm.Specular = 0.3
	stripes := pattern.NewStripe(
		core.Color{R: 1, G: 0.8, B: 0.1},
		core.Color{R: 0.8, G: 0.2, B: 0.1},
	)
	stripes.SetTransform(core.IdentityTransform().Scale(0.25, 0.25, 0.25).RotateZ(math.Pi / 4))
	rm.Pattern = stripes
	right.SetMaterial(rm)

	left := geometry.NewSphere()
	left.SetTransform(core.IdentityTransform().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	lm := material.Default()
	lm.Diffuse = 0.7
	lm.Specular = 0.3
	grad := pattern.NewGradient(
		core.Color{R: 1, G: 0.2, B: 0.2},
		core.Color{R: 0.2, G: 0.2, B: 1},
	)
	grad.SetTransform(core.IdentityTransform().Scale(2, 2, 2).Translate(-1, 0, 0))
	lm.Pattern = grad
	left.SetMaterial(lm)

	w.AddObjects(floor, middle, right, left)

	cam := renderer.NewCamera(width, height, math.Pi/3)
	err := cam.LookAt(core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0))
	if err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}
