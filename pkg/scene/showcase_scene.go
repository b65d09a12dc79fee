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

// NewShowcaseScene builds one of every primitive: a cube pedestal, a capped
// cylinder, a cone, and a grouped pair of spheres, over a perturbed checker
// floor, with two lights
func NewShowcaseScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.New()
	w.AddLights(
		material.NewPointLight(core.NewPoint(-10, 10, -10), core.Color{R: 0.7, G: 0.7, B: 0.7}),
		material.NewPointLight(core.NewPoint(10, 6, -8), core.Color{R: 0.3, G: 0.3, B: 0.3}),
	)

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Specular = 0
	checker := pattern.NewChecker(
		core.Color{R: 0.8, G: 0.8, B: 0.75},
		core.Color{R: 0.3, G: 0.35, B: 0.3},
	)
	fm.Pattern = pattern.NewPerturb(checker, 0.3, 0.8)
	floor.SetMaterial(fm)

	pedestal := geometry.NewCube()
	pedestal.SetTransform(core.IdentityTransform().Scale(1, 0.25, 1).Translate(0, 0.25, 0))
	pm := material.Default()
	pm.Reflective = 0.3
	blend := pattern.NewBlend(
		pattern.NewStripe(core.Color{R: 0.6, G: 0.6, B: 0.9}, core.Color{R: 0.2, G: 0.2, B: 0.5}),
		pattern.NewGradient(core.Color{R: 0.9, G: 0.6, B: 0.6}, core.Color{R: 0.5, G: 0.2, B: 0.2}),
	)
	pm.Pattern = blend
	pedestal.SetMaterial(pm)

	cyl := geometry.NewTruncatedCylinder(0, 1.5, true)
	cyl.SetTransform(core.IdentityTransform().Scale(0.4, 1, 0.4).Translate(-2.2, 0, 0.5))
	cm := material.Default()
	cm.Color = core.Color{R: 0.2, G: 0.6, B: 0.8}
	cm.Reflective = 0.1
	cyl.SetMaterial(cm)

	cone := geometry.NewTruncatedCone(-1, 0, true)
	cone.SetTransform(core.IdentityTransform().Scale(0.5, 1.2, 0.5).Translate(2.2, 1.2, 0.5))
	nm := material.Default()
	nested := pattern.NewNested(
		pattern.NewChecker(core.White, core.Black),
		pattern.NewSolid(core.Color{R: 0.9, G: 0.5, B: 0.1}),
		pattern.NewSolid(core.Color{R: 0.5, G: 0.1, B: 0.9}),
	)
	nm.Pattern = nested
	cone.SetMaterial(nm)

	// a pair of marbles sharing one group transform
	marbles := geometry.NewGroup()
	marbles.SetTransform(core.IdentityTransform().Translate(0, 0.75, 0).RotateY(math.Pi / 6))
	for i, dx := range []float64{-0.4, 0.4} {
		marble := geometry.NewSphere()
		marble.SetTransform(core.IdentityTransform().Scale(0.25, 0.25, 0.25).Translate(dx, 0.25, 0))
		mm := material.Default()
		if i == 0 {
			mm.Color = core.Color{R: 0.9, G: 0.2, B: 0.3}
		} else {
			mm.Color = core.Color{R: 0.2, G: 0.8, B: 0.4}
		}
		mm.Reflective = 0.15
		marble.SetMaterial(mm)
		marbles.AddChild(marble)
	}

	w.AddObjects(floor, pedestal, cyl, cone, marbles)

	cam := renderer.NewCamera(width, height, math.Pi/3)
	err := cam.LookAt(core.NewPoint(0, 2.5, -6), core.NewPoint(0, 0.75, 0), core.NewVector(0, 1, 0))
	if err != nil {
		return nil, nil, err
	}
	return w, cam, nil
}
