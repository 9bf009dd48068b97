// Package scene assembles ready-to-render worlds and cameras for the
// command-line renderer.
package scene

import (
	"fmt"
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/loaders"
	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/renderer"
	"github.com/whitted-go/raytracer/pkg/world"
)

// Scene pairs a world with the camera that frames it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// NewShowcaseScene arranges one of each primitive on a checkered floor
func NewShowcaseScene(width, height int) *Scene {
	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Pattern = material.NewCheckers(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.3, 0.3, 0.3))
	fm.Specular = 0.1
	fm.Reflective = 0.1
	floor.SetMaterial(fm)
	w.AddObject(floor)

	sphere := geometry.NewSphere()
	sphere.SetTransform(core.Translation(-2.5, 1, 0.5))
	sm := material.Default()
	sm.Color = core.NewColor(0.9, 0.2, 0.2)
	sm.Diffuse = 0.8
	sphere.SetMaterial(sm)

	cube := geometry.NewCube()
	cube.SetTransform(core.Translation(0, 0.6, 1).Mul(core.RotationY(math.Pi / 6)).Mul(core.Scaling(0.6, 0.6, 0.6)))
	cm := material.Default()
	cm.Color = core.NewColor(0.2, 0.5, 0.9)
	cube.SetMaterial(cm)

	cylinder := geometry.NewClosedCylinder(0, 1.5)
	cylinder.SetTransform(core.Translation(2.5, 0, 0.5).Mul(core.Scaling(0.6, 1, 0.6)))
	cym := material.Default()
	cym.Color = core.NewColor(0.2, 0.8, 0.4)
	cylinder.SetMaterial(cym)

	cone := geometry.NewClosedCone(-1, 0)
	cone.SetTransform(core.Translation(4.5, 1, 1.5))
	com := material.Default()
	com.Color = core.NewColor(0.9, 0.7, 0.2)
	cone.SetMaterial(com)

	w.AddObject(sphere, cube, cylinder, cone)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -7),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return &Scene{World: w, Camera: c}
}

// NewGlassScene pairs a glass sphere with a striped backdrop and an area
// light, exercising reflection, refraction and soft shadows.
func NewGlassScene(width, height int) *Scene {
	w := world.NewWorld()
	w.AddLight(lights.NewAreaLight(
		core.NewPoint(-4, 4.5, -5),
		core.NewVector(2, 0, 0), 4,
		core.NewVector(0, 2, 0), 4,
		core.White(),
	))

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Pattern = material.NewCheckers(core.White(), core.NewColor(0.2, 0.2, 0.2))
	fm.Reflective = 0.2
	fm.Specular = 0
	floor.SetMaterial(fm)

	backdrop := geometry.NewPlane()
	backdrop.SetTransform(core.Translation(0, 0, 4).Mul(core.RotationX(math.Pi / 2)))
	bm := material.Default()
	stripes := material.NewStripe(core.NewColor(0.6, 0.6, 0.9), core.NewColor(0.3, 0.3, 0.6))
	stripes.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	bm.Pattern = stripes
	bm.Specular = 0
	backdrop.SetMaterial(bm)

	ball := geometry.NewGlassSphere()
	ball.SetTransform(core.Translation(0, 1, 0))
	ball.SetCastsShadow(false)

	metal := geometry.NewSphere()
	metal.SetTransform(core.Translation(2.2, 0.6, -1).Mul(core.Scaling(0.6, 0.6, 0.6)))
	mm := material.Default()
	mm.Color = core.NewColor(0.1, 0.1, 0.1)
	mm.Reflective = 0.9
	mm.Diffuse = 0.3
	metal.SetMaterial(mm)

	w.AddObject(floor, backdrop, ball, metal)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return &Scene{World: w, Camera: c}
}

// NewCSGScene renders a die-like shape: a cube with a sphere carved out of
// it, intersected with a larger sphere to round the corners.
func NewCSGScene(width, height int) *Scene {
	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-6, 8, -8), core.White()))

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Pattern = material.NewRing(core.NewColor(0.7, 0.7, 0.7), core.NewColor(0.4, 0.4, 0.4))
	fm.Specular = 0
	floor.SetMaterial(fm)
	w.AddObject(floor)

	cube := geometry.NewCube()
	cm := material.Default()
	cm.Color = core.NewColor(0.8, 0.2, 0.2)
	cube.SetMaterial(cm)

	rounding := geometry.NewSphere()
	rounding.SetTransform(core.Scaling(1.4, 1.4, 1.4))
	rounding.SetMaterial(cm)

	hole := geometry.NewSphere()
	hole.SetTransform(core.Translation(0, 0, -1).Mul(core.Scaling(0.8, 0.8, 0.8)))
	hm := material.Default()
	hm.Color = core.NewColor(0.9, 0.9, 0.2)
	hole.SetMaterial(hm)

	die := geometry.NewCSG(geometry.OpDifference,
		geometry.NewCSG(geometry.OpIntersection, cube, rounding),
		hole,
	)
	die.SetTransform(core.Translation(0, 1, 0).Mul(core.RotationY(math.Pi / 5)))
	w.AddObject(die)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return &Scene{World: w, Camera: c}
}

// NewMeshScene loads an OBJ file onto a plain floor. A positive divide
// threshold subdivides the mesh group for faster ray tests.
func NewMeshScene(path string, divideThreshold, width, height int) (*Scene, error) {
	o, err := loaders.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}
	mesh := o.Group()
	if divideThreshold > 0 {
		mesh.Divide(divideThreshold)
	}

	w := world.NewWorld()
	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White()))

	floor := geometry.NewPlane()
	fm := material.Default()
	fm.Color = core.NewColor(0.7, 0.7, 0.8)
	fm.Specular = 0
	floor.SetMaterial(fm)

	w.AddObject(floor, mesh)

	c := renderer.NewCamera(width, height, math.Pi/3)
	c.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	return &Scene{World: w, Camera: c}, nil
}
