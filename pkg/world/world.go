// Package world holds the scene contents and the recursive ray-color
// computation: intersection dispatch, Phong shading, shadows, reflection
// and refraction.
package world

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/material"
)

// MaxDepth is the default recursion budget for reflection and refraction
const MaxDepth = 5

// World is a collection of shapes and lights
type World struct {
	Objects []geometry.Shape
	Lights  []lights.Light
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Default returns the two-sphere reference scene used across the test
// suites: an outer colored sphere, an inner half-size sphere, and a single
// point light up and to the left.
func Default() *World {
	s1 := geometry.NewSphere()
	m := material.Default()
	m.Color = core.NewColor(0.8, 1, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	return &World{
		Objects: []geometry.Shape{s1, s2},
		Lights: []lights.Light{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()),
		},
	}
}

// AddObject appends shapes to the world
func (w *World) AddObject(shapes ...geometry.Shape) {
	w.Objects = append(w.Objects, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(ls ...lights.Light) {
	w.Lights = append(w.Lights, ls...)
}

// Intersect merges every object's intersections into one sorted list
func (w *World) Intersect(r core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(r)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// ColorAt traces the ray into the world and shades the nearest visible hit.
// remaining bounds the reflection/refraction recursion.
func (w *World) ColorAt(r core.Ray, remaining int) core.Color {
	xs := w.Intersect(r)
	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black()
	}
	comps := PrepareComputations(hit, r, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared intersection: Phong shading per
// light, plus recursive reflection and refraction. When a surface is both
// reflective and transparent the two contributions are blended by the
// Schlick approximation of the Fresnel effect.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	surface := core.Black()
	for _, light := range w.Lights {
		intensity := light.IntensityAt(comps.OverPoint, w)
		surface = surface.Add(lights.Lighting(
			comps.Object.Material(), comps.Object, light,
			comps.OverPoint, comps.EyeV, comps.NormalV, intensity,
		))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	m := comps.Object.Material()
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection ray and scales the result by the
// surface's reflectivity. The recursion budget stops mirror pairs from
// bouncing forever.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black()
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black()
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// RefractedColor traces the refraction ray through the surface using
// Snell's law, returning black for opaque surfaces, an exhausted recursion
// budget, or total internal reflection.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black()
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// IsShadowed reports whether any shadow-casting surface lies between the
// point and the light position. The lower distance bound discards the
// surface the point itself sits on.
func (w *World) IsShadowed(point, lightPosition core.Tuple) bool {
	v := lightPosition.Subtract(point)
	distance := v.Magnitude()
	r := core.NewRay(point, v.Divide(distance))

	for _, x := range w.Intersect(r) {
		if x.T > surfaceEpsilon && x.T < distance && x.Object.CastsShadow() {
			return true
		}
	}
	return false
}
