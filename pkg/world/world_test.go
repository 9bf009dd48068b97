package world

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/material"
)

func TestDefaultWorld(t *testing.T) {
	w := Default()
	if len(w.Objects) != 2 || len(w.Lights) != 1 {
		t.Fatalf("default world has %d objects, %d lights", len(w.Objects), len(w.Lights))
	}
	if w.Lights[0].Position() != core.NewPoint(-10, 10, -10) {
		t.Errorf("light position = %v", w.Lights[0].Position())
	}
}

func TestWorldIntersect(t *testing.T) {
	w := Default()
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := w.Intersect(r)
	want := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(want) {
		t.Fatalf("got %d intersections, want %d", len(xs), len(want))
	}
	for i, tv := range want {
		if xs[i].T != tv {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, tv)
		}
	}
}

func TestShadeHit(t *testing.T) {
	t.Run("from outside", func(t *testing.T) {
		w := Default()
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		hit := geometry.NewIntersection(4, w.Objects[0])
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ShadeHit(comps, MaxDepth)
		want := core.NewColor(0.38066, 0.47583, 0.2855)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("from inside", func(t *testing.T) {
		w := Default()
		w.Lights = []lights.Light{
			lights.NewPointLight(core.NewPoint(0, 0.25, 0), core.White()),
		}
		r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
		hit := geometry.NewIntersection(0.5, w.Objects[1])
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ShadeHit(comps, MaxDepth)
		want := core.NewColor(0.90498, 0.90498, 0.90498)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := NewWorld()
		w.AddLight(lights.NewPointLight(core.NewPoint(0, 0, -10), core.White()))
		s1 := geometry.NewSphere()
		s2 := geometry.NewSphere()
		s2.SetTransform(core.Translation(0, 0, 10))
		w.AddObject(s1, s2)

		r := core.NewRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1))
		hit := geometry.NewIntersection(4, s2)
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ShadeHit(comps, MaxDepth)
		want := core.NewColor(0.1, 0.1, 0.1)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("two lights add up", func(t *testing.T) {
		w := Default()
		w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()))
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		hit := geometry.NewIntersection(4, w.Objects[0])
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ShadeHit(comps, MaxDepth)
		// each light contributes a full Phong term
		want := core.NewColor(0.38066, 0.47583, 0.2855).Scale(2)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestColorAt(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		w := Default()
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0))
		if got := w.ColorAt(r, MaxDepth); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	t.Run("hit", func(t *testing.T) {
		w := Default()
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		got := w.ColorAt(r, MaxDepth)
		want := core.NewColor(0.38066, 0.47583, 0.2855)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := Default()
		outer, inner := w.Objects[0], w.Objects[1]
		m := outer.Material()
		m.Ambient = 1
		outer.SetMaterial(m)
		m = inner.Material()
		m.Ambient = 1
		inner.SetMaterial(m)

		r := core.NewRay(core.NewPoint(0, 0, 0.75), core.NewVector(0, 0, -1))
		got := w.ColorAt(r, MaxDepth)
		if diff := cmp.Diff(inner.Material().Color, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIsShadowed(t *testing.T) {
	w := Default()
	lightPos := w.Lights[0].Position()
	tests := []struct {
		name  string
		point core.Tuple
		want  bool
	}{
		{"nothing collinear", core.NewPoint(0, 10, 0), false},
		{"sphere between", core.NewPoint(10, -10, 10), true},
		{"light between point and sphere", core.NewPoint(-20, 20, -20), false},
		{"point between light and sphere", core.NewPoint(-2, 2, -2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point, lightPos); got != tt.want {
				t.Errorf("IsShadowed(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestShadowIgnoresNonCastingShapes(t *testing.T) {
	w := Default()
	for _, obj := range w.Objects {
		obj.SetCastsShadow(false)
	}
	if w.IsShadowed(core.NewPoint(10, -10, 10), w.Lights[0].Position()) {
		t.Error("non-casting shapes should not produce shadows")
	}
}

func TestAreaLightIntensityInWorld(t *testing.T) {
	w := Default()
	light := lights.NewAreaLight(
		core.NewPoint(-0.5, -0.5, -5),
		core.NewVector(1, 0, 0), 2,
		core.NewVector(0, 1, 0), 2,
		core.White(),
	)
	tests := []struct {
		point core.Tuple
		want  float64
	}{
		{core.NewPoint(0, 0, 2), 0.0},
		{core.NewPoint(1, -1, 2), 0.25},
		{core.NewPoint(1.5, 0, 2), 0.5},
		{core.NewPoint(1.25, 1.25, 3), 0.75},
		{core.NewPoint(0, 0, -2), 1.0},
	}
	light.SetJitter(lights.NewCyclic(0.5))
	for _, tt := range tests {
		if got := light.IntensityAt(tt.point, w); got != tt.want {
			t.Errorf("IntensityAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestReflectedColor(t *testing.T) {
	k := math.Sqrt2 / 2

	t.Run("nonreflective surface", func(t *testing.T) {
		w := Default()
		inner := w.Objects[1]
		m := inner.Material()
		m.Ambient = 1
		inner.SetMaterial(m)

		r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
		hit := geometry.NewIntersection(1, inner)
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		if got := w.ReflectedColor(comps, MaxDepth); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	reflectiveFloor := func(w *World) geometry.Shape {
		p := geometry.NewPlane()
		m := p.Material()
		m.Reflective = 0.5
		p.SetMaterial(m)
		p.SetTransform(core.Translation(0, -1, 0))
		w.AddObject(p)
		return p
	}

	t.Run("reflective surface", func(t *testing.T) {
		w := Default()
		p := reflectiveFloor(w)
		r := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -k, k))
		hit := geometry.NewIntersection(math.Sqrt2, p)
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ReflectedColor(comps, MaxDepth)
		want := core.NewColor(0.19032, 0.2379, 0.14274)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("shade_hit folds in the reflection", func(t *testing.T) {
		w := Default()
		p := reflectiveFloor(w)
		r := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -k, k))
		hit := geometry.NewIntersection(math.Sqrt2, p)
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		got := w.ShadeHit(comps, MaxDepth)
		want := core.NewColor(0.87677, 0.92436, 0.82918)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("recursion budget exhausted", func(t *testing.T) {
		w := Default()
		p := reflectiveFloor(w)
		r := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -k, k))
		hit := geometry.NewIntersection(math.Sqrt2, p)
		comps := PrepareComputations(hit, r, []geometry.Intersection{hit})
		if got := w.ReflectedColor(comps, 0); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	t.Run("parallel mirrors terminate", func(t *testing.T) {
		w := NewWorld()
		w.AddLight(lights.NewPointLight(core.NewPoint(0, 0, 0), core.White()))
		lower := geometry.NewPlane()
		m := lower.Material()
		m.Reflective = 1
		lower.SetMaterial(m)
		lower.SetTransform(core.Translation(0, -1, 0))
		upper := geometry.NewPlane()
		upper.SetMaterial(m)
		upper.SetTransform(core.Translation(0, 1, 0))
		w.AddObject(lower, upper)

		r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
		// must return rather than recurse forever
		w.ColorAt(r, MaxDepth)
	})
}

func TestRefractedColor(t *testing.T) {
	k := math.Sqrt2 / 2

	t.Run("opaque surface", func(t *testing.T) {
		w := Default()
		s := w.Objects[0]
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs := []geometry.Intersection{
			geometry.NewIntersection(4, s),
			geometry.NewIntersection(6, s),
		}
		comps := PrepareComputations(xs[0], r, xs)
		if got := w.RefractedColor(comps, MaxDepth); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	t.Run("recursion budget exhausted", func(t *testing.T) {
		w := Default()
		s := w.Objects[0]
		m := s.Material()
		m.Transparency = 1
		m.RefractiveIndex = 1.5
		s.SetMaterial(m)
		r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs := []geometry.Intersection{
			geometry.NewIntersection(4, s),
			geometry.NewIntersection(6, s),
		}
		comps := PrepareComputations(xs[0], r, xs)
		if got := w.RefractedColor(comps, 0); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		w := Default()
		s := w.Objects[0]
		m := s.Material()
		m.Transparency = 1
		m.RefractiveIndex = 1.5
		s.SetMaterial(m)
		r := core.NewRay(core.NewPoint(0, 0, k), core.NewVector(0, 1, 0))
		xs := []geometry.Intersection{
			geometry.NewIntersection(-k, s),
			geometry.NewIntersection(k, s),
		}
		comps := PrepareComputations(xs[1], r, xs)
		if got := w.RefractedColor(comps, MaxDepth); got != core.Black() {
			t.Errorf("color = %v, want black", got)
		}
	})

	t.Run("refracted ray samples the far surface", func(t *testing.T) {
		w := Default()
		a := w.Objects[0]
		ma := a.Material()
		ma.Ambient = 1
		ma.Pattern = material.NewFunc(func(p core.Tuple) core.Color {
			return core.NewColor(p.X, p.Y, p.Z)
		})
		a.SetMaterial(ma)

		b := w.Objects[1]
		mb := b.Material()
		mb.Transparency = 1
		mb.RefractiveIndex = 1.5
		b.SetMaterial(mb)

		r := core.NewRay(core.NewPoint(0, 0, 0.1), core.NewVector(0, 1, 0))
		xs := []geometry.Intersection{
			geometry.NewIntersection(-0.9899, a),
			geometry.NewIntersection(-0.4899, b),
			geometry.NewIntersection(0.4899, b),
			geometry.NewIntersection(0.9899, a),
		}
		comps := PrepareComputations(xs[2], r, xs)
		got := w.RefractedColor(comps, MaxDepth)
		want := core.NewColor(0, 0.99888, 0.04725)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func glassFloorScene(reflective float64) (*World, geometry.Shape) {
	w := Default()
	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -1, 0))
	m := floor.Material()
	m.Transparency = 0.5
	m.Reflective = reflective
	m.RefractiveIndex = 1.5
	floor.SetMaterial(m)
	w.AddObject(floor)

	ball := geometry.NewSphere()
	mb := ball.Material()
	mb.Color = core.NewColor(1, 0, 0)
	mb.Ambient = 0.5
	ball.SetMaterial(mb)
	ball.SetTransform(core.Translation(0, -3.5, -0.5))
	w.AddObject(ball)
	return w, floor
}

func TestShadeHitWithTransparentFloor(t *testing.T) {
	k := math.Sqrt2 / 2
	w, floor := glassFloorScene(0)
	r := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -k, k))
	xs := []geometry.Intersection{geometry.NewIntersection(math.Sqrt2, floor)}
	comps := PrepareComputations(xs[0], r, xs)
	got := w.ShadeHit(comps, MaxDepth)
	want := core.NewColor(0.93642, 0.68642, 0.68642)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestShadeHitBlendsWithSchlick(t *testing.T) {
	k := math.Sqrt2 / 2
	w, floor := glassFloorScene(0.5)
	r := core.NewRay(core.NewPoint(0, 0, -3), core.NewVector(0, -k, k))
	xs := []geometry.Intersection{geometry.NewIntersection(math.Sqrt2, floor)}
	comps := PrepareComputations(xs[0], r, xs)
	got := w.ShadeHit(comps, MaxDepth)
	want := core.NewColor(0.93391, 0.69643, 0.69243)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
