package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/material"
)

func TestSphereIntersect(t *testing.T) {
	s := NewSphere()
	tests := []struct {
		name   string
		origin core.Tuple
		want   []float64
	}{
		{"through the middle", core.NewPoint(0, 0, -5), []float64{4, 6}},
		{"tangent", core.NewPoint(0, 1, -5), []float64{5, 5}},
		{"miss", core.NewPoint(0, 2, -5), nil},
		{"from inside", core.NewPoint(0, 0, 0), []float64{-1, 1}},
		{"behind", core.NewPoint(0, 0, 5), []float64{-6, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.NewRay(tt.origin, core.NewVector(0, 0, 1))
			xs := s.Intersect(r)
			if len(xs) != len(tt.want) {
				t.Fatalf("got %d intersections, want %d", len(xs), len(tt.want))
			}
			for i, want := range tt.want {
				if xs[i].T != want {
					t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, want)
				}
				if xs[i].Object.ID() != s.ID() {
					t.Errorf("xs[%d] references the wrong shape", i)
				}
			}
		})
	}
}

func TestSphereNormal(t *testing.T) {
	s := NewSphere()
	k := math.Sqrt(3) / 3
	tests := []struct {
		name  string
		point core.Tuple
		want  core.Tuple
	}{
		{"x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", core.NewPoint(k, k, k), core.NewVector(k, k, k)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NormalAt(tt.point, Intersection{})
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("normal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	m := s.Material()
	if m.Transparency != 1 || m.RefractiveIndex != material.RefractiveGlass {
		t.Errorf("glass sphere material = %+v", m)
	}
}
