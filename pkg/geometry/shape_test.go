package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/material"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestShapeDefaults(t *testing.T) {
	s := NewSphere()
	if !s.Transform().Equals(core.Identity()) {
		t.Errorf("default transform = %v, want identity", s.Transform())
	}
	if got := s.Material(); got != material.Default() {
		t.Errorf("default material = %v", got)
	}
	if !s.CastsShadow() {
		t.Error("shapes should cast shadows by default")
	}
}

func TestShapeIDsAreUnique(t *testing.T) {
	a, b := NewSphere(), NewPlane()
	if a.ID() == b.ID() {
		t.Errorf("two shapes share id %d", a.ID())
	}
}

func TestSetTransformCachesInverse(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Translation(2, 3, 4))
	want := core.Translation(2, 3, 4).Inverse()
	if !s.InverseTransform().Equals(want) {
		t.Errorf("inverse = %v, want %v", s.InverseTransform(), want)
	}
	if !s.InverseTransposeTransform().Equals(want.Transpose()) {
		t.Error("inverse transpose not kept in sync")
	}
}

func TestIntersectTransformsRayIntoObjectSpace(t *testing.T) {
	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere()
	scaled.SetTransform(core.Scaling(2, 2, 2))
	xs := scaled.Intersect(r)
	if len(xs) != 2 || xs[0].T != 3 || xs[1].T != 7 {
		t.Errorf("scaled sphere xs = %v, want t=3,7", xs)
	}

	translated := NewSphere()
	translated.SetTransform(core.Translation(5, 0, 0))
	if xs := translated.Intersect(r); len(xs) != 0 {
		t.Errorf("translated sphere xs = %v, want miss", xs)
	}
}

func TestNormalAtTransformLaw(t *testing.T) {
	tests := []struct {
		name      string
		transform core.Matrix
		point     core.Tuple
		want      core.Tuple
	}{
		{
			"translated",
			core.Translation(0, 1, 0),
			core.NewPoint(0, 1.70711, -0.70711),
			core.NewVector(0, 0.70711, -0.70711),
		},
		{
			"scaled and rotated",
			core.Scaling(1, 0.5, 1).Mul(core.RotationZ(math.Pi / 5)),
			core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2),
			core.NewVector(0, 0.97014, -0.24254),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			s.SetTransform(tt.transform)
			got := s.NormalAt(tt.point, Intersection{})
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("normal mismatch (-want +got):\n%s", diff)
			}
			if math.Abs(got.Magnitude()-1) > 1e-9 {
				t.Errorf("normal not unit length: %v", got.Magnitude())
			}
			if again := s.NormalAt(tt.point, Intersection{}); again != got {
				t.Errorf("repeated query returned %v, want %v", again, got)
			}
		})
	}
}

func TestCloneGetsFreshIdentity(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Scaling(2, 2, 2))
	m := material.Default()
	m.Color = core.NewColor(1, 0, 0)
	s.SetMaterial(m)
	s.SetCastsShadow(false)

	c := s.Clone()
	if c.ID() == s.ID() {
		t.Error("clone shares the original's id")
	}
	if !c.Transform().Equals(s.Transform()) || c.Material() != s.Material() {
		t.Error("clone should copy transform and material")
	}
	if c.CastsShadow() {
		t.Error("clone should copy the shadow flag")
	}
	if !s.Includes(s) || s.Includes(c) {
		t.Error("identity comparison should separate clone from original")
	}
}

func TestParentSpaceBounds(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Translation(1, -3, 5).Mul(core.Scaling(0.5, 2, 4)))
	got := ParentSpaceBounds(s)
	if diff := cmp.Diff(core.NewPoint(0.5, -5, 1), got.Min, approx); diff != "" {
		t.Errorf("min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(core.NewPoint(1.5, -1, 9), got.Max, approx); diff != "" {
		t.Errorf("max mismatch (-want +got):\n%s", diff)
	}
}
