package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/whitted-go/raytracer/pkg/core"
)

func TestConeHit(t *testing.T) {
	co := NewCone()
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"straight in", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 5, 5},
		{"diagonal", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), 8.66025, 8.66025},
		{"both nappes", core.NewPoint(1, 1, -5), core.NewVector(-0.5, -1, 1), 4.55006, 49.44994},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.NewRay(tt.origin, tt.direction.Normalize())
			xs := co.LocalIntersect(r)
			if len(xs) != 2 {
				t.Fatalf("got %d intersections, want 2", len(xs))
			}
			got := []float64{xs[0].T, xs[1].T}
			if diff := cmp.Diff([]float64{tt.t1, tt.t2}, got, approx); diff != "" {
				t.Errorf("distances mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConeParallelToNappe(t *testing.T) {
	co := NewCone()
	r := core.NewRay(core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1).Normalize())
	xs := co.LocalIntersect(r)
	if len(xs) != 1 {
		t.Fatalf("got %d intersections, want 1", len(xs))
	}
	// linear solve: the crossing (0, 0.5, -0.5) satisfies x^2+z^2 = y^2
	if diff := cmp.Diff(math.Sqrt2/2, xs[0].T, approx); diff != "" {
		t.Errorf("distance mismatch (-want +got):\n%s", diff)
	}
	p := r.Position(xs[0].T)
	if math.Abs(p.X*p.X+p.Z*p.Z-p.Y*p.Y) > 1e-9 {
		t.Errorf("hit point %v is not on the cone surface", p)
	}
}

func TestConeCaps(t *testing.T) {
	co := NewClosedCone(-0.5, 0.5)
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"parallel miss", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{"through wall and cap", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1), 2},
		{"up the axis", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.NewRay(tt.origin, tt.direction.Normalize())
			if xs := co.LocalIntersect(r); len(xs) != tt.count {
				t.Errorf("got %d intersections, want %d", len(xs), tt.count)
			}
		})
	}
}

func TestConeNormal(t *testing.T) {
	co := NewCone()
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1)},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0)},
	}
	for _, tt := range tests {
		got := co.LocalNormalAt(tt.point, Intersection{})
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("LocalNormalAt(%v) mismatch (-want +got):\n%s", tt.point, diff)
		}
	}
}

func TestConeCapNormal(t *testing.T) {
	co := NewClosedCone(-2, 2)
	if got := co.LocalNormalAt(core.NewPoint(0.5, 2, 0.5), Intersection{}); got != core.NewVector(0, 1, 0) {
		t.Errorf("top cap normal = %v", got)
	}
	if got := co.LocalNormalAt(core.NewPoint(-0.5, -2, 0), Intersection{}); got != core.NewVector(0, -1, 0) {
		t.Errorf("bottom cap normal = %v", got)
	}
}

func TestConeBounds(t *testing.T) {
	co := NewClosedCone(-3, 1)
	b := co.BoundingBox()
	if b.Min != core.NewPoint(-3, -3, -3) || b.Max != core.NewPoint(3, 1, 3) {
		t.Errorf("bounds = %v..%v", b.Min, b.Max)
	}
}
