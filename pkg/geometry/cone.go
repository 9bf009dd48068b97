package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// Cone is a double-napped cone around the object-space y axis with its apex
// at the origin; the radius at height y is |y|. Min, Max and Closed behave
// as on Cylinder.
type Cone struct {
	base
	Min    float64
	Max    float64
	Closed bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{base: newBase(), Min: math.Inf(-1), Max: math.Inf(1)}
}

// NewClosedCone creates a capped cone truncated to min..max
func NewClosedCone(min, max float64) *Cone {
	return &Cone{base: newBase(), Min: min, Max: max, Closed: true}
}

// Intersect tests the world-space ray against the cone
func (co *Cone) Intersect(r core.Ray) []Intersection {
	return intersect(co, r)
}

// LocalIntersect intersects the cone surface. When the quadratic degenerates
// because the ray parallels one nappe, the remaining linear equation still
// yields a single crossing of the other nappe.
func (co *Cone) LocalIntersect(r core.Ray) []Intersection {
	var xs []Intersection

	d, o := r.Direction, r.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2 * (o.X*d.X - o.Y*d.Y + o.Z*d.Z)
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < Epsilon && math.Abs(b) < Epsilon:
		// parallel to both nappes, only the caps can be hit
	case math.Abs(a) < Epsilon:
		// one nappe is parallel, leaving a single linear crossing of the other
		xs = co.keepWithinY(r, xs, -c/b)
	default:
		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}
		sqrtDisc := math.Sqrt(discriminant)
		xs = co.keepWithinY(r, xs, (-b-sqrtDisc)/(2*a))
		xs = co.keepWithinY(r, xs, (-b+sqrtDisc)/(2*a))
	}

	return co.intersectCaps(r, xs)
}

func (co *Cone) keepWithinY(r core.Ray, xs []Intersection, t float64) []Intersection {
	y := r.Origin.Y + t*r.Direction.Y
	if co.Min < y && y < co.Max {
		xs = append(xs, NewIntersection(t, co))
	}
	return xs
}

// intersectCaps tests the end caps. The cap at height y is a disc of radius
// |y|, so the radial check compares against y squared.
func (co *Cone) intersectCaps(r core.Ray, xs []Intersection) []Intersection {
	if !co.Closed || math.Abs(r.Direction.Y) < Epsilon {
		return xs
	}
	for _, plane := range []float64{co.Min, co.Max} {
		t := (plane - r.Origin.Y) / r.Direction.Y
		x := r.Origin.X + t*r.Direction.X
		z := r.Origin.Z + t*r.Direction.Z
		if x*x+z*z <= plane*plane {
			xs = append(xs, NewIntersection(t, co))
		}
	}
	return xs
}

// NormalAt returns the world-space normal at a world-space surface point
func (co *Cone) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(co, worldPoint, hit)
}

// LocalNormalAt distinguishes the caps from the slanted surface. On the
// surface the y component has magnitude equal to the radial distance, with
// sign opposite the nappe.
func (co *Cone) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < co.Max*co.Max && p.Y >= co.Max-Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < co.Min*co.Min && p.Y <= co.Min+Epsilon:
		return core.NewVector(0, -1, 0)
	}
	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return core.NewVector(p.X, y, p.Z)
}

// BoundingBox is the tightest axis-aligned box for the truncated cone: the
// radius equals the larger absolute truncation height.
func (co *Cone) BoundingBox() core.BoundingBox {
	limit := math.Max(math.Abs(co.Min), math.Abs(co.Max))
	return core.NewBoundingBox(
		core.NewPoint(-limit, co.Min, -limit),
		core.NewPoint(limit, co.Max, limit),
	)
}

// Includes reports whether other is this cone
func (co *Cone) Includes(other Shape) bool { return sameShape(co, other) }

// Divide is a no-op for primitives
func (co *Cone) Divide(int) {}

// Clone returns a copy with a fresh identity
func (co *Cone) Clone() Shape {
	return &Cone{base: co.cloneBase(), Min: co.Min, Max: co.Max, Closed: co.Closed}
}
