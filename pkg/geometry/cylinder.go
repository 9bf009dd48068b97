package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the object-space y axis. It extends
// from Min to Max exclusive and is open-ended unless Closed is set.
type Cylinder struct {
	base
	Min    float64
	Max    float64
	Closed bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{base: newBase(), Min: math.Inf(-1), Max: math.Inf(1)}
}

// NewClosedCylinder creates a capped cylinder truncated to min..max
func NewClosedCylinder(min, max float64) *Cylinder {
	return &Cylinder{base: newBase(), Min: min, Max: max, Closed: true}
}

// Intersect tests the world-space ray against the cylinder
func (cy *Cylinder) Intersect(r core.Ray) []Intersection {
	return intersect(cy, r)
}

// LocalIntersect intersects the cylinder wall, keeping only crossings within
// the open y interval, then adds cap hits for closed cylinders.
func (cy *Cylinder) LocalIntersect(r core.Ray) []Intersection {
	var xs []Intersection

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if math.Abs(a) >= Epsilon {
		b := 2 * (r.Origin.X*r.Direction.X + r.Origin.Z*r.Direction.Z)
		c := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtDisc := math.Sqrt(discriminant)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)

		for _, t := range []float64{t0, t1} {
			y := r.Origin.Y + t*r.Direction.Y
			if cy.Min < y && y < cy.Max {
				xs = append(xs, NewIntersection(t, cy))
			}
		}
	}

	return cy.intersectCaps(r, xs)
}

// intersectCaps tests the two end caps. A ray parallel to the caps can never
// cross them.
func (cy *Cylinder) intersectCaps(r core.Ray, xs []Intersection) []Intersection {
	if !cy.Closed || math.Abs(r.Direction.Y) < Epsilon {
		return xs
	}
	for _, plane := range []float64{cy.Min, cy.Max} {
		t := (plane - r.Origin.Y) / r.Direction.Y
		x := r.Origin.X + t*r.Direction.X
		z := r.Origin.Z + t*r.Direction.Z
		if x*x+z*z <= 1 {
			xs = append(xs, NewIntersection(t, cy))
		}
	}
	return xs
}

// NormalAt returns the world-space normal at a world-space surface point
func (cy *Cylinder) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(cy, worldPoint, hit)
}

// LocalNormalAt distinguishes the caps from the wall by the point's radial
// distance and height.
func (cy *Cylinder) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < 1 && p.Y >= cy.Max-Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= cy.Min+Epsilon:
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(p.X, 0, p.Z)
}

// BoundingBox spans the truncation interval; an untruncated cylinder is
// unbounded in y.
func (cy *Cylinder) BoundingBox() core.BoundingBox {
	return core.NewBoundingBox(core.NewPoint(-1, cy.Min, -1), core.NewPoint(1, cy.Max, 1))
}

// Includes reports whether other is this cylinder
func (cy *Cylinder) Includes(other Shape) bool { return sameShape(cy, other) }

// Divide is a no-op for primitives
func (cy *Cylinder) Divide(int) {}

// Clone returns a copy with a fresh identity
func (cy *Cylinder) Clone() Shape {
	return &Cylinder{base: cy.cloneBase(), Min: cy.Min, Max: cy.Max, Closed: cy.Closed}
}
