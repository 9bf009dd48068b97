package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct {
	base
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// NewGlassSphere creates a unit sphere with a transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// Intersect tests the world-space ray against the sphere
func (s *Sphere) Intersect(r core.Ray) []Intersection {
	return intersect(s, r)
}

// LocalIntersect solves the sphere quadratic. A tangent ray yields two equal
// distances, which the shading engine relies on for refraction bookkeeping.
func (s *Sphere) LocalIntersect(r core.Ray) []Intersection {
	sphereToRay := r.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	return []Intersection{
		NewIntersection((-b-sqrtDisc)/(2*a), s),
		NewIntersection((-b+sqrtDisc)/(2*a), s),
	}
}

// NormalAt returns the world-space normal at a world-space surface point
func (s *Sphere) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(s, worldPoint, hit)
}

// LocalNormalAt points from the center to the surface point
func (s *Sphere) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	return core.NewVector(p.X, p.Y, p.Z)
}

// BoundingBox returns the unit cube enclosing the sphere
func (s *Sphere) BoundingBox() core.BoundingBox {
	return core.NewBoundingBox(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

// Includes reports whether other is this sphere
func (s *Sphere) Includes(other Shape) bool { return sameShape(s, other) }

// Divide is a no-op for primitives
func (s *Sphere) Divide(int) {}

// Clone returns a copy with a fresh identity
func (s *Sphere) Clone() Shape {
	return &Sphere{base: s.cloneBase()}
}
