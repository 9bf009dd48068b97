// Package geometry provides the shape abstraction and the primitives that
// implement it: spheres, planes, cubes, cylinders, cones, triangles, groups
// and CSG combinations. Every shape carries a transform mapping object space
// to parent space; rays are intersected in object space and normals mapped
// back out through the inverse transpose.
package geometry

import (
	"sync/atomic"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/material"
)

// Epsilon is the threshold below which a ray direction component is treated
// as parallel to a surface.
const Epsilon = 1e-8

var idCounter atomic.Int64

func nextID() int64 { return idCounter.Add(1) }

// Shape is a surface that rays can intersect. Implementations provide the
// object-space intersection and normal routines; the transform bookkeeping
// lives in the shared base.
type Shape interface {
	// ID is unique per shape instance and drives identity comparisons
	ID() int64

	Transform() core.Matrix
	SetTransform(core.Matrix)
	InverseTransform() core.Matrix
	InverseTransposeTransform() core.Matrix

	Material() material.Material
	SetMaterial(material.Material)

	// CastsShadow reports whether the shape occludes light
	CastsShadow() bool
	SetCastsShadow(bool)

	// Intersect tests the world-space ray against the shape
	Intersect(core.Ray) []Intersection
	// LocalIntersect tests a ray already in object space
	LocalIntersect(core.Ray) []Intersection

	// NormalAt returns the world-space surface normal at a world-space
	// point. The intersection supplies u/v for smooth triangles; other
	// shapes ignore it.
	NormalAt(core.Tuple, Intersection) core.Tuple
	LocalNormalAt(core.Tuple, Intersection) core.Tuple

	// BoundingBox returns the shape's bounds in object space. Group and
	// CSG bounds are in parent space because their children's transforms
	// are baked.
	BoundingBox() core.BoundingBox

	// Includes reports whether the shape is, or contains, the other shape
	Includes(Shape) bool

	// Divide recursively partitions composite shapes into sub-groups once
	// they hold at least threshold children. A no-op for primitives.
	Divide(threshold int)

	// Clone returns a deep copy with fresh identities throughout
	Clone() Shape
}

// base carries the state common to all shapes. The inverse and inverse
// transpose are recomputed on SetTransform so intersection and shading never
// invert matrices on the hot path.
type base struct {
	id               int64
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	castsShadow      bool
}

func newBase() base {
	return base{
		id:               nextID(),
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.Default(),
		castsShadow:      true,
	}
}

func (b *base) ID() int64 { return b.id }

func (b *base) Transform() core.Matrix                 { return b.transform }
func (b *base) InverseTransform() core.Matrix          { return b.inverse }
func (b *base) InverseTransposeTransform() core.Matrix { return b.inverseTranspose }

func (b *base) SetTransform(t core.Matrix) {
	b.transform = t
	b.inverse = t.Inverse()
	b.inverseTranspose = b.inverse.Transpose()
}

func (b *base) Material() material.Material     { return b.material }
func (b *base) SetMaterial(m material.Material) { b.material = m }

func (b *base) CastsShadow() bool        { return b.castsShadow }
func (b *base) SetCastsShadow(cast bool) { b.castsShadow = cast }

// cloneBase copies the shape state under a fresh id
func (b *base) cloneBase() base {
	c := *b
	c.id = nextID()
	return c
}

// sameShape is the default Includes: a primitive contains only itself
func sameShape(a, other Shape) bool { return a.ID() == other.ID() }

// intersect maps the world ray into the shape's object space and delegates
// to its local routine.
func intersect(s Shape, worldRay core.Ray) []Intersection {
	return s.LocalIntersect(worldRay.Transform(s.InverseTransform()))
}

// normalAt maps the world point into object space, asks the shape for its
// local normal, and maps that back to world space through the inverse
// transpose. The w component is forced to zero because the transpose of a
// translation would otherwise leak into it.
func normalAt(s Shape, worldPoint core.Tuple, hit Intersection) core.Tuple {
	localPoint := s.InverseTransform().MulTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	worldNormal := s.InverseTransposeTransform().MulTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// ParentSpaceBounds returns the shape's bounds in its parent's space. Groups
// and CSG shapes already report parent-space bounds because their children
// carry baked transforms.
func ParentSpaceBounds(s Shape) core.BoundingBox {
	switch s.(type) {
	case *Group, *CSG:
		return s.BoundingBox()
	}
	return s.BoundingBox().Transform(s.Transform())
}
