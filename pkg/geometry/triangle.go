package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// triangleEpsilon bounds the Moeller-Trumbore determinant below which a ray
// is treated as parallel to the triangle. Looser than the general Epsilon
// because the determinant scales with the triangle's area.
const triangleEpsilon = 1e-7

// Triangle is a flat triangle with a single face normal. The edge vectors
// and normal are precomputed at construction.
type Triangle struct {
	base
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		base:   newBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// Intersect tests the world-space ray against the triangle
func (tr *Triangle) Intersect(r core.Ray) []Intersection {
	return intersect(tr, r)
}

// LocalIntersect is the Moeller-Trumbore intersection, recording the
// barycentric coordinates of the hit.
func (tr *Triangle) LocalIntersect(r core.Ray) []Intersection {
	return triangleIntersect(tr, tr.E1, tr.E2, tr.P1, r)
}

// triangleIntersect is shared between flat and smooth triangles
func triangleIntersect(s Shape, e1, e2, p1 core.Tuple, r core.Ray) []Intersection {
	dirCrossE2 := r.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < triangleEpsilon {
		return nil
	}

	f := 1 / det
	p1ToOrigin := r.Origin.Subtract(p1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * e2.Dot(originCrossE1)
	return []Intersection{NewIntersectionUV(t, s, u, v)}
}

// NormalAt returns the world-space normal at a world-space surface point
func (tr *Triangle) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(tr, worldPoint, hit)
}

// LocalNormalAt is the precomputed face normal everywhere
func (tr *Triangle) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return tr.Normal
}

// BoundingBox is the tightest box around the three vertices
func (tr *Triangle) BoundingBox() core.BoundingBox {
	box := core.EmptyBoundingBox()
	box.AddPoint(tr.P1)
	box.AddPoint(tr.P2)
	box.AddPoint(tr.P3)
	return box
}

// Includes reports whether other is this triangle
func (tr *Triangle) Includes(other Shape) bool { return sameShape(tr, other) }

// Divide is a no-op for primitives
func (tr *Triangle) Divide(int) {}

// Clone returns a copy with a fresh identity
func (tr *Triangle) Clone() Shape {
	c := *tr
	c.base = tr.cloneBase()
	return &c
}

// SmoothTriangle carries a normal per vertex and interpolates between them
// by the barycentric coordinates of each hit, hiding the facets of a
// triangulated mesh.
type SmoothTriangle struct {
	base
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle from three points and their normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		base: newBase(),
		P1:   p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: p2.Subtract(p1),
		E2: p3.Subtract(p1),
	}
}

// Intersect tests the world-space ray against the triangle
func (tr *SmoothTriangle) Intersect(r core.Ray) []Intersection {
	return intersect(tr, r)
}

// LocalIntersect is the same Moeller-Trumbore routine as for flat triangles
func (tr *SmoothTriangle) LocalIntersect(r core.Ray) []Intersection {
	return triangleIntersect(tr, tr.E1, tr.E2, tr.P1, r)
}

// NormalAt returns the world-space normal at a world-space surface point
func (tr *SmoothTriangle) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(tr, worldPoint, hit)
}

// LocalNormalAt blends the vertex normals by the hit's barycentric weights
func (tr *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit Intersection) core.Tuple {
	return tr.N2.Multiply(hit.U).
		Add(tr.N3.Multiply(hit.V)).
		Add(tr.N1.Multiply(1 - hit.U - hit.V))
}

// BoundingBox is the tightest box around the three vertices
func (tr *SmoothTriangle) BoundingBox() core.BoundingBox {
	box := core.EmptyBoundingBox()
	box.AddPoint(tr.P1)
	box.AddPoint(tr.P2)
	box.AddPoint(tr.P3)
	return box
}

// Includes reports whether other is this triangle
func (tr *SmoothTriangle) Includes(other Shape) bool { return sameShape(tr, other) }

// Divide is a no-op for primitives
func (tr *SmoothTriangle) Divide(int) {}

// Clone returns a copy with a fresh identity
func (tr *SmoothTriangle) Clone() Shape {
	c := *tr
	c.base = tr.cloneBase()
	return &c
}
