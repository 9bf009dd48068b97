package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	base
}

// NewPlane creates an xz plane with the default material
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

// Intersect tests the world-space ray against the plane
func (p *Plane) Intersect(r core.Ray) []Intersection {
	return intersect(p, r)
}

// LocalIntersect returns the single crossing of the xz plane, or nothing for
// rays parallel to it. A coplanar ray also misses: it would intersect
// everywhere, and no single distance represents that.
func (p *Plane) LocalIntersect(r core.Ray) []Intersection {
	if math.Abs(r.Direction.Y) < Epsilon {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// NormalAt returns the world-space normal at a world-space surface point
func (p *Plane) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(p, worldPoint, hit)
}

// LocalNormalAt is constant everywhere on the plane
func (p *Plane) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// BoundingBox is infinite in x and z and flat in y
func (p *Plane) BoundingBox() core.BoundingBox {
	return core.NewBoundingBox(
		core.NewPoint(math.Inf(-1), 0, math.Inf(-1)),
		core.NewPoint(math.Inf(1), 0, math.Inf(1)),
	)
}

// Includes reports whether other is this plane
func (p *Plane) Includes(other Shape) bool { return sameShape(p, other) }

// Divide is a no-op for primitives
func (p *Plane) Divide(int) {}

// Clone returns a copy with a fresh identity
func (p *Plane) Clone() Shape {
	return &Plane{base: p.cloneBase()}
}
