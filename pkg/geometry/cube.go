package geometry

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every object-space axis
type Cube struct {
	base
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{base: newBase()}
}

// Intersect tests the world-space ray against the cube
func (c *Cube) Intersect(r core.Ray) []Intersection {
	return intersect(c, r)
}

// LocalIntersect runs the slab test shared with bounding boxes. Unlike the
// bounding-box pre-check, hits behind the ray origin are kept so the shading
// engine can tell when the ray starts inside the cube.
func (c *Cube) LocalIntersect(r core.Ray) []Intersection {
	tMin, tMax, _ := core.RayBoxDistances(r, core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	if tMin > tMax {
		return nil
	}
	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// NormalAt returns the world-space normal at a world-space surface point
func (c *Cube) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	return normalAt(c, worldPoint, hit)
}

// LocalNormalAt picks the axis with the largest absolute component, which
// identifies the face the point lies on.
func (c *Cube) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	maxc := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
	switch maxc {
	case math.Abs(p.X):
		return core.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return core.NewVector(0, p.Y, 0)
	}
	return core.NewVector(0, 0, p.Z)
}

// BoundingBox returns the cube itself
func (c *Cube) BoundingBox() core.BoundingBox {
	return core.NewBoundingBox(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}

// Includes reports whether other is this cube
func (c *Cube) Includes(other Shape) bool { return sameShape(c, other) }

// Divide is a no-op for primitives
func (c *Cube) Divide(int) {}

// Clone returns a copy with a fresh identity
func (c *Cube) Clone() Shape {
	return &Cube{base: c.cloneBase()}
}
