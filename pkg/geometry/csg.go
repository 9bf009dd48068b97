package geometry

import (
	"github.com/whitted-go/raytracer/pkg/core"
)

// Operation selects how a CSG shape combines its operands
type Operation int

const (
	// OpUnion keeps the surface of both operands outside the other
	OpUnion Operation = iota
	// OpIntersection keeps the surface of each operand inside the other
	OpIntersection
	// OpDifference keeps the left operand's surface outside the right, and
	// the right operand's surface inside the left
	OpDifference
)

// CSG combines two shapes with a set operation. Like Group it bakes its
// transform into the operands, so rays are passed through untransformed.
type CSG struct {
	base
	Op          Operation
	Left, Right Shape
	// bounds is maintained eagerly on every mutation, so ray traversal is
	// strictly read-only and safe from concurrent render workers.
	bounds core.BoundingBox
}

// NewCSG combines left and right under the given operation. The operand
// transforms are relative to the new shape.
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{base: newBase(), Op: op, Left: left, Right: right}
	c.recomputeBounds()
	return c
}

// SetTransform rewrites both operands by the transform delta, as Group does
func (c *CSG) SetTransform(t core.Matrix) {
	delta := t.Mul(c.InverseTransform())
	c.Left.SetTransform(delta.Mul(c.Left.Transform()))
	c.Right.SetTransform(delta.Mul(c.Right.Transform()))
	c.base.SetTransform(t)
	c.recomputeBounds()
}

// IntersectionAllowed implements the set-operation truth table: given which
// operand was hit and which operands currently contain the ray, it decides
// whether the intersection lies on the combined surface.
func IntersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	}
	return false
}

// FilterIntersections walks the sorted operand intersections, tracking
// containment in each operand, and keeps those the truth table allows.
func (c *CSG) FilterIntersections(xs []Intersection) []Intersection {
	inLeft, inRight := false, false
	var result []Intersection
	for _, x := range xs {
		leftHit := c.Left.Includes(x.Object)
		if IntersectionAllowed(c.Op, leftHit, inLeft, inRight) {
			result = append(result, x)
		}
		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

// Intersect gathers both operands' intersections and filters them down to
// the combined surface. The bounding box gates the operand tests.
func (c *CSG) Intersect(r core.Ray) []Intersection {
	if !c.BoundingBox().Intersects(r) {
		return nil
	}
	return c.LocalIntersect(r)
}

// LocalIntersect merges, sorts and filters the operand intersections
func (c *CSG) LocalIntersect(r core.Ray) []Intersection {
	xs := append(c.Left.Intersect(r), c.Right.Intersect(r)...)
	SortIntersections(xs)
	return c.FilterIntersections(xs)
}

// NormalAt panics: normals belong to the operand shape that was hit
func (c *CSG) NormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal queried on a CSG shape; query the intersected operand instead")
}

// LocalNormalAt panics for the same reason as NormalAt
func (c *CSG) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal queried on a CSG shape; query the intersected operand instead")
}

// BoundingBox returns the union of the operands' parent-space bounds
func (c *CSG) BoundingBox() core.BoundingBox {
	return c.bounds
}

func (c *CSG) recomputeBounds() {
	box := core.EmptyBoundingBox()
	box.AddBox(ParentSpaceBounds(c.Left))
	box.AddBox(ParentSpaceBounds(c.Right))
	c.bounds = box
}

// Includes reports whether the shape is or contains the other shape
func (c *CSG) Includes(other Shape) bool {
	return c.id == other.ID() || c.Left.Includes(other) || c.Right.Includes(other)
}

// Divide forwards the partitioning to both operands
func (c *CSG) Divide(threshold int) {
	c.Left.Divide(threshold)
	c.Right.Divide(threshold)
}

// Clone deep-copies the shape and both operands under fresh identities
func (c *CSG) Clone() Shape {
	return &CSG{
		base:   c.cloneBase(),
		Op:     c.Op,
		Left:   c.Left.Clone(),
		Right:  c.Right.Clone(),
		bounds: c.bounds,
	}
}
