package geometry

import (
	"github.com/whitted-go/raytracer/pkg/core"
)

// Group aggregates shapes into a single composite. Child transforms are
// baked: adding a child multiplies the group's transform into it, so rays
// pass straight through to children and no parent pointers are needed.
type Group struct {
	base
	children []Shape
	// bounds is maintained eagerly on every mutation, so ray traversal is
	// strictly read-only and safe from concurrent render workers.
	bounds core.BoundingBox
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{base: newBase(), bounds: core.EmptyBoundingBox()}
}

// Children returns the group's direct children
func (g *Group) Children() []Shape { return g.children }

// AddChild adopts shapes whose transforms are relative to the group,
// rewriting them into the group's parent space.
func (g *Group) AddChild(children ...Shape) {
	for _, child := range children {
		child.SetTransform(g.Transform().Mul(child.Transform()))
		g.children = append(g.children, child)
		g.bounds.AddBox(ParentSpaceBounds(child))
	}
}

// adopt appends shapes already expressed in the group's parent space,
// bypassing the transform baking of AddChild.
func (g *Group) adopt(children []Shape) {
	for _, child := range children {
		g.children = append(g.children, child)
		g.bounds.AddBox(ParentSpaceBounds(child))
	}
}

// SetTransform rewrites every child by the delta between the old and new
// transforms, keeping the baked invariant intact.
func (g *Group) SetTransform(t core.Matrix) {
	delta := t.Mul(g.InverseTransform())
	for _, child := range g.children {
		child.SetTransform(delta.Mul(child.Transform()))
	}
	g.base.SetTransform(t)
	g.recomputeBounds()
}

// Intersect skips the usual world-to-object mapping: children already carry
// the group's transform. The bounding box gates the child tests.
func (g *Group) Intersect(r core.Ray) []Intersection {
	if len(g.children) == 0 || !g.BoundingBox().Intersects(r) {
		return nil
	}
	return g.LocalIntersect(r)
}

// LocalIntersect gathers child intersections into one sorted list
func (g *Group) LocalIntersect(r core.Ray) []Intersection {
	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, child.Intersect(r)...)
	}
	SortIntersections(xs)
	return xs
}

// NormalAt panics: normals belong to the child shape that was hit
func (g *Group) NormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal queried on a group; query the intersected child instead")
}

// LocalNormalAt panics for the same reason as NormalAt
func (g *Group) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal queried on a group; query the intersected child instead")
}

// BoundingBox returns the union of the children's parent-space bounds.
// Because child transforms are baked these bounds are already in the group's
// parent space.
func (g *Group) BoundingBox() core.BoundingBox {
	return g.bounds
}

func (g *Group) recomputeBounds() {
	box := core.EmptyBoundingBox()
	for _, child := range g.children {
		box.AddBox(ParentSpaceBounds(child))
	}
	g.bounds = box
}

// Includes reports whether the group is or contains the other shape
func (g *Group) Includes(other Shape) bool {
	if g.id == other.ID() {
		return true
	}
	for _, child := range g.children {
		if child.Includes(other) {
			return true
		}
	}
	return false
}

// Divide partitions the children into two sub-groups along the split of the
// group's bounding box, then recurses. Children whose bounds straddle the
// split stay put, so the rendered output is identical with or without the
// partitioning.
func (g *Group) Divide(threshold int) {
	if threshold <= len(g.children) {
		left, right, remain := g.partition()
		if len(left) > 0 && len(right) > 0 {
			g.children = remain
			g.adoptSubgroup(left)
			g.adoptSubgroup(right)
		}
	}
	for _, child := range g.children {
		child.Divide(threshold)
	}
}

// partition buckets children by which half of the split bounding box fully
// contains them.
func (g *Group) partition() (left, right, remain []Shape) {
	leftBox, rightBox := g.BoundingBox().Split()
	for _, child := range g.children {
		bounds := ParentSpaceBounds(child)
		switch {
		case leftBox.ContainsBox(bounds):
			left = append(left, child)
		case rightBox.ContainsBox(bounds):
			right = append(right, child)
		default:
			remain = append(remain, child)
		}
	}
	return left, right, remain
}

func (g *Group) adoptSubgroup(children []Shape) {
	sub := NewGroup()
	sub.adopt(children)
	g.adopt([]Shape{sub})
}

// Clone deep-copies the group and all descendants under fresh identities
func (g *Group) Clone() Shape {
	c := &Group{base: g.cloneBase(), bounds: g.bounds}
	for _, child := range g.children {
		c.children = append(c.children, child.Clone())
	}
	return c
}
