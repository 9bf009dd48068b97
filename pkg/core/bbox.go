package core

import "math"

// BoundingBox is an axis-aligned box. An empty box has min at +Inf and max
// at -Inf on every axis so that it absorbs any first point or box.
type BoundingBox struct {
	Min Tuple
	Max Tuple
}

// EmptyBoundingBox returns a box that contains nothing
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Tuple{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1), W: 1},
		Max: Tuple{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1), W: 1},
	}
}

// NewBoundingBox creates a box with the given corners
func NewBoundingBox(min, max Tuple) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// AddPoint grows the box to contain the given point
func (b *BoundingBox) AddPoint(p Tuple) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)

	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// AddBox grows the box to contain another box
func (b *BoundingBox) AddBox(other BoundingBox) {
	b.AddPoint(other.Min)
	b.AddPoint(other.Max)
}

// ContainsPoint reports whether the point lies inside the box, inclusive
func (b BoundingBox) ContainsPoint(p Tuple) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether the other box lies entirely inside this one
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform maps all eight corners through the matrix and returns the
// axis-aligned box of the results.
func (b BoundingBox) Transform(m Matrix) BoundingBox {
	corners := [8]Tuple{
		b.Min,
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z, W: 1},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z, W: 1},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z, W: 1},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z, W: 1},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z, W: 1},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z, W: 1},
		b.Max,
	}
	result := EmptyBoundingBox()
	for _, c := range corners {
		result.AddPoint(m.MulTuple(c))
	}
	return result
}

// Intersects reports whether the ray hits the box
func (b BoundingBox) Intersects(r Ray) bool {
	_, _, hit := RayBoxDistances(r, b.Min, b.Max)
	return hit
}

// RayBoxDistances runs the slab test against the box [min, max] and returns
// the entry and exit distances. The same math backs both the bounding box
// pre-check and the Cube primitive's exact intersection.
//
// After tavianator's BVH traversal: the infinite reciprocals cached for zero
// direction components fall out correctly under IEEE min/max comparisons,
// so the parallel-ray case needs no special handling beyond slabInterval's
// on-boundary guard.
func RayBoxDistances(r Ray, min, max Tuple) (tMin, tMax float64, hit bool) {
	tMin, tMax = slabInterval(r.Origin.X, r.InvDirection.X, min.X, max.X)

	lo, hi := slabInterval(r.Origin.Y, r.InvDirection.Y, min.Y, max.Y)
	tMin, tMax = math.Max(tMin, lo), math.Min(tMax, hi)

	lo, hi = slabInterval(r.Origin.Z, r.InvDirection.Z, min.Z, max.Z)
	tMin, tMax = math.Max(tMin, lo), math.Min(tMax, hi)

	// tMax < 0 means the box is entirely behind the ray
	return tMin, tMax, tMax >= math.Max(0, tMin)
}

// slabInterval returns the distance interval over which the ray lies inside
// the [min, max] slab on one axis. A zero direction component constrains
// nothing when the origin is within the slab, boundary included, and rules
// the box out otherwise; it cannot go through the reciprocal because an
// origin exactly on a boundary would make 0 * Inf poison the interval with
// NaN.
func slabInterval(origin, invDir, min, max float64) (float64, float64) {
	if math.IsInf(invDir, 0) {
		if origin < min || origin > max {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}
	t1 := (min - origin) * invDir
	t2 := (max - origin) * invDir
	return math.Min(t1, t2), math.Max(t1, t2)
}

// Split divides the box along its longest axis at the midpoint and returns
// the two non-overlapping halves.
func (b BoundingBox) Split() (left, right BoundingBox) {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	greatest := math.Max(dx, math.Max(dy, dz))

	leftMax := b.Max
	rightMin := b.Min
	switch greatest {
	case dx:
		mid := b.Min.X + dx/2
		leftMax.X, rightMin.X = mid, mid
	case dy:
		mid := b.Min.Y + dy/2
		leftMax.Y, rightMin.Y = mid, mid
	default:
		mid := b.Min.Z + dz/2
		leftMax.Z, rightMin.Z = mid, mid
	}
	return BoundingBox{Min: b.Min, Max: leftMax}, BoundingBox{Min: rightMin, Max: b.Max}
}
