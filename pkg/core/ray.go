package core

import "fmt"

// Ray is a world- or object-space ray. Direction reciprocals are cached at
// construction for the branchless slab test in BoundingBox.Intersects.
type Ray struct {
	Origin    Tuple
	Direction Tuple
	// 1/Direction per axis; +-Inf where the direction component is zero
	InvDirection Tuple
}

// NewRay creates a ray from a point origin and vector direction
func NewRay(origin, direction Tuple) Ray {
	if !origin.IsPoint() || !direction.IsVector() {
		panic(fmt.Sprintf("ray requires a point origin and vector direction, got origin.W=%v direction.W=%v",
			origin.W, direction.W))
	}
	return Ray{
		Origin:    origin,
		Direction: direction,
		InvDirection: Tuple{
			X: 1 / direction.X,
			Y: 1 / direction.Y,
			Z: 1 / direction.Z,
		},
	}
}

// Position returns the point at the given distance along the ray
func (r Ray) Position(distance float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(distance))
}

// Transform returns the ray with origin and direction both run through the
// given matrix. The direction is deliberately not renormalized, so distances
// along the transformed ray stay valid in the original space.
func (r Ray) Transform(m Matrix) Ray {
	return NewRay(m.MulTuple(r.Origin), m.MulTuple(r.Direction))
}
