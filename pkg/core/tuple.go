package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous coordinate: W=1 for points, W=0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with W=1
func NewPoint(x, y, z float64) Tuple {
	checkComponents(x, y, z)
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W=0
func NewVector(x, y, z float64) Tuple {
	checkComponents(x, y, z)
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// NewTuple creates a tuple with an explicit W component
func NewTuple(x, y, z, w float64) Tuple {
	checkComponents(x, y, z)
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// A NaN component is always a construction bug upstream, never valid scene data.
func checkComponents(x, y, z float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		panic(fmt.Sprintf("tuple built with NaN component: (%v, %v, %v)", x, y, z))
	}
}

// IsPoint reports whether the tuple is a point (W=1)
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector (W=0)
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple. Only meaningful for vectors.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length tuple in the same direction.
// Only meaningful for vectors.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given surface normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}
