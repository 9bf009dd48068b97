package core

import "math"

// Translation returns a matrix that moves points by (x, y, z).
// Vectors (W=0) are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// RotationX returns a matrix rotating about the x axis by the given radians
func RotationX(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity()
	m.Set(1, 1, cos)
	m.Set(1, 2, -sin)
	m.Set(2, 1, sin)
	m.Set(2, 2, cos)
	return m
}

// RotationY returns a matrix rotating about the y axis by the given radians
func RotationY(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity()
	m.Set(0, 0, cos)
	m.Set(0, 2, sin)
	m.Set(2, 0, -sin)
	m.Set(2, 2, cos)
	return m
}

// RotationZ returns a matrix rotating about the z axis by the given radians
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	m := Identity()
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)
	return m
}

// Shearing returns a matrix where each component is displaced in proportion
// to the other two: xy is the displacement of x in proportion to y, etc.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return m
}

// ViewTransform returns the transform that moves the world so the eye sits
// at the origin looking down -z with the given up orientation.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix4([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
