package geometry

import (
	"math"
	"sort"
)

// Intersection records a ray hitting a shape at distance T. U and V are the
// barycentric coordinates of triangle hits and are zero elsewhere.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at distance t on the given shape
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates a triangle intersection carrying barycentric
// coordinates for normal interpolation.
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// SortIntersections orders intersections by increasing distance. NaN
// distances sort to the end so a malformed entry can never shadow a real
// hit.
func SortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool {
		if math.IsNaN(xs[j].T) {
			return !math.IsNaN(xs[i].T)
		}
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative distance. ok is false when every intersection lies behind
// the ray origin.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T < 0 || math.IsNaN(x.T) {
			continue
		}
		if !ok || x.T < hit.T {
			hit = x
			ok = true
		}
	}
	return hit, ok
}
