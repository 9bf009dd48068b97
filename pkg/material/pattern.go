package material

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
)

// Object is the part of a shape a pattern needs: the transform that maps
// world space into the shape's object space.
type Object interface {
	InverseTransform() core.Matrix
}

// Pattern produces a color as a function of position in pattern space.
// Patterns carry their own transform relative to the shape they decorate.
type Pattern interface {
	ColorAt(patternPoint core.Tuple) core.Color
	Transform() core.Matrix
	SetTransform(core.Matrix)
	InverseTransform() core.Matrix
}

// ColorAtObject resolves a pattern's color for a world-space point on the
// given object: world -> object space via the shape's inverse transform,
// then object -> pattern space via the pattern's own inverse.
func ColorAtObject(p Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := object.InverseTransform().MulTuple(worldPoint)
	patternPoint := p.InverseTransform().MulTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// basePattern holds the transform state shared by all pattern kinds
type basePattern struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

func (b *basePattern) Transform() core.Matrix        { return b.transform }
func (b *basePattern) InverseTransform() core.Matrix { return b.inverse }

func (b *basePattern) SetTransform(t core.Matrix) {
	b.transform = t
	b.inverse = t.Inverse()
}

// Stripe alternates two colors in unit-wide bands along the x axis
type Stripe struct {
	basePattern
	A, B core.Color
}

// NewStripe creates a stripe pattern from two colors
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A for even floor(x), B otherwise
func (s *Stripe) ColorAt(p core.Tuple) core.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.A
	}
	return s.B
}

// Gradient linearly interpolates between two colors along the x axis
type Gradient struct {
	basePattern
	A, B core.Color
}

// NewGradient creates a gradient pattern from two colors
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt interpolates by the fractional distance from floor(x)
func (g *Gradient) ColorAt(p core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(distance.Scale(fraction))
}

// Ring alternates two colors in concentric circles on the xz plane
type Ring struct {
	basePattern
	A, B core.Color
}

// NewRing creates a ring pattern from two colors
func NewRing(a, b core.Color) *Ring {
	return &Ring{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when the ring index is even
func (r *Ring) ColorAt(p core.Tuple) core.Color {
	if int(math.Floor(math.Sqrt(p.X*p.X+p.Z*p.Z)))%2 == 0 {
		return r.A
	}
	return r.B
}

// Checkers alternates two colors in a 3D checkerboard
type Checkers struct {
	basePattern
	A, B core.Color
}

// NewCheckers creates a checker pattern from two colors
func NewCheckers(a, b core.Color) *Checkers {
	return &Checkers{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when the summed floor of the coordinates is even
func (c *Checkers) ColorAt(p core.Tuple) core.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.A
	}
	return c.B
}

// Solid is a single flat color. Useful as a leaf in nested patterns.
type Solid struct {
	basePattern
	C core.Color
}

// NewSolid creates a pattern that always produces the given color
func NewSolid(c core.Color) *Solid {
	return &Solid{basePattern: newBasePattern(), C: c}
}

// ColorAt returns the solid color regardless of position
func (s *Solid) ColorAt(core.Tuple) core.Color { return s.C }

// Func adapts an arbitrary function of pattern-space position into a
// Pattern.
type Func struct {
	basePattern
	Fn func(core.Tuple) core.Color
}

// NewFunc creates a pattern backed by the given function
func NewFunc(fn func(core.Tuple) core.Color) *Func {
	return &Func{basePattern: newBasePattern(), Fn: fn}
}

// ColorAt evaluates the wrapped function
func (f *Func) ColorAt(p core.Tuple) core.Color { return f.Fn(p) }
