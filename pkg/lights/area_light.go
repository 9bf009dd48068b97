package lights

import (
	"github.com/whitted-go/raytracer/pkg/core"
)

// AreaLight is a rectangular emitter sampled on a usteps x vsteps grid.
// Shadow tests against the individual samples produce soft shadow edges;
// the light's nominal position is the rectangle's center.
//
// The per-cell sample offsets are drawn from a jitter sequence once, so
// intensity queries are read-only and safe to issue from concurrent render
// workers, and repeated renders of the same scene are identical.
type AreaLight struct {
	corner    core.Tuple
	uvec      core.Tuple
	vvec      core.Tuple
	usteps    int
	vsteps    int
	samples   int
	position  core.Tuple
	intensity core.Color

	offsetU []float64
	offsetV []float64
}

// NewAreaLight creates a rectangular light spanning corner plus the two
// full edge vectors, subdivided into usteps x vsteps sample cells. Samples
// are offset within their cells by a Halton sequence; use SetJitter to
// override.
func NewAreaLight(corner, fullUvec core.Tuple, usteps int, fullVvec core.Tuple, vsteps int, intensity core.Color) *AreaLight {
	l := &AreaLight{
		corner:    corner,
		uvec:      fullUvec.Divide(float64(usteps)),
		vvec:      fullVvec.Divide(float64(vsteps)),
		usteps:    usteps,
		vsteps:    vsteps,
		samples:   usteps * vsteps,
		position:  corner.Add(fullUvec.Divide(2)).Add(fullVvec.Divide(2)),
		intensity: intensity,
		offsetU:   make([]float64, usteps*vsteps),
		offsetV:   make([]float64, usteps*vsteps),
	}
	l.SetJitter(NewHalton(2))
	return l
}

// SetJitter redraws every cell's sample offset from the given sequence
func (l *AreaLight) SetJitter(seq Sequence) {
	for i := 0; i < l.samples; i++ {
		l.offsetU[i] = seq.Next()
		l.offsetV[i] = seq.Next()
	}
}

// Position returns the center of the rectangle
func (l *AreaLight) Position() core.Tuple { return l.position }

// Intensity returns the light's color
func (l *AreaLight) Intensity() core.Color { return l.intensity }

// Samples returns the number of shadow samples per intensity query
func (l *AreaLight) Samples() int { return l.samples }

// PointOnLight returns the jittered sample position within the (u, v) cell
func (l *AreaLight) PointOnLight(u, v int) core.Tuple {
	cell := v*l.usteps + u
	return l.corner.
		Add(l.uvec.Multiply(float64(u) + l.offsetU[cell])).
		Add(l.vvec.Multiply(float64(v) + l.offsetV[cell]))
}

// IntensityAt averages the shadow test over every sample cell
func (l *AreaLight) IntensityAt(point core.Tuple, tester ShadowTester) float64 {
	total := 0.0
	for v := 0; v < l.vsteps; v++ {
		for u := 0; u < l.usteps; u++ {
			if !tester.IsShadowed(point, l.PointOnLight(u, v)) {
				total++
			}
		}
	}
	return total / float64(l.samples)
}
